package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/agendaplus/salon-scheduler/internal/domain/schedule"
	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func (r *ScheduleGormRepository) Create(ctx context.Context, s *models.Schedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ScheduleGormRepository) Update(ctx context.Context, s *models.Schedule) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ScheduleGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Schedule{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.NewNotFound("schedule_not_found", "schedule not found")
	}
	return nil
}

func (r *ScheduleGormRepository) FindByID(ctx context.Context, id string) (*models.Schedule, error) {
	var s models.Schedule
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NewNotFound("schedule_not_found", "schedule not found")
		}
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleGormRepository) FindAll(ctx context.Context) ([]models.Schedule, error) {
	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).
		Order("day_of_week ASC, start_time ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *ScheduleGormRepository) FindByDayOfWeek(ctx context.Context, weekday int) ([]models.Schedule, error) {
	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).
		Where("day_of_week = ?", weekday).
		Order("start_time ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
