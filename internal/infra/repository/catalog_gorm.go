package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/agendaplus/salon-scheduler/internal/domain/catalog"
	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/models"
)

// --------------------------------------------------
// Category
// --------------------------------------------------

type CategoryGormRepository struct {
	db *gorm.DB
}

func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

func (r *CategoryGormRepository) Create(ctx context.Context, c *models.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CategoryGormRepository) Update(ctx context.Context, c *models.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CategoryGormRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	var c models.Category
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NewNotFound("category_not_found", "category not found")
		}
		return nil, err
	}
	return &c, nil
}

func (r *CategoryGormRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *CategoryGormRepository) FindActive(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := r.db.WithContext(ctx).
		Where("active = true").
		Order("name ASC").
		Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *CategoryGormRepository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name)))

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) Create(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceGormRepository) Update(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ServiceGormRepository) FindByID(ctx context.Context, id string) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NewNotFound("service_not_found", "service not found")
		}
		return nil, err
	}
	return &s, nil
}

func (r *ServiceGormRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceGormRepository) FindActive(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("active = true").
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceGormRepository) FindByCategory(ctx context.Context, categoryID string) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceGormRepository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name)))

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// StylistService
// --------------------------------------------------

type StylistServiceGormRepository struct {
	db *gorm.DB
}

func NewStylistServiceGormRepository(db *gorm.DB) *StylistServiceGormRepository {
	return &StylistServiceGormRepository{db: db}
}

func (r *StylistServiceGormRepository) Upsert(ctx context.Context, a *models.StylistService) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "stylist_id"}, {Name: "service_id"}},
			UpdateAll: true,
		}).
		Create(a).Error
}

func (r *StylistServiceGormRepository) Delete(ctx context.Context, stylistID, serviceID string) error {
	res := r.db.WithContext(ctx).
		Delete(&models.StylistService{}, "stylist_id = ? AND service_id = ?", stylistID, serviceID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.NewNotFound("assignment_not_found", "stylist service assignment not found")
	}
	return nil
}

func (r *StylistServiceGormRepository) Find(ctx context.Context, stylistID, serviceID string) (*models.StylistService, error) {
	var a models.StylistService
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ? AND service_id = ?", stylistID, serviceID).
		First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NewNotFound("assignment_not_found", "stylist service assignment not found")
		}
		return nil, err
	}
	return &a, nil
}

func (r *StylistServiceGormRepository) ListByStylist(ctx context.Context, stylistID string) ([]models.StylistService, error) {
	var list []models.StylistService
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ?", stylistID).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *StylistServiceGormRepository) StylistExists(ctx context.Context, stylistID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Stylist{}).
		Where("id = ?", stylistID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *StylistServiceGormRepository) ServiceExists(ctx context.Context, serviceID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", serviceID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time checks
var (
	_ domain.CategoryRepository       = (*CategoryGormRepository)(nil)
	_ domain.ServiceRepository        = (*ServiceGormRepository)(nil)
	_ domain.StylistServiceRepository = (*StylistServiceGormRepository)(nil)
)
