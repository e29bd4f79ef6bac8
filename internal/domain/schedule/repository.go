package schedule

import (
	"context"

	"github.com/agendaplus/salon-scheduler/internal/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.Schedule) error
	Update(ctx context.Context, s *models.Schedule) error
	Delete(ctx context.Context, id string) error

	FindByID(ctx context.Context, id string) (*models.Schedule, error)
	FindAll(ctx context.Context) ([]models.Schedule, error)
	FindByDayOfWeek(ctx context.Context, weekday int) ([]models.Schedule, error)
}
