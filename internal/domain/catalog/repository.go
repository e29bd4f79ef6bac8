package catalog

import (
	"context"

	"github.com/agendaplus/salon-scheduler/internal/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error

	FindByID(ctx context.Context, id string) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	FindActive(ctx context.Context) ([]models.Category, error)

	// ExistsByName compara case-insensitive; excludeID ignora a própria
	// linha em renomeações.
	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, s *models.Service) error
	Update(ctx context.Context, s *models.Service) error

	FindByID(ctx context.Context, id string) (*models.Service, error)
	FindAll(ctx context.Context) ([]models.Service, error)
	FindActive(ctx context.Context) ([]models.Service, error)
	FindByCategory(ctx context.Context, categoryID string) ([]models.Service, error)

	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)
}

type StylistServiceRepository interface {
	Upsert(ctx context.Context, a *models.StylistService) error
	Delete(ctx context.Context, stylistID, serviceID string) error

	Find(ctx context.Context, stylistID, serviceID string) (*models.StylistService, error)
	ListByStylist(ctx context.Context, stylistID string) ([]models.StylistService, error)

	StylistExists(ctx context.Context, stylistID string) (bool, error)
	ServiceExists(ctx context.Context, serviceID string) (bool, error)
}
