package catalog

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/agendaplus/salon-scheduler/internal/domain/catalog"
	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/models"
	"github.com/agendaplus/salon-scheduler/internal/validators"
)

// ======================================================
// SERVICE MANAGEMENT
// ======================================================

type ServiceManagement struct {
	services   domain.ServiceRepository
	categories domain.CategoryRepository
}

func NewServiceManagement(
	services domain.ServiceRepository,
	categories domain.CategoryRepository,
) *ServiceManagement {
	return &ServiceManagement{
		services:   services,
		categories: categories,
	}
}

type CreateServiceInput struct {
	CategoryID           string
	Name                 string
	Description          string
	DurationMin          int
	DurationVariationMin int
	PriceCents           int64
}

type UpdateServiceInput struct {
	Name                 *string
	Description          *string
	DurationMin          *int
	DurationVariationMin *int
	PriceCents           *int64
	Active               *bool
}

func (s *ServiceManagement) Create(ctx context.Context, in CreateServiceInput) (*models.Service, error) {
	if !validators.IsUUID(in.CategoryID) {
		return nil, httperr.NewValidation("invalid_id", "category id must be a valid UUID")
	}

	// Categoria precisa existir antes do filho.
	if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	service := &models.Service{
		CategoryID:           in.CategoryID,
		Name:                 strings.TrimSpace(in.Name),
		Description:          in.Description,
		DurationMin:          in.DurationMin,
		DurationVariationMin: in.DurationVariationMin,
		PriceCents:           in.PriceCents,
		Active:               true,
	}

	if err := domain.ValidateService(service); err != nil {
		return nil, err
	}

	exists, err := s.services.ExistsByName(ctx, service.Name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.NewConflict(
			"service_name_taken",
			fmt.Sprintf("service %q already exists", service.Name),
		)
	}

	if err := s.services.Create(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *ServiceManagement) Update(ctx context.Context, id string, in UpdateServiceInput) (*models.Service, error) {
	if !validators.IsUUID(id) {
		return nil, httperr.NewValidation("invalid_id", "service id must be a valid UUID")
	}

	service, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		newName := strings.TrimSpace(*in.Name)
		if !strings.EqualFold(newName, service.Name) {
			exists, err := s.services.ExistsByName(ctx, newName, service.ID)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, httperr.NewConflict(
					"service_name_taken",
					fmt.Sprintf("service %q already exists", newName),
				)
			}
		}
		service.Name = newName
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.DurationMin != nil {
		service.DurationMin = *in.DurationMin
	}
	if in.DurationVariationMin != nil {
		service.DurationVariationMin = *in.DurationVariationMin
	}
	if in.PriceCents != nil {
		service.PriceCents = *in.PriceCents
	}
	if in.Active != nil {
		service.Active = *in.Active
	}

	if err := domain.ValidateService(service); err != nil {
		return nil, err
	}

	if err := s.services.Update(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *ServiceManagement) Get(ctx context.Context, id string) (*models.Service, error) {
	if !validators.IsUUID(id) {
		return nil, httperr.NewValidation("invalid_id", "service id must be a valid UUID")
	}
	return s.services.FindByID(ctx, id)
}

func (s *ServiceManagement) List(ctx context.Context, onlyActive bool, categoryID string) ([]models.Service, error) {
	if categoryID != "" {
		if !validators.IsUUID(categoryID) {
			return nil, httperr.NewValidation("invalid_id", "category id must be a valid UUID")
		}
		return s.services.FindByCategory(ctx, categoryID)
	}
	if onlyActive {
		return s.services.FindActive(ctx)
	}
	return s.services.FindAll(ctx)
}
