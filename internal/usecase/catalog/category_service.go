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
// CATEGORY SERVICE
// ======================================================

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

type CreateCategoryInput struct {
	Name        string
	Description string
}

type UpdateCategoryInput struct {
	Name        *string
	Description *string
	Active      *bool
}

func (s *CategoryService) Create(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	category := &models.Category{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Active:      true,
	}

	if err := domain.ValidateCategory(category); err != nil {
		return nil, err
	}

	// Unicidade de nome é case-insensitive.
	exists, err := s.repo.ExistsByName(ctx, category.Name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.NewConflict(
			"category_name_taken",
			fmt.Sprintf("category %q already exists", category.Name),
		)
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, in UpdateCategoryInput) (*models.Category, error) {
	if !validators.IsUUID(id) {
		return nil, httperr.NewValidation("invalid_id", "category id must be a valid UUID")
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		newName := strings.TrimSpace(*in.Name)
		if !strings.EqualFold(newName, category.Name) {
			exists, err := s.repo.ExistsByName(ctx, newName, category.ID)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, httperr.NewConflict(
					"category_name_taken",
					fmt.Sprintf("category %q already exists", newName),
				)
			}
		}
		category.Name = newName
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.Active != nil {
		category.Active = *in.Active
	}

	if err := domain.ValidateCategory(category); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	if !validators.IsUUID(id) {
		return nil, httperr.NewValidation("invalid_id", "category id must be a valid UUID")
	}
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context, onlyActive bool) ([]models.Category, error) {
	if onlyActive {
		return s.repo.FindActive(ctx)
	}
	return s.repo.FindAll(ctx)
}

// Deactivate é o "delete" lógico: categoria sai de cena sem órfãos.
func (s *CategoryService) Deactivate(ctx context.Context, id string) (*models.Category, error) {
	inactive := false
	return s.Update(ctx, id, UpdateCategoryInput{Active: &inactive})
}
