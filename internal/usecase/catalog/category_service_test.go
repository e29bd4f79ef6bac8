package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/models"
)

// ======================================================
// MOCK REPOSITORIES
// ======================================================

type mockCategoryRepository struct {
	categories map[string]*models.Category
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{categories: make(map[string]*models.Category)}
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *models.Category) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	m.categories[c.ID] = c
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *models.Category) error {
	if _, ok := m.categories[c.ID]; !ok {
		return httperr.NewNotFound("category_not_found", "category not found")
	}
	m.categories[c.ID] = c
	return nil
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	if c, ok := m.categories[id]; ok {
		return c, nil
	}
	return nil, httperr.NewNotFound("category_not_found", "category not found")
}

func (m *mockCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, c := range m.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCategoryRepository) FindActive(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, c := range m.categories {
		if c.Active {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCategoryRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	for _, c := range m.categories {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

type mockServiceRepository struct {
	services map[string]*models.Service
}

func newMockServiceRepository() *mockServiceRepository {
	return &mockServiceRepository{services: make(map[string]*models.Service)}
}

func (m *mockServiceRepository) Create(ctx context.Context, s *models.Service) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	m.services[s.ID] = s
	return nil
}

func (m *mockServiceRepository) Update(ctx context.Context, s *models.Service) error {
	if _, ok := m.services[s.ID]; !ok {
		return httperr.NewNotFound("service_not_found", "service not found")
	}
	m.services[s.ID] = s
	return nil
}

func (m *mockServiceRepository) FindByID(ctx context.Context, id string) (*models.Service, error) {
	if s, ok := m.services[id]; ok {
		return s, nil
	}
	return nil, httperr.NewNotFound("service_not_found", "service not found")
}

func (m *mockServiceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, s := range m.services {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockServiceRepository) FindActive(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, s := range m.services {
		if s.Active {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockServiceRepository) FindByCategory(ctx context.Context, categoryID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range m.services {
		if s.CategoryID == categoryID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockServiceRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	for _, s := range m.services {
		if s.ID != excludeID && strings.EqualFold(s.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

// ======================================================
// CATEGORY
// ======================================================

func TestCategoryCreate(t *testing.T) {
	svc := NewCategoryService(newMockCategoryRepository())
	ctx := context.Background()

	category, err := svc.Create(ctx, CreateCategoryInput{
		Name:        "  Coloração  ",
		Description: "Tintura e mechas",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "Coloração", category.Name)
	assert.True(t, category.Active)
}

func TestCategoryCreate_CaseInsensitiveUniqueness(t *testing.T) {
	svc := NewCategoryService(newMockCategoryRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateCategoryInput{Name: "Spa"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateCategoryInput{Name: "spa"})
	require.Error(t, err)
	assert.True(t, httperr.IsConflict(err))
	assert.Contains(t, err.Error(), "already exists")

	_, err = svc.Create(ctx, CreateCategoryInput{Name: "SPA"})
	require.Error(t, err)
	assert.True(t, httperr.IsConflict(err))
}

func TestCategoryCreate_Validation(t *testing.T) {
	svc := NewCategoryService(newMockCategoryRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateCategoryInput{Name: "   "})
	require.Error(t, err)
	assert.True(t, httperr.IsValidation(err))

	_, err = svc.Create(ctx, CreateCategoryInput{Name: strings.Repeat("x", 101)})
	require.Error(t, err)
	assert.True(t, httperr.IsCode(err, "name_too_long"))
}

func TestCategoryUpdate(t *testing.T) {
	repo := newMockCategoryRepository()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	spa, err := svc.Create(ctx, CreateCategoryInput{Name: "Spa"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateCategoryInput{Name: "Cortes"})
	require.NoError(t, err)

	// Renomear por cima de outro nome existente é conflito.
	name := "cortes"
	_, err = svc.Update(ctx, spa.ID, UpdateCategoryInput{Name: &name})
	require.Error(t, err)
	assert.True(t, httperr.IsConflict(err))

	// Mudar só a caixa do próprio nome não conflita consigo mesmo.
	selfName := "SPA"
	updated, err := svc.Update(ctx, spa.ID, UpdateCategoryInput{Name: &selfName})
	require.NoError(t, err)
	assert.Equal(t, "SPA", updated.Name)

	desc := "Tratamentos"
	updated, err = svc.Update(ctx, spa.ID, UpdateCategoryInput{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Tratamentos", updated.Description)
	assert.Equal(t, "SPA", updated.Name)
}

func TestCategoryGetAndDeactivate(t *testing.T) {
	svc := NewCategoryService(newMockCategoryRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateCategoryInput{Name: "Spa"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "not-a-uuid")
	require.Error(t, err)
	assert.Equal(t, 400, httperr.StatusOf(err))

	_, err = svc.Get(ctx, uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, 404, httperr.StatusOf(err))

	deactivated, err := svc.Deactivate(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.Active)

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
