package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/models"
)

type assignmentKey struct {
	stylistID string
	serviceID string
}

type mockStylistServiceRepository struct {
	assignments map[assignmentKey]*models.StylistService
	stylists    map[string]bool
	services    *mockServiceRepository
}

func newMockStylistServiceRepository(services *mockServiceRepository) *mockStylistServiceRepository {
	return &mockStylistServiceRepository{
		assignments: make(map[assignmentKey]*models.StylistService),
		stylists:    make(map[string]bool),
		services:    services,
	}
}

func (m *mockStylistServiceRepository) Upsert(ctx context.Context, a *models.StylistService) error {
	m.assignments[assignmentKey{a.StylistID, a.ServiceID}] = a
	return nil
}

func (m *mockStylistServiceRepository) Delete(ctx context.Context, stylistID, serviceID string) error {
	delete(m.assignments, assignmentKey{stylistID, serviceID})
	return nil
}

func (m *mockStylistServiceRepository) Find(ctx context.Context, stylistID, serviceID string) (*models.StylistService, error) {
	if a, ok := m.assignments[assignmentKey{stylistID, serviceID}]; ok {
		return a, nil
	}
	return nil, httperr.NewNotFound("assignment_not_found", "stylist does not offer this service")
}

func (m *mockStylistServiceRepository) ListByStylist(ctx context.Context, stylistID string) ([]models.StylistService, error) {
	var out []models.StylistService
	for k, a := range m.assignments {
		if k.stylistID == stylistID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockStylistServiceRepository) StylistExists(ctx context.Context, stylistID string) (bool, error) {
	return m.stylists[stylistID], nil
}

func (m *mockStylistServiceRepository) ServiceExists(ctx context.Context, serviceID string) (bool, error) {
	_, ok := m.services.services[serviceID]
	return ok, nil
}

func newStylistServiceFixture(t *testing.T) (*StylistServiceService, *mockStylistServiceRepository, string, *models.Service) {
	t.Helper()

	services := newMockServiceRepository()
	assignments := newMockStylistServiceRepository(services)
	svc := NewStylistServiceService(assignments, services)

	stylistID := uuid.NewString()
	assignments.stylists[stylistID] = true

	service := &models.Service{
		Name:        "Corte",
		DurationMin: 60,
		PriceCents:  5000,
		Active:      true,
	}
	require.NoError(t, services.Create(context.Background(), service))

	return svc, assignments, stylistID, service
}

func TestAssign(t *testing.T) {
	svc, _, stylistID, service := newStylistServiceFixture(t)
	ctx := context.Background()

	custom := int64(4500)
	assignment, err := svc.Assign(ctx, AssignInput{
		StylistID:        stylistID,
		ServiceID:        service.ID,
		CustomPriceCents: &custom,
		IsOffering:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, stylistID, assignment.StylistID)
	require.NotNil(t, assignment.CustomPriceCents)
	assert.Equal(t, int64(4500), *assignment.CustomPriceCents)

	// Upsert: repetir o vínculo com outro preço substitui.
	other := int64(4000)
	assignment, err = svc.Assign(ctx, AssignInput{
		StylistID:        stylistID,
		ServiceID:        service.ID,
		CustomPriceCents: &other,
		IsOffering:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4000), *assignment.CustomPriceCents)

	list, err := svc.ListByStylist(ctx, stylistID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAssign_ParentsMustExist(t *testing.T) {
	svc, _, stylistID, service := newStylistServiceFixture(t)
	ctx := context.Background()

	_, err := svc.Assign(ctx, AssignInput{StylistID: "nope", ServiceID: service.ID})
	require.Error(t, err)
	assert.Equal(t, 400, httperr.StatusOf(err))

	_, err = svc.Assign(ctx, AssignInput{StylistID: uuid.NewString(), ServiceID: service.ID})
	require.Error(t, err)
	assert.True(t, httperr.IsCode(err, "stylist_not_found"))

	_, err = svc.Assign(ctx, AssignInput{StylistID: stylistID, ServiceID: uuid.NewString()})
	require.Error(t, err)
	assert.True(t, httperr.IsCode(err, "service_not_found"))
}

func TestUnassign(t *testing.T) {
	svc, assignments, stylistID, service := newStylistServiceFixture(t)
	ctx := context.Background()

	_, err := svc.Assign(ctx, AssignInput{StylistID: stylistID, ServiceID: service.ID, IsOffering: true})
	require.NoError(t, err)

	require.NoError(t, svc.Unassign(ctx, stylistID, service.ID))
	assert.Empty(t, assignments.assignments)

	err = svc.Unassign(ctx, "nope", service.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsValidation(err))
}

func TestEffectivePrice(t *testing.T) {
	svc, _, stylistID, service := newStylistServiceFixture(t)
	ctx := context.Background()

	// Sem vínculo cai no preço base do serviço.
	price, err := svc.EffectivePrice(ctx, stylistID, service.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), price)

	custom := int64(4500)
	_, err = svc.Assign(ctx, AssignInput{
		StylistID:        stylistID,
		ServiceID:        service.ID,
		CustomPriceCents: &custom,
		IsOffering:       true,
	})
	require.NoError(t, err)

	price, err = svc.EffectivePrice(ctx, stylistID, service.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4500), price)

	// IsOffering não muda o preço: preço é do vínculo, oferta é flag.
	_, err = svc.Assign(ctx, AssignInput{
		StylistID:        stylistID,
		ServiceID:        service.ID,
		CustomPriceCents: &custom,
		IsOffering:       false,
	})
	require.NoError(t, err)

	price, err = svc.EffectivePrice(ctx, stylistID, service.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4500), price)

	// Serviço inexistente: 404.
	_, err = svc.EffectivePrice(ctx, stylistID, uuid.NewString())
	require.Error(t, err)
	assert.True(t, httperr.IsNotFound(err))
}
