package catalog

import (
	"context"

	domain "github.com/agendaplus/salon-scheduler/internal/domain/catalog"
	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/models"
	"github.com/agendaplus/salon-scheduler/internal/validators"
)

// ======================================================
// STYLIST SERVICE (vínculo profissional ↔ serviço)
// ======================================================

type StylistServiceService struct {
	assignments domain.StylistServiceRepository
	services    domain.ServiceRepository
}

func NewStylistServiceService(
	assignments domain.StylistServiceRepository,
	services domain.ServiceRepository,
) *StylistServiceService {
	return &StylistServiceService{
		assignments: assignments,
		services:    services,
	}
}

type AssignInput struct {
	StylistID        string
	ServiceID        string
	CustomPriceCents *int64
	IsOffering       bool
}

func (s *StylistServiceService) Assign(ctx context.Context, in AssignInput) (*models.StylistService, error) {
	if !validators.IsUUID(in.StylistID) || !validators.IsUUID(in.ServiceID) {
		return nil, httperr.NewValidation("invalid_id", "stylist and service ids must be valid UUIDs")
	}

	// Pais precisam existir antes do vínculo.
	ok, err := s.assignments.StylistExists(ctx, in.StylistID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.NewNotFound("stylist_not_found", "stylist not found")
	}

	ok, err = s.assignments.ServiceExists(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.NewNotFound("service_not_found", "service not found")
	}

	assignment := &models.StylistService{
		StylistID:        in.StylistID,
		ServiceID:        in.ServiceID,
		CustomPriceCents: in.CustomPriceCents,
		IsOffering:       in.IsOffering,
	}

	if err := domain.ValidateStylistService(assignment); err != nil {
		return nil, err
	}

	if err := s.assignments.Upsert(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *StylistServiceService) Unassign(ctx context.Context, stylistID, serviceID string) error {
	if !validators.IsUUID(stylistID) || !validators.IsUUID(serviceID) {
		return httperr.NewValidation("invalid_id", "stylist and service ids must be valid UUIDs")
	}
	return s.assignments.Delete(ctx, stylistID, serviceID)
}

func (s *StylistServiceService) ListByStylist(ctx context.Context, stylistID string) ([]models.StylistService, error) {
	if !validators.IsUUID(stylistID) {
		return nil, httperr.NewValidation("invalid_id", "stylist id must be a valid UUID")
	}

	ok, err := s.assignments.StylistExists(ctx, stylistID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.NewNotFound("stylist_not_found", "stylist not found")
	}

	return s.assignments.ListByStylist(ctx, stylistID)
}

// EffectivePrice: preço customizado do vínculo quando definido, senão o
// preço base do serviço. IsOffering não entra no cálculo, só marca se o
// profissional está ofertando.
func (s *StylistServiceService) EffectivePrice(ctx context.Context, stylistID, serviceID string) (int64, error) {
	if !validators.IsUUID(stylistID) || !validators.IsUUID(serviceID) {
		return 0, httperr.NewValidation("invalid_id", "stylist and service ids must be valid UUIDs")
	}

	service, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		return 0, err
	}

	assignment, err := s.assignments.Find(ctx, stylistID, serviceID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return service.PriceCents, nil
		}
		return 0, err
	}

	return domain.EffectivePrice(assignment, service), nil
}
