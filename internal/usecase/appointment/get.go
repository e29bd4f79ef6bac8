package appointment

import (
	"context"

	domain "github.com/agendaplus/salon-scheduler/internal/domain/appointment"
	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/validators"
)

// ======================================================
// GET BY ID
// ======================================================

type GetByID struct {
	repo domain.Repository
}

func NewGetByID(repo domain.Repository) *GetByID {
	return &GetByID{repo: repo}
}

// Execute valida o formato do id antes de consultar: id malformado é 400,
// id bem formado sem linha é 404.
func (uc *GetByID) Execute(ctx context.Context, id string) (*DTO, error) {
	if !validators.IsUUID(id) {
		return nil, httperr.NewValidation("invalid_id", "appointment id must be a valid UUID")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := toDTO(ap)
	return &dto, nil
}

// ======================================================
// LIST BY CLIENT
// ======================================================

type ListByClient struct {
	repo domain.Repository
}

func NewListByClient(repo domain.Repository) *ListByClient {
	return &ListByClient{repo: repo}
}

func (uc *ListByClient) Execute(ctx context.Context, clientID string) ([]DTO, error) {
	if !validators.IsUUID(clientID) {
		return nil, httperr.NewValidation("invalid_id", "client id must be a valid UUID")
	}

	if _, err := uc.repo.GetClientByID(ctx, clientID); err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListAppointmentsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return toDTOs(aps), nil
}
