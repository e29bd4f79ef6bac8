package appointment

import (
	"context"
	"fmt"

	"github.com/agendaplus/salon-scheduler/internal/cache"
	domain "github.com/agendaplus/salon-scheduler/internal/domain/appointment"
	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/notification"
	"github.com/agendaplus/salon-scheduler/internal/timezone"
	"github.com/agendaplus/salon-scheduler/internal/validators"
)

// ======================================================
// CHANGE STATUS (confirm / start / complete / cancel / no-show)
// ======================================================

type ChangeStatus struct {
	repo     domain.Repository
	notifier *notification.Dispatcher
	cache    *cache.AvailabilityCache
}

func NewChangeStatus(
	repo domain.Repository,
	notifier *notification.Dispatcher,
	availability *cache.AvailabilityCache,
) *ChangeStatus {
	return &ChangeStatus{
		repo:     repo,
		notifier: notifier,
		cache:    availability,
	}
}

// Execute aplica a transição para o status alvo. A legalidade vem da
// tabela da máquina de estados; a entidade em si só exige alvo não vazio.
func (uc *ChangeStatus) Execute(
	ctx context.Context,
	appointmentID string,
	target domain.StatusName,
	actingUserID string,
) (*DTO, error) {

	if !validators.IsUUID(appointmentID) {
		return nil, httperr.NewValidation("invalid_id", "appointment id must be a valid UUID")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	current := domain.StatusName(ap.Status.Name)
	if !domain.CanTransitionTo(current, target) {
		return nil, httperr.NewValidation(
			"invalid_transition",
			fmt.Sprintf("cannot transition from %s to %s", current, target),
		)
	}

	targetStatus, err := uc.repo.GetStatusByName(ctx, string(target))
	if err != nil {
		return nil, err
	}

	now := timezone.Now()

	if target == domain.StatusConfirmed {
		if err := domain.Confirm(ap, now); err != nil {
			return nil, err
		}
	}

	if err := domain.ChangeStatus(ap, targetStatus.ID, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Cancelamento libera o horário: derruba o cache do dia.
	if target == domain.StatusCancelled && ap.StylistID != nil {
		uc.cache.Invalidate(ctx, *ap.StylistID, ap.DateTime)
	}

	uc.notifier.Dispatch(notification.Event{
		UserID:  actingUserID,
		Type:    "appointment_" + string(target),
		Message: fmt.Sprintf("Agendamento %s: %s", ap.ID, domain.StatusDescription(target)),
	})

	ap.Status = *targetStatus
	dto := toDTO(ap)
	return &dto, nil
}
