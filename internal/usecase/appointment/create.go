package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/agendaplus/salon-scheduler/internal/cache"
	domain "github.com/agendaplus/salon-scheduler/internal/domain/appointment"
	domainschedule "github.com/agendaplus/salon-scheduler/internal/domain/schedule"
	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/metrics"
	"github.com/agendaplus/salon-scheduler/internal/models"
	"github.com/agendaplus/salon-scheduler/internal/notification"
	"github.com/agendaplus/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	DateTime   string // RFC3339
	ClientID   string
	StylistID  *string
	ServiceIDs []string
	Notes      string

	// Conta logada que está criando o booking.
	UserID string
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo     domain.Repository
	notifier *notification.Dispatcher
	cache    *cache.AvailabilityCache
}

func NewCreate(
	repo domain.Repository,
	notifier *notification.Dispatcher,
	availability *cache.AvailabilityCache,
) *Create {
	return &Create{
		repo:     repo,
		notifier: notifier,
		cache:    availability,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*DTO, error) {

	// --------------------------------------------------
	// 1. Campos obrigatórios + instante futuro
	// --------------------------------------------------
	if in.ClientID == "" {
		return nil, httperr.NewValidation("missing_client", "client is required")
	}
	if len(in.ServiceIDs) == 0 {
		return nil, httperr.NewValidation("missing_services", "at least one service is required")
	}

	start, err := time.Parse(time.RFC3339, in.DateTime)
	if err != nil {
		return nil, httperr.NewValidation("invalid_date_time", "date/time must be RFC3339")
	}

	now := timezone.Now()
	if !start.After(now) {
		return nil, httperr.NewValidation("date_in_past", "appointment date/time cannot be in the past")
	}

	// --------------------------------------------------
	// 2. Entidades relacionadas (miss → 404 da entidade)
	// --------------------------------------------------
	client, err := uc.repo.GetClientByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	if in.StylistID != nil {
		if _, err := uc.repo.GetStylistByID(ctx, *in.StylistID); err != nil {
			return nil, err
		}
	}

	// Duração total = soma das durações dos serviços pedidos.
	totalDuration := 0
	seen := make(map[string]bool, len(in.ServiceIDs))
	for _, serviceID := range in.ServiceIDs {
		if seen[serviceID] {
			return nil, httperr.NewValidation("duplicate_service", "service ids cannot repeat")
		}
		seen[serviceID] = true

		service, err := uc.repo.GetServiceByID(ctx, serviceID)
		if err != nil {
			return nil, err
		}
		if !service.Active {
			return nil, httperr.NewValidation("service_inactive", fmt.Sprintf("service %q is not active", service.Name))
		}
		totalDuration += service.DurationMin
	}

	end := start.Add(time.Duration(totalDuration) * time.Minute)

	// --------------------------------------------------
	// 3. Status inicial + expediente aplicável
	// --------------------------------------------------
	pending, err := uc.repo.GetStatusByName(ctx, string(domain.InitialStatus()))
	if err != nil {
		return nil, err
	}

	schedules, err := uc.repo.ListSchedulesByDayOfWeek(ctx, int(start.Weekday()))
	if err != nil {
		return nil, err
	}

	var applicable *models.Schedule
	for i := range schedules {
		if domainschedule.ContainsInterval(&schedules[i], start, end) {
			applicable = &schedules[i]
			break
		}
	}
	if applicable == nil {
		return nil, httperr.NewValidation("outside_working_hours", "requested time is outside working hours")
	}

	// --------------------------------------------------
	// 4. Entidade validada pela factory
	// --------------------------------------------------
	ap, err := domain.New(domain.NewInput{
		DateTime:   start,
		Duration:   totalDuration,
		UserID:     in.UserID,
		ClientID:   client.ID,
		StylistID:  in.StylistID,
		ScheduleID: applicable.ID,
		StatusID:   pending.ID,
		ServiceIDs: in.ServiceIDs,
		Notes:      in.Notes,
	}, now)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Conflito + insert na mesma transação (lock por stylist)
	// --------------------------------------------------
	if err := uc.repo.CreateAppointmentChecked(ctx, ap); err != nil {
		if httperr.IsConflict(err) {
			metrics.IncBookingConflict()
		}
		return nil, err
	}

	metrics.IncAppointmentCreated()

	// --------------------------------------------------
	// 6. Cache + notificação
	// --------------------------------------------------
	if ap.StylistID != nil {
		uc.cache.Invalidate(ctx, *ap.StylistID, ap.DateTime)
	}

	uc.notifier.Dispatch(notification.Event{
		UserID:  in.UserID,
		Type:    "appointment_created",
		Message: fmt.Sprintf("Agendamento criado para %s", start.Format("02/01/2006 15:04")),
	})

	dto := toDTO(ap)
	dto.Status = pending.Name
	return &dto, nil
}
