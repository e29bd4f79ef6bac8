package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/agendaplus/salon-scheduler/internal/cache"
	domain "github.com/agendaplus/salon-scheduler/internal/domain/appointment"
	domainschedule "github.com/agendaplus/salon-scheduler/internal/domain/schedule"
	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/models"
	"github.com/agendaplus/salon-scheduler/internal/notification"
	"github.com/agendaplus/salon-scheduler/internal/timezone"
	"github.com/agendaplus/salon-scheduler/internal/validators"
)

// ======================================================
// RESCHEDULE
// ======================================================

type RescheduleInput struct {
	AppointmentID string
	DateTime      string // RFC3339
	DurationMin   int    // 0 mantém a duração atual
	ActingUserID  string
}

type Reschedule struct {
	repo     domain.Repository
	notifier *notification.Dispatcher
	cache    *cache.AvailabilityCache
}

func NewReschedule(
	repo domain.Repository,
	notifier *notification.Dispatcher,
	availability *cache.AvailabilityCache,
) *Reschedule {
	return &Reschedule{
		repo:     repo,
		notifier: notifier,
		cache:    availability,
	}
}

func (uc *Reschedule) Execute(ctx context.Context, in RescheduleInput) (*DTO, error) {

	if !validators.IsUUID(in.AppointmentID) {
		return nil, httperr.NewValidation("invalid_id", "appointment id must be a valid UUID")
	}

	newStart, err := time.Parse(time.RFC3339, in.DateTime)
	if err != nil {
		return nil, httperr.NewValidation("invalid_date_time", "date/time must be RFC3339")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()

	// Regra das 24h: perto demais do horário, não mexe.
	if !domain.CanBeModified(ap, now) {
		return nil, httperr.NewValidation(
			"too_close_to_start",
			"appointments can only be modified more than 24 hours before the start",
		)
	}

	if domain.IsTerminal(domain.StatusName(ap.Status.Name)) {
		return nil, httperr.NewValidation("invalid_state", "appointment is in a terminal status")
	}

	oldDay := ap.DateTime

	if err := domain.Reschedule(ap, newStart, in.DurationMin, now); err != nil {
		return nil, err
	}

	// O novo horário precisa caber em algum expediente do dia.
	schedules, err := uc.repo.ListSchedulesByDayOfWeek(ctx, int(newStart.Weekday()))
	if err != nil {
		return nil, err
	}

	var applicable *models.Schedule
	for i := range schedules {
		if domainschedule.ContainsInterval(&schedules[i], ap.DateTime, ap.EndTime()) {
			applicable = &schedules[i]
			break
		}
	}
	if applicable == nil {
		return nil, httperr.NewValidation("outside_working_hours", "requested time is outside working hours")
	}
	ap.ScheduleID = applicable.ID

	if err := uc.repo.UpdateAppointmentChecked(ctx, ap); err != nil {
		return nil, err
	}

	if ap.StylistID != nil {
		uc.cache.Invalidate(ctx, *ap.StylistID, oldDay)
		uc.cache.Invalidate(ctx, *ap.StylistID, ap.DateTime)
	}

	uc.notifier.Dispatch(notification.Event{
		UserID:  in.ActingUserID,
		Type:    "appointment_rescheduled",
		Message: fmt.Sprintf("Agendamento remarcado para %s", newStart.Format("02/01/2006 15:04")),
	})

	dto := toDTO(ap)
	return &dto, nil
}
