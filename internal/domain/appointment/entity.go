package appointment

import (
	"time"

	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/models"
)

const (
	MinDurationMin  = 15
	MaxDurationMin  = 480
	DurationStepMin = 15

	// Janela mínima de antecedência para alterar um agendamento.
	ModificationWindow = 24 * time.Hour
)

// ===============================
// Factory
// ===============================

type NewInput struct {
	DateTime   time.Time
	Duration   int
	UserID     string
	ClientID   string
	StylistID  *string
	ScheduleID string
	StatusID   string
	ServiceIDs []string
	Notes      string
}

// New monta um agendamento validado. Toda criação passa por aqui.
func New(in NewInput, now time.Time) (*models.Appointment, error) {
	ap := &models.Appointment{
		DateTime:    in.DateTime,
		DurationMin: in.Duration,
		UserID:      in.UserID,
		ClientID:    in.ClientID,
		StylistID:   in.StylistID,
		ScheduleID:  in.ScheduleID,
		StatusID:    in.StatusID,
		Notes:       in.Notes,
	}
	ap.SetServiceIDs(in.ServiceIDs)

	if err := Validate(ap, now); err != nil {
		return nil, err
	}
	return ap, nil
}

// ===============================
// Validação
// ===============================

// Validate roda as invariantes completas. Chamado na criação e em toda
// mutação de domínio.
func Validate(ap *models.Appointment, now time.Time) error {
	if ap.DateTime.IsZero() {
		return httperr.NewValidation("missing_date_time", "appointment date/time is required")
	}
	if ap.DateTime.Before(now) {
		return httperr.NewValidation("date_in_past", "appointment date/time cannot be in the past")
	}
	if ap.DurationMin < MinDurationMin || ap.DurationMin > MaxDurationMin {
		return httperr.NewValidation("invalid_duration", "duration must be between 15 and 480 minutes")
	}
	if ap.DurationMin%DurationStepMin != 0 {
		return httperr.NewValidation("invalid_duration", "duration must be a multiple of 15 minutes")
	}
	if ap.UserID == "" {
		return httperr.NewValidation("missing_user", "creator user is required")
	}
	if ap.ClientID == "" {
		return httperr.NewValidation("missing_client", "client is required")
	}
	if ap.ScheduleID == "" {
		return httperr.NewValidation("missing_schedule", "schedule is required")
	}
	if ap.StatusID == "" {
		return httperr.NewValidation("missing_status", "status is required")
	}
	return nil
}

// ===============================
// Domain Actions
// ===============================

// Confirm registra confirmedAt uma única vez por ciclo de vida.
func Confirm(ap *models.Appointment, now time.Time) error {
	if ap.ConfirmedAt != nil {
		return httperr.NewValidation("already_confirmed", "appointment is already confirmed")
	}
	ap.ConfirmedAt = &now
	ap.UpdatedAt = now
	return nil
}

// Reschedule move o agendamento. Duração zero mantém a atual.
func Reschedule(ap *models.Appointment, newStart time.Time, newDuration int, now time.Time) error {
	if newStart.Before(now) {
		return httperr.NewValidation("date_in_past", "new date/time cannot be in the past")
	}

	prevStart, prevDuration := ap.DateTime, ap.DurationMin
	ap.DateTime = newStart
	if newDuration > 0 {
		ap.DurationMin = newDuration
	}

	if err := Validate(ap, now); err != nil {
		ap.DateTime, ap.DurationMin = prevStart, prevDuration
		return err
	}

	ap.UpdatedAt = now
	return nil
}

func AddService(ap *models.Appointment, serviceID string, now time.Time) error {
	for _, s := range ap.Services {
		if s.ServiceID == serviceID {
			return httperr.NewValidation("duplicate_service", "service is already part of the appointment")
		}
	}

	ap.Services = append(ap.Services, models.AppointmentService{
		AppointmentID: ap.ID,
		ServiceID:     serviceID,
		Position:      len(ap.Services),
	})
	ap.UpdatedAt = now
	return nil
}

func RemoveService(ap *models.Appointment, serviceID string, now time.Time) error {
	idx := -1
	for i, s := range ap.Services {
		if s.ServiceID == serviceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return httperr.NewValidation("service_not_in_appointment", "service is not part of the appointment")
	}

	ap.Services = append(ap.Services[:idx], ap.Services[idx+1:]...)
	for i := range ap.Services {
		ap.Services[i].Position = i
	}
	ap.UpdatedAt = now
	return nil
}

func UpdateStylist(ap *models.Appointment, stylistID *string, now time.Time) {
	ap.StylistID = stylistID
	ap.UpdatedAt = now
}

// ChangeStatus só exige alvo não vazio. A legalidade da transição é
// verificada no use case contra a tabela (CanTransitionTo).
func ChangeStatus(ap *models.Appointment, statusID string, now time.Time) error {
	if statusID == "" {
		return httperr.NewValidation("missing_status", "status is required")
	}
	ap.StatusID = statusID
	ap.UpdatedAt = now
	return nil
}

// ===============================
// Regras de intervalo
// ===============================

// HasConflictWith compara intervalos meio-abertos [início, fim).
// Simétrica: A conflita com B sse B conflita com A.
func HasConflictWith(a, b *models.Appointment) bool {
	return !(a.EndTime().Compare(b.DateTime) <= 0 || a.DateTime.Compare(b.EndTime()) >= 0)
}

// CanBeModified exige mais de 24h de antecedência.
func CanBeModified(ap *models.Appointment, now time.Time) bool {
	return ap.DateTime.After(now.Add(ModificationWindow))
}
