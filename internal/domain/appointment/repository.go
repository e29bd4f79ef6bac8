package appointment

import (
	"context"
	"time"

	"github.com/agendaplus/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Lookups de apoio --------
	GetClientByID(
		ctx context.Context,
		id string,
	) (*models.Client, error)

	GetStylistByID(
		ctx context.Context,
		id string,
	) (*models.Stylist, error)

	GetServiceByID(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	GetStatusByID(
		ctx context.Context,
		id string,
	) (*models.AppointmentStatus, error)

	GetStatusByName(
		ctx context.Context,
		name string,
	) (*models.AppointmentStatus, error)

	ListSchedulesByDayOfWeek(
		ctx context.Context,
		weekday int,
	) ([]models.Schedule, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointmentChecked roda a checagem de conflito e o insert na
	// mesma transação, com lock por stylist. Conflito vira erro 409.
	CreateAppointmentChecked(
		ctx context.Context,
		ap *models.Appointment,
	) error

	FindConflicting(
		ctx context.Context,
		stylistID string,
		start time.Time,
		end time.Time,
		excludeID string,
	) ([]models.Appointment, error)

	// -------- Appointment (leitura) --------
	GetAppointmentByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	ListAppointmentsByClient(
		ctx context.Context,
		clientID string,
	) ([]models.Appointment, error)

	ListAppointmentsForStylistDay(
		ctx context.Context,
		stylistID string,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (mutação) --------
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// UpdateAppointmentChecked re-roda a checagem de conflito (excluindo o
	// próprio agendamento) e persiste na mesma transação.
	UpdateAppointmentChecked(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
