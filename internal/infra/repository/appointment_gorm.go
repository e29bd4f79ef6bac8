package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/agendaplus/salon-scheduler/internal/domain/appointment"
	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

var terminalStatusNames = []string{
	string(domain.StatusCompleted),
	string(domain.StatusCancelled),
	string(domain.StatusNoShow),
}

// --------------------------------------------------
// Lookups de apoio
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClientByID(
	ctx context.Context,
	id string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NewNotFound("client_not_found", "client not found")
		}
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetStylistByID(
	ctx context.Context,
	id string,
) (*models.Stylist, error) {

	var stylist models.Stylist
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&stylist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NewNotFound("stylist_not_found", "stylist not found")
		}
		return nil, err
	}
	return &stylist, nil
}

func (r *AppointmentGormRepository) GetServiceByID(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NewNotFound("service_not_found", "service not found")
		}
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetStatusByID(
	ctx context.Context,
	id string,
) (*models.AppointmentStatus, error) {

	var status models.AppointmentStatus
	if err := r.db.WithContext(ctx).First(&status, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NewNotFound("status_not_found", "appointment status not found")
		}
		return nil, err
	}
	return &status, nil
}

func (r *AppointmentGormRepository) GetStatusByName(
	ctx context.Context,
	name string,
) (*models.AppointmentStatus, error) {

	var status models.AppointmentStatus
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NewNotFound("status_not_found", "appointment status not found")
		}
		return nil, err
	}
	return &status, nil
}

func (r *AppointmentGormRepository) ListSchedulesByDayOfWeek(
	ctx context.Context,
	weekday int,
) ([]models.Schedule, error) {

	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).
		Where("day_of_week = ?", weekday).
		Order("start_time ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// conflictQuery monta a consulta de sobreposição meio-aberta para o mesmo
// stylist, ignorando status terminais.
func conflictQuery(
	tx *gorm.DB,
	stylistID string,
	start time.Time,
	end time.Time,
	excludeID string,
) *gorm.DB {

	q := tx.
		Model(&models.Appointment{}).
		Joins("JOIN appointment_statuses ON appointment_statuses.id = appointments.status_id").
		Where("appointments.stylist_id = ?", stylistID).
		Where("appointment_statuses.name NOT IN ?", terminalStatusNames).
		Where(
			"appointments.date_time < ? AND appointments.date_time + make_interval(mins => appointments.duration_min) > ?",
			end,
			start,
		)

	if excludeID != "" {
		q = q.Where("appointments.id <> ?", excludeID)
	}
	return q
}

// lockStylist serializa os bookings de um mesmo stylist dentro da
// transação. FOR UPDATE em slot livre não segura nada (zero linhas, zero
// locks), então o lock é consultivo, chaveado no id do stylist e liberado
// no commit/rollback.
func lockStylist(tx *gorm.DB, stylistID string) error {
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", stylistID).Error
}

// CreateAppointmentChecked faz a checagem de conflito e o insert na mesma
// transação, serializada por stylist via advisory lock.
func (r *AppointmentGormRepository) CreateAppointmentChecked(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Agendamento sem stylist nunca conflita.
		if ap.StylistID != nil {
			if err := lockStylist(tx, *ap.StylistID); err != nil {
				return err
			}

			var conflicts []models.Appointment
			if err := conflictQuery(tx, *ap.StylistID, ap.DateTime, ap.EndTime(), "").
				Find(&conflicts).Error; err != nil {
				return err
			}

			if len(conflicts) > 0 {
				return httperr.NewConflict("time_conflict", "stylist already has an appointment in this time range")
			}
		}

		return tx.Create(ap).Error
	})
}

func (r *AppointmentGormRepository) FindConflicting(
	ctx context.Context,
	stylistID string,
	start time.Time,
	end time.Time,
	excludeID string,
) ([]models.Appointment, error) {

	var conflicts []models.Appointment
	if err := conflictQuery(r.db.WithContext(ctx), stylistID, start, end, excludeID).
		Find(&conflicts).Error; err != nil {
		return nil, err
	}
	return conflicts, nil
}

// --------------------------------------------------
// Appointment (leitura)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Stylist").
		Preload("Status").
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&ap, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NewNotFound("appointment_not_found", "appointment not found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByClient(
	ctx context.Context,
	clientID string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Status").
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("client_id = ?", clientID).
		Order("date_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForStylistDay(
	ctx context.Context,
	stylistID string,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Joins("JOIN appointment_statuses ON appointment_statuses.id = appointments.status_id").
		Where("appointments.stylist_id = ?", stylistID).
		Where("appointment_statuses.name NOT IN ?", terminalStatusNames).
		Where("appointments.date_time >= ? AND appointments.date_time < ?", start, end).
		Order("appointments.date_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Appointment (mutação)
// --------------------------------------------------

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) UpdateAppointmentChecked(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if ap.StylistID != nil {
			if err := lockStylist(tx, *ap.StylistID); err != nil {
				return err
			}

			var conflicts []models.Appointment
			if err := conflictQuery(tx, *ap.StylistID, ap.DateTime, ap.EndTime(), ap.ID).
				Find(&conflicts).Error; err != nil {
				return err
			}

			if len(conflicts) > 0 {
				return httperr.NewConflict("time_conflict", "stylist already has an appointment in this time range")
			}
		}

		return tx.Save(ap).Error
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
