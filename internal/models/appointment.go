package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	DateTime    time.Time `gorm:"index" json:"date_time"`
	DurationMin int       `json:"duration_min"`

	// Quem criou o agendamento (conta logada).
	UserID string `gorm:"type:uuid;not null" json:"user_id"`

	ClientID string `gorm:"type:uuid;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	StylistID *string  `gorm:"type:uuid;index" json:"stylist_id,omitempty"`
	Stylist   *Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"stylist,omitempty"`

	ScheduleID string   `gorm:"type:uuid;not null" json:"schedule_id"`
	Schedule   Schedule `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	StatusID string            `gorm:"type:uuid;not null" json:"status_id"`
	Status   AppointmentStatus `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`

	Notes string `gorm:"size:255" json:"notes"`

	// Serviços do atendimento, ordem de inserção preservada via Position.
	Services []AppointmentService `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE;" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentService é a linha da join appointment↔service.
type AppointmentService struct {
	AppointmentID string `gorm:"type:uuid;primaryKey" json:"-"`
	ServiceID     string `gorm:"type:uuid;primaryKey" json:"service_id"`
	Position      int    `gorm:"not null" json:"position"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// EndTime devolve o fim do intervalo meio-aberto [DateTime, EndTime).
func (a *Appointment) EndTime() time.Time {
	return a.DateTime.Add(time.Duration(a.DurationMin) * time.Minute)
}

// ServiceIDs devolve os ids na ordem de inserção.
func (a *Appointment) ServiceIDs() []string {
	ids := make([]string, 0, len(a.Services))
	for _, s := range a.Services {
		ids = append(ids, s.ServiceID)
	}
	return ids
}

// SetServiceIDs substitui a lista preservando a ordem recebida.
func (a *Appointment) SetServiceIDs(ids []string) {
	services := make([]AppointmentService, 0, len(ids))
	for i, id := range ids {
		services = append(services, AppointmentService{
			AppointmentID: a.ID,
			ServiceID:     id,
			Position:      i,
		})
	}
	a.Services = services
}
