package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus é persistido como linha própria; a máquina de estados
// trabalha sobre o nome canônico (internal/domain/appointment/status.go).
type AppointmentStatus struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string `gorm:"size:30;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *AppointmentStatus) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
