package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule é uma faixa de expediente de um dia da semana.
// Mais de uma faixa por dia é permitido (turnos quebrados).
type Schedule struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// 0 = domingo ... 6 = sábado, igual a time.Weekday.
	DayOfWeek int `gorm:"index" json:"day_of_week"`

	StartTime string `gorm:"size:5;not null" json:"start_time"` // HH:MM
	EndTime   string `gorm:"size:5;not null" json:"end_time"`   // HH:MM

	HolidayID *string `gorm:"type:uuid" json:"holiday_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
