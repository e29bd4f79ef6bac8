package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	CategoryID string   `gorm:"type:uuid;not null" json:"category_id"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`

	DurationMin int `json:"duration_min"`
	// Variação para mais ou para menos sobre a duração base.
	DurationVariationMin int `json:"duration_variation_min"`

	// Preço sempre em centavos. Conversão para decimal só na borda.
	PriceCents int64 `json:"price_cents"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
