package models

import "time"

// StylistService vincula profissional e serviço, com preço opcionalmente
// customizado por profissional.
type StylistService struct {
	StylistID string `gorm:"type:uuid;primaryKey" json:"stylist_id"`
	ServiceID string `gorm:"type:uuid;primaryKey" json:"service_id"`

	Stylist Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Service Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CustomPriceCents *int64 `json:"custom_price_cents,omitempty"`
	IsOffering       bool   `gorm:"default:true" json:"is_offering"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
