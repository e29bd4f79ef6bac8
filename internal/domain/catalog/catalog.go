package catalog

import (
	"fmt"
	"strings"

	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/models"
)

const (
	MaxCategoryNameLen = 100
	MaxDescriptionLen  = 500

	MinServiceDurationMin = 1
	MaxServiceDurationMin = 600
)

// ===============================
// Category
// ===============================

func ValidateCategory(c *models.Category) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return httperr.NewValidation("missing_name", "category name is required")
	}
	if len(name) > MaxCategoryNameLen {
		return httperr.NewValidation("name_too_long", "category name must have at most 100 characters")
	}
	if len(c.Description) > MaxDescriptionLen {
		return httperr.NewValidation("description_too_long", "category description must have at most 500 characters")
	}
	return nil
}

// ===============================
// Service
// ===============================

func ValidateService(s *models.Service) error {
	if strings.TrimSpace(s.Name) == "" {
		return httperr.NewValidation("missing_name", "service name is required")
	}
	if s.CategoryID == "" {
		return httperr.NewValidation("missing_category", "service category is required")
	}
	if s.DurationMin < MinServiceDurationMin || s.DurationMin > MaxServiceDurationMin {
		return httperr.NewValidation("invalid_duration", "service duration must be between 1 and 600 minutes")
	}
	if s.DurationVariationMin < 0 || s.DurationVariationMin > s.DurationMin {
		return httperr.NewValidation("invalid_duration_variation", "duration variation must be between 0 and the base duration")
	}
	if s.PriceCents < 0 {
		return httperr.NewValidation("invalid_price", "price cannot be negative")
	}
	return nil
}

// FormattedPrice converte centavos para decimal na borda: 5000 → "50.00".
func FormattedPrice(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func MinDuration(s *models.Service) int {
	return s.DurationMin - s.DurationVariationMin
}

func MaxDuration(s *models.Service) int {
	return s.DurationMin + s.DurationVariationMin
}

// ===============================
// StylistService
// ===============================

func ValidateStylistService(a *models.StylistService) error {
	if a.StylistID == "" {
		return httperr.NewValidation("missing_stylist", "stylist is required")
	}
	if a.ServiceID == "" {
		return httperr.NewValidation("missing_service", "service is required")
	}
	if a.CustomPriceCents != nil && *a.CustomPriceCents < 0 {
		return httperr.NewValidation("invalid_price", "custom price cannot be negative")
	}
	return nil
}

// EffectivePrice: preço customizado do profissional quando definido,
// senão o preço base do serviço.
func EffectivePrice(a *models.StylistService, base *models.Service) int64 {
	if a != nil && a.CustomPriceCents != nil {
		return *a.CustomPriceCents
	}
	return base.PriceCents
}
