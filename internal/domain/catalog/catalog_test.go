package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/models"
)

func TestValidateCategory(t *testing.T) {
	ok := &models.Category{Name: "Coloração", Description: "Tintura e mechas"}
	assert.NoError(t, ValidateCategory(ok))

	cases := []struct {
		name string
		c    *models.Category
		code string
	}{
		{"empty name", &models.Category{Name: ""}, "missing_name"},
		{"blank name", &models.Category{Name: "   "}, "missing_name"},
		{"name too long", &models.Category{Name: strings.Repeat("a", 101)}, "name_too_long"},
		{"description too long", &models.Category{
			Name:        "Cortes",
			Description: strings.Repeat("d", 501),
		}, "description_too_long"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCategory(tc.c)
			require.Error(t, err)
			assert.True(t, httperr.IsCode(err, tc.code))
		})
	}

	// Limites exatos passam.
	assert.NoError(t, ValidateCategory(&models.Category{
		Name:        strings.Repeat("a", 100),
		Description: strings.Repeat("d", 500),
	}))
}

func TestValidateService(t *testing.T) {
	valid := func() *models.Service {
		return &models.Service{
			Name:                 "Corte feminino",
			CategoryID:           "cat-1",
			DurationMin:          60,
			DurationVariationMin: 15,
			PriceCents:           5000,
		}
	}

	assert.NoError(t, ValidateService(valid()))

	cases := []struct {
		name   string
		mutate func(*models.Service)
		code   string
	}{
		{"no name", func(s *models.Service) { s.Name = " " }, "missing_name"},
		{"no category", func(s *models.Service) { s.CategoryID = "" }, "missing_category"},
		{"zero duration", func(s *models.Service) { s.DurationMin = 0 }, "invalid_duration"},
		{"duration too long", func(s *models.Service) { s.DurationMin = 601 }, "invalid_duration"},
		{"negative variation", func(s *models.Service) { s.DurationVariationMin = -1 }, "invalid_duration_variation"},
		{"variation exceeds duration", func(s *models.Service) { s.DurationVariationMin = 61 }, "invalid_duration_variation"},
		{"negative price", func(s *models.Service) { s.PriceCents = -100 }, "invalid_price"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.mutate(s)

			err := ValidateService(s)
			require.Error(t, err)
			assert.True(t, httperr.IsCode(err, tc.code))
		})
	}

	// Variação igual à duração é o limite permitido.
	s := valid()
	s.DurationVariationMin = s.DurationMin
	assert.NoError(t, ValidateService(s))
}

func TestFormattedPrice(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{5000, "50.00"},
		{5050, "50.50"},
		{5005, "50.05"},
		{99, "0.99"},
		{0, "0.00"},
		{123456, "1234.56"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormattedPrice(tc.cents))
	}
}

func TestDurationRange(t *testing.T) {
	s := &models.Service{DurationMin: 60, DurationVariationMin: 15}
	assert.Equal(t, 45, MinDuration(s))
	assert.Equal(t, 75, MaxDuration(s))

	noVar := &models.Service{DurationMin: 30}
	assert.Equal(t, 30, MinDuration(noVar))
	assert.Equal(t, 30, MaxDuration(noVar))
}

func TestValidateStylistService(t *testing.T) {
	price := int64(4500)
	assert.NoError(t, ValidateStylistService(&models.StylistService{
		StylistID:        "sty-1",
		ServiceID:        "svc-1",
		CustomPriceCents: &price,
	}))

	err := ValidateStylistService(&models.StylistService{ServiceID: "svc-1"})
	require.Error(t, err)
	assert.True(t, httperr.IsCode(err, "missing_stylist"))

	err = ValidateStylistService(&models.StylistService{StylistID: "sty-1"})
	require.Error(t, err)
	assert.True(t, httperr.IsCode(err, "missing_service"))

	negative := int64(-1)
	err = ValidateStylistService(&models.StylistService{
		StylistID:        "sty-1",
		ServiceID:        "svc-1",
		CustomPriceCents: &negative,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsCode(err, "invalid_price"))
}

func TestEffectivePrice(t *testing.T) {
	base := &models.Service{PriceCents: 5000}

	custom := int64(4500)
	assert.Equal(t, int64(4500), EffectivePrice(&models.StylistService{CustomPriceCents: &custom}, base))

	// Sem preço customizado cai no preço base.
	assert.Equal(t, int64(5000), EffectivePrice(&models.StylistService{}, base))
	assert.Equal(t, int64(5000), EffectivePrice(nil, base))
}
