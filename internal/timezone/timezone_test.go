package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetTZ() {
	salonTZ.Store(nil)
}

func TestLocationFallback(t *testing.T) {
	resetTZ()
	t.Cleanup(resetTZ)

	assert.Equal(t, FallbackTimezone, Location("").String())
	assert.Equal(t, FallbackTimezone, Location("Not/AZone").String())
	assert.Equal(t, "Europe/Lisbon", Location("Europe/Lisbon").String())
}

func TestConfigureChangesSalonClock(t *testing.T) {
	resetTZ()
	t.Cleanup(resetTZ)

	Configure("America/New_York")
	assert.Equal(t, "America/New_York", Location("").String())
	assert.Equal(t, "America/New_York", Now().Location().String())

	// Fuso explícito continua ganhando do configurado.
	assert.Equal(t, "Europe/Lisbon", Location("Europe/Lisbon").String())

	// Parse de data do handler de disponibilidade segue o fuso do salão.
	day, err := time.ParseInLocation("2006-01-02", "2025-06-02", Location(""))
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", day.Location().String())
}

func TestConfigureIgnoresInvalid(t *testing.T) {
	resetTZ()
	t.Cleanup(resetTZ)

	Configure("")
	assert.Equal(t, FallbackTimezone, Location("").String())

	Configure("Not/AZone")
	assert.Equal(t, FallbackTimezone, Location("").String())

	Configure("UTC")
	assert.Equal(t, "UTC", Location("").String())

	// Configuração inválida depois de uma válida não regride.
	Configure("garbage")
	assert.Equal(t, "UTC", Location("").String())
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("America/Sao_Paulo"))
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Not/AZone"))
}
