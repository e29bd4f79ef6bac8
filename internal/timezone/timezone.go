package timezone

import (
	"sync/atomic"
	"time"
)

// FallbackTimezone vale enquanto Configure não rodou ou recebeu lixo.
const FallbackTimezone = "America/Sao_Paulo"

var salonTZ atomic.Pointer[time.Location]

// Configure define o fuso do salão (SALON_TIMEZONE). Chamado uma vez no
// boot; valor inválido mantém o fallback.
func Configure(tz string) {
	if tz == "" {
		return
	}
	if loc, err := time.LoadLocation(tz); err == nil {
		salonTZ.Store(loc)
	}
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolve um fuso explícito; string vazia ou inválida cai no
// fuso configurado do salão.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc := salonTZ.Load(); loc != nil {
		return loc
	}

	loc, _ := time.LoadLocation(FallbackTimezone)
	return loc
}

// Now é o relógio do salão: as regras de passado/futuro e a resolução de
// expediente partem deste instante.
func Now() time.Time {
	return time.Now().In(Location(""))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
