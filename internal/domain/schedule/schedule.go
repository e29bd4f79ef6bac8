package schedule

import (
	"fmt"
	"regexp"
	"time"

	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/models"
)

const (
	// Faixa de expediente precisa de pelo menos meia hora.
	MinSpanMin = 30

	DefaultSlotMin = 30
)

var hhmmRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ===============================
// Validação
// ===============================

func IsValidHHMM(s string) bool {
	return hhmmRe.MatchString(s)
}

// minutesOf converte "HH:MM" em minutos desde meia-noite.
// Chamar só depois de IsValidHHMM.
func minutesOf(hhmm string) int {
	var h, m int
	fmt.Sscanf(hhmm, "%d:%d", &h, &m)
	return h*60 + m
}

func Validate(s *models.Schedule) error {
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return httperr.NewValidation("invalid_day_of_week", "day of week must be between 0 (Sunday) and 6 (Saturday)")
	}
	if !IsValidHHMM(s.StartTime) {
		return httperr.NewValidation("invalid_start_time", "start time must be HH:MM")
	}
	if !IsValidHHMM(s.EndTime) {
		return httperr.NewValidation("invalid_end_time", "end time must be HH:MM")
	}

	start := minutesOf(s.StartTime)
	end := minutesOf(s.EndTime)

	if start >= end {
		return httperr.NewValidation("invalid_time_range", "start time must be before end time")
	}
	if end-start < MinSpanMin {
		return httperr.NewValidation("time_range_too_short", "schedule must span at least 30 minutes")
	}
	return nil
}

// ===============================
// Slots
// ===============================

// AvailableSlots caminha do início ao fim em passos fixos e só emite o
// slot se ele couber inteiro antes do fim (sem slot parcial no final).
func AvailableSlots(s *models.Schedule, slotMin int) []string {
	if slotMin <= 0 {
		slotMin = DefaultSlotMin
	}

	start := minutesOf(s.StartTime)
	end := minutesOf(s.EndTime)

	var slots []string
	for cur := start; cur+slotMin <= end; cur += slotMin {
		slots = append(slots, fmt.Sprintf("%02d:%02d", cur/60, cur%60))
	}
	return slots
}

// WithinWorkingHours é inclusivo nas duas pontas.
func WithinWorkingHours(s *models.Schedule, hhmm string) bool {
	if !IsValidHHMM(hhmm) {
		return false
	}

	t := minutesOf(hhmm)
	return t >= minutesOf(s.StartTime) && t <= minutesOf(s.EndTime)
}

// ContainsInterval diz se [start, end) cabe dentro do expediente do dia.
// Datas são resolvidas no fuso do instante recebido.
func ContainsInterval(s *models.Schedule, start, end time.Time) bool {
	if int(start.Weekday()) != s.DayOfWeek {
		return false
	}

	loc := start.Location()
	dayStart := at(start, s.StartTime, loc)
	dayEnd := at(start, s.EndTime, loc)

	return !start.Before(dayStart) && !end.After(dayEnd)
}

// at ancora "HH:MM" no dia de ref.
func at(ref time.Time, hhmm string, loc *time.Location) time.Time {
	t, _ := time.Parse("15:04", hhmm)
	return time.Date(
		ref.Year(), ref.Month(), ref.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	)
}
