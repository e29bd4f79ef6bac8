package appointment

import (
	"context"
	"time"

	"github.com/agendaplus/salon-scheduler/internal/cache"
	domain "github.com/agendaplus/salon-scheduler/internal/domain/appointment"
	domainschedule "github.com/agendaplus/salon-scheduler/internal/domain/schedule"
	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/validators"
)

// ======================================================
// AVAILABILITY
// ======================================================

type AvailabilityInput struct {
	StylistID string
	Date      time.Time
	// Serviço opcional: quando presente, o slot tem a duração dele.
	ServiceID string
}

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetAvailability(repo domain.Repository, availability *cache.AvailabilityCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: availability}
}

func (uc *GetAvailability) Execute(ctx context.Context, in AvailabilityInput) ([]string, error) {

	if !validators.IsUUID(in.StylistID) {
		return nil, httperr.NewValidation("invalid_id", "stylist id must be a valid UUID")
	}

	if _, err := uc.repo.GetStylistByID(ctx, in.StylistID); err != nil {
		return nil, err
	}

	slotMin := domainschedule.DefaultSlotMin
	if in.ServiceID != "" {
		service, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
		if err != nil {
			return nil, err
		}
		slotMin = service.DurationMin
	}

	if slots, ok := uc.cache.Get(ctx, in.StylistID, in.Date, slotMin); ok {
		return slots, nil
	}

	schedules, err := uc.repo.ListSchedulesByDayOfWeek(ctx, int(in.Date.Weekday()))
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return []string{}, nil
	}

	loc := in.Date.Location()
	dayStart := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	booked, err := uc.repo.ListAppointmentsForStylistDay(ctx, in.StylistID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slotDur := time.Duration(slotMin) * time.Minute

	// Slots de todas as faixas do dia, descartando os que colidem com
	// agendamentos não terminais do stylist.
	slots := []string{}
	for i := range schedules {
		for _, hhmm := range domainschedule.AvailableSlots(&schedules[i], slotMin) {
			t, _ := time.Parse("15:04", hhmm)
			slotStart := time.Date(
				in.Date.Year(), in.Date.Month(), in.Date.Day(),
				t.Hour(), t.Minute(), 0, 0,
				loc,
			)
			slotEnd := slotStart.Add(slotDur)

			conflict := false
			for j := range booked {
				if slotStart.Before(booked[j].EndTime()) && slotEnd.After(booked[j].DateTime) {
					conflict = true
					break
				}
			}

			if !conflict {
				slots = append(slots, hhmm)
			}
		}
	}

	uc.cache.Set(ctx, in.StylistID, in.Date, slotMin, slots)
	return slots, nil
}
