package appointment

import (
	"time"

	"github.com/agendaplus/salon-scheduler/internal/models"
)

// ======================================================
// OUTPUT DTO
// ======================================================

// DTO serializa datas em ISO-8601 e omite opcionais ausentes
// (campo fora do JSON, nunca null).
type DTO struct {
	ID          string   `json:"id"`
	DateTime    string   `json:"date_time"`
	DurationMin int      `json:"duration_min"`
	UserID      string   `json:"user_id"`
	ClientID    string   `json:"client_id"`
	StylistID   *string  `json:"stylist_id,omitempty"`
	ScheduleID  string   `json:"schedule_id"`
	StatusID    string   `json:"status_id"`
	Status      string   `json:"status,omitempty"`
	ConfirmedAt *string  `json:"confirmed_at,omitempty"`
	ServiceIDs  []string `json:"service_ids"`
	Notes       string   `json:"notes,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func toDTO(ap *models.Appointment) DTO {
	dto := DTO{
		ID:          ap.ID,
		DateTime:    ap.DateTime.Format(time.RFC3339),
		DurationMin: ap.DurationMin,
		UserID:      ap.UserID,
		ClientID:    ap.ClientID,
		StylistID:   ap.StylistID,
		ScheduleID:  ap.ScheduleID,
		StatusID:    ap.StatusID,
		Status:      ap.Status.Name,
		ServiceIDs:  ap.ServiceIDs(),
		Notes:       ap.Notes,
		CreatedAt:   ap.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   ap.UpdatedAt.Format(time.RFC3339),
	}

	if ap.ConfirmedAt != nil {
		confirmed := ap.ConfirmedAt.Format(time.RFC3339)
		dto.ConfirmedAt = &confirmed
	}

	return dto
}

func toDTOs(aps []models.Appointment) []DTO {
	dtos := make([]DTO, 0, len(aps))
	for i := range aps {
		dtos = append(dtos, toDTO(&aps[i]))
	}
	return dtos
}
