package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/agendaplus/salon-scheduler/internal/domain/schedule"
	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/httpresp"
	"github.com/agendaplus/salon-scheduler/internal/models"
	"github.com/agendaplus/salon-scheduler/internal/validators"
)

type ScheduleHandler struct {
	repo domain.Repository
}

func NewScheduleHandler(repo domain.Repository) *ScheduleHandler {
	return &ScheduleHandler{repo: repo}
}

// --------- Requests ---------

type ScheduleRequest struct {
	DayOfWeek int     `json:"day_of_week" binding:"min=0,max=6"`
	StartTime string  `json:"start_time" binding:"required"`
	EndTime   string  `json:"end_time" binding:"required"`
	HolidayID *string `json:"holiday_id,omitempty"`
}

// --------- Handlers ---------

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	s := models.Schedule{
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		HolidayID: req.HolidayID,
	}

	if err := domain.Validate(&s); err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.repo.Create(c.Request.Context(), &s); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Expediente criado.", s)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !validators.IsUUID(id) {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	existing, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	existing.DayOfWeek = req.DayOfWeek
	existing.StartTime = req.StartTime
	existing.EndTime = req.EndTime
	existing.HolidayID = req.HolidayID

	if err := domain.Validate(existing); err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.repo.Update(c.Request.Context(), existing); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Expediente atualizado.", existing)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !validators.IsUUID(id) {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Expediente removido.", nil)
}

func (h *ScheduleHandler) List(c *gin.Context) {
	// Filtro opcional por dia da semana.
	if dayStr := c.Query("day_of_week"); dayStr != "" {
		day, err := strconv.Atoi(dayStr)
		if err != nil || day < 0 || day > 6 {
			httperr.BadRequest(c, "invalid_day_of_week", "Dia da semana inválido.")
			return
		}

		schedules, err := h.repo.FindByDayOfWeek(c.Request.Context(), day)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		httpresp.List(c, schedules)
		return
	}

	schedules, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, schedules)
}

// Slots derivados do expediente, sem olhar agendamentos.
func (h *ScheduleHandler) Slots(c *gin.Context) {
	id := c.Param("id")
	if !validators.IsUUID(id) {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	s, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	slotMin := domain.DefaultSlotMin
	if v := c.Query("slot_min"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			slotMin = n
		}
	}

	httpresp.OK(c, "", gin.H{
		"schedule_id": s.ID,
		"slot_min":    slotMin,
		"slots":       domain.AvailableSlots(s, slotMin),
	})
}
