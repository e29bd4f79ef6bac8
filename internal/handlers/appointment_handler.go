package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/agendaplus/salon-scheduler/internal/domain/appointment"
	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/httpresp"
	"github.com/agendaplus/salon-scheduler/internal/middleware"
	"github.com/agendaplus/salon-scheduler/internal/timezone"
	ucAppointment "github.com/agendaplus/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.Create
	getByID      *ucAppointment.GetByID
	listByClient *ucAppointment.ListByClient
	changeStatus *ucAppointment.ChangeStatus
	reschedule   *ucAppointment.Reschedule
	availability *ucAppointment.GetAvailability
}

func NewAppointmentHandler(
	create *ucAppointment.Create,
	getByID *ucAppointment.GetByID,
	listByClient *ucAppointment.ListByClient,
	changeStatus *ucAppointment.ChangeStatus,
	reschedule *ucAppointment.Reschedule,
	availability *ucAppointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		getByID:      getByID,
		listByClient: listByClient,
		changeStatus: changeStatus,
		reschedule:   reschedule,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	DateTime   string   `json:"date_time" binding:"required"`
	ClientID   string   `json:"client_id" binding:"required"`
	StylistID  *string  `json:"stylist_id"`
	ServiceIDs []string `json:"service_ids" binding:"required,min=1"`
	Notes      string   `json:"notes"`
}

type RescheduleRequest struct {
	DateTime    string `json:"date_time" binding:"required"`
	DurationMin int    `json:"duration_min"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	dto, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateInput{
		DateTime:   req.DateTime,
		ClientID:   req.ClientID,
		StylistID:  req.StylistID,
		ServiceIDs: req.ServiceIDs,
		Notes:      req.Notes,
		UserID:     userID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Agendamento criado.", dto)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	dto, err := h.getByID.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "", dto)
}

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	clientID := c.Query("client_id")
	if clientID == "" {
		httperr.BadRequest(c, "missing_client_id", "client_id obrigatório.")
		return
	}

	dtos, err := h.listByClient.Execute(c.Request.Context(), clientID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dtos)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, domain.StatusConfirmed)
}

func (h *AppointmentHandler) Start(c *gin.Context) {
	h.transition(c, domain.StatusInProgress)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, domain.StatusCompleted)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, domain.StatusCancelled)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	h.transition(c, domain.StatusNoShow)
}

func (h *AppointmentHandler) transition(c *gin.Context, target domain.StatusName) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	dto, err := h.changeStatus.Execute(c.Request.Context(), c.Param("id"), target, userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Status atualizado.", dto)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	dto, err := h.reschedule.Execute(c.Request.Context(), ucAppointment.RescheduleInput{
		AppointmentID: c.Param("id"),
		DateTime:      req.DateTime,
		DurationMin:   req.DurationMin,
		ActingUserID:  userID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Agendamento remarcado.", dto)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	stylistID := c.Query("stylist_id")
	dateStr := c.Query("date")
	serviceID := c.Query("service_id")

	if stylistID == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "stylist_id e date obrigatórios.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(""))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		StylistID: stylistID,
		Date:      date,
		ServiceID: serviceID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "", gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
