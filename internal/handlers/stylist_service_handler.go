package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/agendaplus/salon-scheduler/internal/domain/catalog"
	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/httpresp"
	ucCatalog "github.com/agendaplus/salon-scheduler/internal/usecase/catalog"
)

type StylistServiceHandler struct {
	assignments *ucCatalog.StylistServiceService
}

func NewStylistServiceHandler(assignments *ucCatalog.StylistServiceService) *StylistServiceHandler {
	return &StylistServiceHandler{assignments: assignments}
}

// --------- Requests ---------

type AssignServiceRequest struct {
	ServiceID        string `json:"service_id" binding:"required"`
	CustomPriceCents *int64 `json:"custom_price_cents"`
	IsOffering       *bool  `json:"is_offering"`
}

// --------- Handlers ---------

func (h *StylistServiceHandler) Assign(c *gin.Context) {
	var req AssignServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	offering := true
	if req.IsOffering != nil {
		offering = *req.IsOffering
	}

	assignment, err := h.assignments.Assign(c.Request.Context(), ucCatalog.AssignInput{
		StylistID:        c.Param("id"),
		ServiceID:        req.ServiceID,
		CustomPriceCents: req.CustomPriceCents,
		IsOffering:       offering,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Serviço vinculado ao profissional.", assignment)
}

func (h *StylistServiceHandler) Unassign(c *gin.Context) {
	if err := h.assignments.Unassign(c.Request.Context(), c.Param("id"), c.Param("serviceId")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Vínculo removido.", nil)
}

func (h *StylistServiceHandler) List(c *gin.Context) {
	list, err := h.assignments.ListByStylist(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *StylistServiceHandler) EffectivePrice(c *gin.Context) {
	cents, err := h.assignments.EffectivePrice(c.Request.Context(), c.Param("id"), c.Param("serviceId"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "", gin.H{
		"price_cents":     cents,
		"formatted_price": domain.FormattedPrice(cents),
	})
}
