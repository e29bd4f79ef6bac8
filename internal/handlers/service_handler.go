package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/agendaplus/salon-scheduler/internal/domain/catalog"
	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/httpresp"
	"github.com/agendaplus/salon-scheduler/internal/models"
	ucCatalog "github.com/agendaplus/salon-scheduler/internal/usecase/catalog"
)

type ServiceHandler struct {
	services *ucCatalog.ServiceManagement
}

func NewServiceHandler(services *ucCatalog.ServiceManagement) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	CategoryID           string `json:"category_id" binding:"required"`
	Name                 string `json:"name" binding:"required"`
	Description          string `json:"description"`
	DurationMin          int    `json:"duration_min" binding:"required,min=1"`
	DurationVariationMin int    `json:"duration_variation_min"`
	PriceCents           int64  `json:"price_cents"`
}

type UpdateServiceRequest struct {
	Name                 *string `json:"name,omitempty"`
	Description          *string `json:"description,omitempty"`
	DurationMin          *int    `json:"duration_min,omitempty"`
	DurationVariationMin *int    `json:"duration_variation_min,omitempty"`
	PriceCents           *int64  `json:"price_cents,omitempty"`
	Active               *bool   `json:"active,omitempty"`
}

// serviceView expõe o preço formatado junto dos centavos.
type serviceView struct {
	models.Service
	FormattedPrice string `json:"formatted_price"`
	MinDurationMin int    `json:"min_duration_min"`
	MaxDurationMin int    `json:"max_duration_min"`
}

func toServiceView(s *models.Service) serviceView {
	return serviceView{
		Service:        *s,
		FormattedPrice: domain.FormattedPrice(s.PriceCents),
		MinDurationMin: domain.MinDuration(s),
		MaxDurationMin: domain.MaxDuration(s),
	}
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service, err := h.services.Create(c.Request.Context(), ucCatalog.CreateServiceInput{
		CategoryID:           req.CategoryID,
		Name:                 req.Name,
		Description:          req.Description,
		DurationMin:          req.DurationMin,
		DurationVariationMin: req.DurationVariationMin,
		PriceCents:           req.PriceCents,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Serviço criado.", toServiceView(service))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service, err := h.services.Update(c.Request.Context(), c.Param("id"), ucCatalog.UpdateServiceInput{
		Name:                 req.Name,
		Description:          req.Description,
		DurationMin:          req.DurationMin,
		DurationVariationMin: req.DurationVariationMin,
		PriceCents:           req.PriceCents,
		Active:               req.Active,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Serviço atualizado.", toServiceView(service))
}

func (h *ServiceHandler) Get(c *gin.Context) {
	service, err := h.services.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "", toServiceView(service))
}

func (h *ServiceHandler) List(c *gin.Context) {
	onlyActive := c.Query("active") == "true"
	categoryID := c.Query("category_id")

	services, err := h.services.List(c.Request.Context(), onlyActive, categoryID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	views := make([]serviceView, 0, len(services))
	for i := range services {
		views = append(views, toServiceView(&services[i]))
	}

	httpresp.List(c, views)
}
