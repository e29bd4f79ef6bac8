package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/httpresp"
	ucCatalog "github.com/agendaplus/salon-scheduler/internal/usecase/catalog"
)

type CategoryHandler struct {
	categories *ucCatalog.CategoryService
}

func NewCategoryHandler(categories *ucCatalog.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// --------- Requests ---------

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	category, err := h.categories.Create(c.Request.Context(), ucCatalog.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Categoria criada.", category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	category, err := h.categories.Update(c.Request.Context(), c.Param("id"), ucCatalog.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Categoria atualizada.", category)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.categories.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "", category)
}

func (h *CategoryHandler) List(c *gin.Context) {
	onlyActive := c.Query("active") == "true"

	categories, err := h.categories.List(c.Request.Context(), onlyActive)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, categories)
}

func (h *CategoryHandler) Deactivate(c *gin.Context) {
	category, err := h.categories.Deactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Categoria desativada.", category)
}
