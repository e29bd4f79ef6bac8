package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/httpresp"
	"github.com/agendaplus/salon-scheduler/internal/models"
	"github.com/agendaplus/salon-scheduler/internal/validators"
)

type StylistHandler struct {
	db *gorm.DB
}

func NewStylistHandler(db *gorm.DB) *StylistHandler {
	return &StylistHandler{db: db}
}

func (h *StylistHandler) List(c *gin.Context) {
	var stylists []models.Stylist
	if err := h.db.Preload("User").Find(&stylists).Error; err != nil {
		httperr.Internal(c, "failed_to_list_stylists", "Erro ao listar profissionais.")
		return
	}

	httpresp.List(c, stylists)
}

func (h *StylistHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !validators.IsUUID(id) {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	var stylist models.Stylist
	if err := h.db.Preload("User").First(&stylist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "stylist_not_found", "Profissional não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_stylist", "Erro ao buscar profissional.")
		return
	}

	httpresp.OK(c, "", stylist)
}
