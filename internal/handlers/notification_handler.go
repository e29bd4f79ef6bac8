package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/httpresp"
	"github.com/agendaplus/salon-scheduler/internal/middleware"
	"github.com/agendaplus/salon-scheduler/internal/notification"
	"github.com/agendaplus/salon-scheduler/internal/validators"
)

type NotificationHandler struct {
	store *notification.Store
}

func NewNotificationHandler(store *notification.Store) *NotificationHandler {
	return &NotificationHandler{store: store}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	list, err := h.store.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Erro ao listar notificações.")
		return
	}

	httpresp.List(c, list)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	id := c.Param("id")
	if !validators.IsUUID(id) {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	if err := h.store.MarkRead(c.Request.Context(), userID, id); err != nil {
		httperr.Internal(c, "failed_to_mark_read", "Erro ao marcar notificação.")
		return
	}

	httpresp.OK(c, "Notificação lida.", nil)
}
