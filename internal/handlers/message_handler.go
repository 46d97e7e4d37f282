package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loveadmin_backend/internal/services"
	"loveadmin_backend/pkg/apperrors"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
	}
}

func (h *MessageHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/messages", h.ListMessages)
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	messages, err := h.messageService.List()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
