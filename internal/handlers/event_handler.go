package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loveadmin_backend/internal/dto"
	"loveadmin_backend/internal/services"
	"loveadmin_backend/pkg/apperrors"
)

type EventHandler struct {
	*BaseHandler
	eventService services.EventService
}

func NewEventHandler(base *BaseHandler, eventService services.EventService) *EventHandler {
	return &EventHandler{
		BaseHandler:  base,
		eventService: eventService,
	}
}

func (h *EventHandler) RegisterRoutes(r *gin.RouterGroup) {
	events := r.Group("/events")
	{
		events.GET("", h.ListEvents)
		events.PUT("/:id", h.UpdateEventStatus)
	}
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventService.List()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) UpdateEventStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if _, err := h.eventService.UpdateStatus(c.Param("id"), req.Status); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
