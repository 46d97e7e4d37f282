package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loveadmin_backend/internal/services"
	"loveadmin_backend/pkg/apperrors"
)

// APIHandler serves the credential pages: keys, the call log and block lists.
type APIHandler struct {
	*BaseHandler
	apiService services.APIService
}

func NewAPIHandler(base *BaseHandler, apiService services.APIService) *APIHandler {
	return &APIHandler{
		BaseHandler: base,
		apiService:  apiService,
	}
}

func (h *APIHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/logs", h.ListLogs)
	r.GET("/keys", h.ListKeys)
	r.GET("/blocklists", h.ListBlockLists)
}

func (h *APIHandler) ListLogs(c *gin.Context) {
	logs, err := h.apiService.ListLogs()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

func (h *APIHandler) ListKeys(c *gin.Context) {
	keys, err := h.apiService.ListKeys()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, keys)
}

func (h *APIHandler) ListBlockLists(c *gin.Context) {
	lists, err := h.apiService.ListBlockLists()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, lists)
}
