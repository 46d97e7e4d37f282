package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loveadmin_backend/internal/dto"
	"loveadmin_backend/internal/services"
	"loveadmin_backend/pkg/apperrors"
)

type VerificationHandler struct {
	*BaseHandler
	verificationService services.VerificationService
}

func NewVerificationHandler(base *BaseHandler, verificationService services.VerificationService) *VerificationHandler {
	return &VerificationHandler{
		BaseHandler:         base,
		verificationService: verificationService,
	}
}

func (h *VerificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	verifications := r.Group("/verifications")
	{
		verifications.GET("", h.ListVerifications)
		verifications.PUT("/:id", h.UpdateVerificationStatus)
	}
}

func (h *VerificationHandler) ListVerifications(c *gin.Context) {
	verifications, err := h.verificationService.List()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, verifications)
}

func (h *VerificationHandler) UpdateVerificationStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if _, err := h.verificationService.UpdateStatus(c.Param("id"), req.Status); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
