package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loveadmin_backend/internal/dto"
	"loveadmin_backend/internal/services"
	"loveadmin_backend/pkg/apperrors"
)

type ReportHandler struct {
	*BaseHandler
	reportService services.ReportService
}

func NewReportHandler(base *BaseHandler, reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   base,
		reportService: reportService,
	}
}

func (h *ReportHandler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.GET("", h.ListReports)
		reports.PUT("/:id", h.UpdateReportStatus)
	}
}

func (h *ReportHandler) ListReports(c *gin.Context) {
	reports, err := h.reportService.List()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (h *ReportHandler) UpdateReportStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if _, err := h.reportService.UpdateStatus(c.Param("id"), req.Status); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
