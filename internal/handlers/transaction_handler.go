package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loveadmin_backend/internal/services"
	"loveadmin_backend/pkg/apperrors"
)

type TransactionHandler struct {
	*BaseHandler
	transactionService services.TransactionService
}

func NewTransactionHandler(base *BaseHandler, transactionService services.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		BaseHandler:        base,
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/transactions", h.ListTransactions)
}

func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.transactionService.List()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}
