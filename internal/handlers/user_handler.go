package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loveadmin_backend/internal/models"
	"loveadmin_backend/internal/repositories"
	"loveadmin_backend/internal/services"
	"loveadmin_backend/pkg/apperrors"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.PUT("/:id", h.UpdateUser)
	}
}

// ListUsers applies the optional status/verification query filters. The
// subscription parameter is accepted for client compatibility but unused.
func (h *UserHandler) ListUsers(c *gin.Context) {
	filter := repositories.UserFilter{
		Status:       c.Query("status"),
		Verification: c.Query("verification"),
		Subscription: c.Query("subscription"),
	}

	users, err := h.userService.List(filter)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.FindByID(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var upd models.UserUpdate
	if !h.BindAndValidateJSON(c, &upd) {
		return
	}

	user, err := h.userService.Update(c.Param("id"), upd)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
