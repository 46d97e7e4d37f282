package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"loveadmin_backend/internal/auth"
	"loveadmin_backend/internal/logger"
	"loveadmin_backend/pkg/apperrors"
)

const (
	ContextAdminIDKey = "admin_id"
	ContextRoleKey    = "admin_role"
)

// AuthMiddleware requires a valid Bearer token on every route it guards.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, apperrors.ErrUnauthorized)
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			abortUnauthorized(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(ContextAdminIDKey, claims.AdminID)
		c.Set(ContextRoleKey, claims.Role)
		c.Request = c.Request.WithContext(logger.WithAdminID(c.Request.Context(), claims.AdminID))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err *apperrors.AppError) {
	c.Abort()
	apperrors.HandleError(c, err)
}
