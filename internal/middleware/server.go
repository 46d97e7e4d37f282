package middleware

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"loveadmin_backend/internal/logger"
	"loveadmin_backend/internal/models"
	"loveadmin_backend/internal/services"
)

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		log := logger.FromContext(c.Request.Context())
		fields := []any{
			slog.String("client_ip", c.ClientIP()),
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Duration("duration", duration),
			slog.Int("size_bytes", c.Writer.Size()),
		}
		if c.Writer.Status() >= 500 {
			log.Error("HTTP Server Error", fields...)
		} else if c.Writer.Status() >= 400 {
			log.Warn("HTTP Client Error", fields...)
		} else {
			log.Info("HTTP Request", fields...)
		}
	}
}

// APILogMiddleware appends one APILog record per handled request, the same
// call trail the mobile clients leave. Listing the log itself is excluded so
// reading the trail does not grow it.
func APILogMiddleware(apiService services.APIService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if c.Request.URL.Path == "/api/logs" {
			return
		}

		entry := &models.APILog{
			APIKey:   c.GetHeader("X-API-Key"),
			URL:      c.Request.URL.Path,
			Type:     c.Request.Method,
			IP:       c.ClientIP(),
			Duration: fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
			By:       "admin_dashboard",
		}
		if err := apiService.RecordLog(entry); err != nil {
			logger.CtxWithError(c.Request.Context(), "failed to record api log", err)
		}
	}
}
