package routes

import (
	"github.com/gin-gonic/gin"

	"loveadmin_backend/internal/auth"
	"loveadmin_backend/internal/handlers"
	"loveadmin_backend/internal/middleware"
	"loveadmin_backend/internal/services"
)

// RegisterRoutes mounts the admin API. Login is public; everything else
// requires a Bearer token. Every handled request under /api leaves an entry
// in the API call log.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
	apiService services.APIService,
) {
	api := ginRouter.Group("/api")
	api.Use(middleware.APILogMiddleware(apiService))

	appHandlers.AuthHandler.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		appHandlers.AnalyticsHandler.RegisterRoutes(protected)
		appHandlers.UserHandler.RegisterRoutes(protected)
		appHandlers.ReportHandler.RegisterRoutes(protected)
		appHandlers.VerificationHandler.RegisterRoutes(protected)
		appHandlers.EventHandler.RegisterRoutes(protected)
		appHandlers.MessageHandler.RegisterRoutes(protected)
		appHandlers.TransactionHandler.RegisterRoutes(protected)
		appHandlers.APIHandler.RegisterRoutes(protected)
	}
}
