package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"loveadmin_backend/internal/auth"
	"loveadmin_backend/internal/config"
	"loveadmin_backend/internal/handlers"
	"loveadmin_backend/internal/logger"
	"loveadmin_backend/internal/memdb"
	"loveadmin_backend/internal/middleware"
	"loveadmin_backend/internal/models"
	"loveadmin_backend/internal/repositories"
	"loveadmin_backend/internal/routes"
	"loveadmin_backend/internal/services"
	"loveadmin_backend/internal/validator"
)

// Run boots the back office: configuration, logging, the in-memory store with
// demo data, the root admin account and the HTTP server.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("starting admin backend", "env", cfg.Server.Env)

	db := memdb.NewSeeded()
	if err := seedAdmin(db, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	router := SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("listening", "addr", addr)
	return router.Run(addr)
}

// SetupRouter wires repositories, services and handlers over the given store
// and returns a ready gin engine. Tests call this directly with their own db.
func SetupRouter(cfg *config.Config, db *memdb.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	userRepo := repositories.NewUserRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	verificationRepo := repositories.NewVerificationRepository(db)
	apiKeyRepo := repositories.NewAPIKeyRepository(db)
	apiLogRepo := repositories.NewAPILogRepository(db)
	blockListRepo := repositories.NewBlockListRepository(db)
	analyticsRepo := repositories.NewAnalyticsRepository(db)

	authService := services.NewAuthService(adminRepo, tokens)
	userService := services.NewUserService(userRepo)
	eventService := services.NewEventService(eventRepo)
	messageService := services.NewMessageService(messageRepo)
	transactionService := services.NewTransactionService(transactionRepo)
	reportService := services.NewReportService(reportRepo)
	verificationService := services.NewVerificationService(verificationRepo)
	apiService := services.NewAPIService(apiKeyRepo, apiLogRepo, blockListRepo)
	analyticsService := services.NewAnalyticsService(analyticsRepo)

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(base, authService),
		UserHandler:         handlers.NewUserHandler(base, userService),
		ReportHandler:       handlers.NewReportHandler(base, reportService),
		VerificationHandler: handlers.NewVerificationHandler(base, verificationService),
		EventHandler:        handlers.NewEventHandler(base, eventService),
		MessageHandler:      handlers.NewMessageHandler(base, messageService),
		TransactionHandler:  handlers.NewTransactionHandler(base, transactionService),
		APIHandler:          handlers.NewAPIHandler(base, apiService),
		AnalyticsHandler:    handlers.NewAnalyticsHandler(base, analyticsService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, appHandlers, tokens, apiService)
	return router
}

// seedAdmin creates the configured root admin if no account with that email
// exists yet. The password is stored as a bcrypt hash only.
func seedAdmin(db *memdb.DB, cfg *config.Config) error {
	adminRepo := repositories.NewAdminRepository(db)

	if _, err := adminRepo.FindByEmail(cfg.Admin.Email); err == nil {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	now := time.Now().Format("2006-01-02")
	return adminRepo.Create(&models.Admin{
		ID:           uuid.NewString(),
		Name:         cfg.Admin.Name,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Role:         "admin",
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
