package handlers

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	ReportHandler       *ReportHandler
	VerificationHandler *VerificationHandler
	EventHandler        *EventHandler
	MessageHandler      *MessageHandler
	TransactionHandler  *TransactionHandler
	APIHandler          *APIHandler
	AnalyticsHandler    *AnalyticsHandler
}
