package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loveadmin_backend/internal/memdb"
	"loveadmin_backend/internal/models"
	"loveadmin_backend/internal/repositories"
	"loveadmin_backend/pkg/apperrors"
)

func assertAppError(t *testing.T, err error, code apperrors.ErrorCode, httpCode int) {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, httpCode, appErr.HTTPCode)
}

func TestReportService_UpdateStatus(t *testing.T) {
	db := memdb.New()
	reportRepo := repositories.NewReportRepository(db)
	svc := NewReportService(reportRepo)

	report := &models.Report{Reason: "Spam", Status: models.ReportStatusPending}
	require.NoError(t, reportRepo.Create(report))

	updated, err := svc.UpdateStatus(report.ID, "resolved")
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusResolved, updated.Status)

	// Resolved is terminal.
	_, err = svc.UpdateStatus(report.ID, "banned")
	assertAppError(t, err, apperrors.CodeConflict, http.StatusConflict)
}

func TestReportService_UpdateStatusUnknownStatus(t *testing.T) {
	svc := NewReportService(repositories.NewReportRepository(memdb.New()))

	_, err := svc.UpdateStatus("any-id", "escalated")
	assertAppError(t, err, apperrors.CodeInvalidStatus, http.StatusBadRequest)
}

func TestReportService_UpdateStatusMissingReport(t *testing.T) {
	svc := NewReportService(repositories.NewReportRepository(memdb.New()))

	_, err := svc.UpdateStatus("no-such-id", "resolved")
	assertAppError(t, err, apperrors.CodeNotFound, http.StatusNotFound)
}

func TestEventService_UpdateStatus(t *testing.T) {
	db := memdb.New()
	eventRepo := repositories.NewEventRepository(db)
	svc := NewEventService(eventRepo)

	event := &models.Event{Title: "Coffee Date", Status: models.EventStatusPending}
	require.NoError(t, eventRepo.Create(event))

	updated, err := svc.UpdateStatus(event.ID, "planned")
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusPlanned, updated.Status)

	// Planned events can still be canceled.
	updated, err = svc.UpdateStatus(event.ID, "canceled")
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusCanceled, updated.Status)

	// Canceled is terminal.
	_, err = svc.UpdateStatus(event.ID, "planned")
	assertAppError(t, err, apperrors.CodeConflict, http.StatusConflict)
}

func TestVerificationService_UpdateStatus(t *testing.T) {
	db := memdb.New()
	verificationRepo := repositories.NewVerificationRepository(db)
	svc := NewVerificationService(verificationRepo)

	verification := &models.Verification{UserID: "user-1", Status: models.VerificationStatusPending}
	require.NoError(t, verificationRepo.Create(verification))

	updated, err := svc.UpdateStatus(verification.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, models.VerificationStatusApproved, updated.Status)

	_, err = svc.UpdateStatus(verification.ID, "rejected")
	assertAppError(t, err, apperrors.CodeConflict, http.StatusConflict)
}

func TestAnalyticsService_GetDashboardStats(t *testing.T) {
	db := memdb.NewSeeded()
	svc := NewAnalyticsService(repositories.NewAnalyticsRepository(db))

	stats, err := svc.GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalUsers)
	assert.Equal(t, 179.96, stats.TotalRevenue)
}
