package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loveadmin_backend/internal/memdb"
	"loveadmin_backend/internal/models"
)

func TestAnalyticsRepository_EmptyStore(t *testing.T) {
	repo := NewAnalyticsRepository(memdb.New())

	stats, err := repo.GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, &DashboardStats{}, stats)
}

func TestAnalyticsRepository_SeededStore(t *testing.T) {
	db := memdb.NewSeeded()
	repo := NewAnalyticsRepository(db)

	stats, err := repo.GetDashboardStats()
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalUsers)
	assert.Equal(t, 4, stats.ActiveUsers)
	// 29.99 + 99.99 + 19.99 + 29.99, rounded on the cents digit.
	assert.Equal(t, 179.96, stats.TotalRevenue)
	assert.Equal(t, 2, stats.PendingReports)
	// Subscribed transactions whose plan contains "Premium". The failed
	// Premium Plus payment does not count.
	assert.Equal(t, 3, stats.PremiumSubscribers)
	assert.Equal(t, 1, stats.FailedPayments)
	assert.Equal(t, 2, stats.TotalMessages)
	// Seeded messages carry today's date.
	assert.Equal(t, 2, stats.TodayMessages)
	assert.Equal(t, 1, stats.FlaggedMessages)
	assert.Equal(t, 1, stats.ImageMessages)
	assert.Equal(t, 3, stats.TotalAPIRequests)
	assert.Equal(t, 2, stats.ActiveAPIKeys)
}

func TestAnalyticsRepository_TotalUsersMatchesFindAll(t *testing.T) {
	db := memdb.NewSeeded()
	analyticsRepo := NewAnalyticsRepository(db)
	userRepo := NewUserRepository(db)

	stats, err := analyticsRepo.GetDashboardStats()
	require.NoError(t, err)

	users, err := userRepo.FindAll()
	require.NoError(t, err)
	assert.Equal(t, len(users), stats.TotalUsers)
}

func TestAnalyticsRepository_UnparsableAmountSkipped(t *testing.T) {
	db := memdb.New()
	txRepo := NewTransactionRepository(db)

	require.NoError(t, txRepo.Create(&models.Transaction{
		ID: "TXN-OK", Amount: "10.50", Plan: "Premium Monthly", Subscribed: true,
	}))
	require.NoError(t, txRepo.Create(&models.Transaction{
		ID: "TXN-BAD", Amount: "not-a-number", Plan: "Basic", Subscribed: false,
	}))

	stats, err := NewAnalyticsRepository(db).GetDashboardStats()
	require.NoError(t, err)

	assert.Equal(t, 10.5, stats.TotalRevenue)
	assert.Equal(t, 1, stats.PremiumSubscribers)
	assert.Equal(t, 1, stats.FailedPayments)
}

func TestAnalyticsRepository_RevenueRounding(t *testing.T) {
	db := memdb.New()
	txRepo := NewTransactionRepository(db)

	// Three values whose float sum carries representation noise.
	for i, amount := range []string{"0.10", "0.20", "0.30"} {
		require.NoError(t, txRepo.Create(&models.Transaction{
			ID: string(rune('A' + i)), Amount: amount, Subscribed: true,
		}))
	}

	stats, err := NewAnalyticsRepository(db).GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, 0.6, stats.TotalRevenue)
}

func TestAnalyticsRepository_CountsReactToStatusChange(t *testing.T) {
	db := memdb.NewSeeded()
	analyticsRepo := NewAnalyticsRepository(db)
	reportRepo := NewReportRepository(db)

	before, err := analyticsRepo.GetDashboardStats()
	require.NoError(t, err)
	require.Equal(t, 2, before.PendingReports)

	reports, err := reportRepo.FindAll()
	require.NoError(t, err)
	var pendingID string
	for _, r := range reports {
		if r.Status == models.ReportStatusPending {
			pendingID = r.ID
			break
		}
	}
	require.NotEmpty(t, pendingID)

	_, err = reportRepo.UpdateStatus(pendingID, models.ReportStatusResolved)
	require.NoError(t, err)

	after, err := analyticsRepo.GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, 1, after.PendingReports)
	// flaggedMessages counts by reason, not status, so it is unaffected.
	assert.Equal(t, before.FlaggedMessages, after.FlaggedMessages)
}
