package repositories

import (
	"math"
	"strconv"
	"strings"

	"loveadmin_backend/internal/memdb"
	"loveadmin_backend/internal/models"
)

// DashboardStats is the snapshot the overview page renders. Field names match
// the dashboard client payload.
type DashboardStats struct {
	TotalUsers         int     `json:"totalUsers"`
	ActiveUsers        int     `json:"activeUsers"`
	TotalRevenue       float64 `json:"totalRevenue"`
	PendingReports     int     `json:"pendingReports"`
	PremiumSubscribers int     `json:"premiumSubscribers"`
	FailedPayments     int     `json:"failedPayments"`
	TotalMessages      int     `json:"totalMessages"`
	TodayMessages      int     `json:"todayMessages"`
	FlaggedMessages    int     `json:"flaggedMessages"`
	ImageMessages      int     `json:"imageMessages"`
	TotalAPIRequests   int     `json:"totalApiRequests"`
	ActiveAPIKeys      int     `json:"activeApiKeys"`
}

type AnalyticsRepository interface {
	GetDashboardStats() (*DashboardStats, error)
}

type AnalyticsRepositoryImpl struct {
	db *memdb.DB
}

func NewAnalyticsRepository(db *memdb.DB) AnalyticsRepository {
	return &AnalyticsRepositoryImpl{db: db}
}

// GetDashboardStats folds over every collection under a single read lock, so
// the numbers describe one consistent snapshot. Recomputed in full on every
// call; nothing is cached.
//
// Two counters carry historical quirks kept on purpose: todayMessages compares
// the stored date string against today's server-local date, and
// flaggedMessages counts reports with reason "Inappropriate Content" because
// messages have no flag field of their own.
func (r *AnalyticsRepositoryImpl) GetDashboardStats() (*DashboardStats, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	stats := &DashboardStats{
		TotalUsers:    len(r.db.Users),
		TotalMessages: len(r.db.Messages),
	}

	for _, u := range r.db.Users {
		if u.IsActive {
			stats.ActiveUsers++
		}
	}

	var revenue float64
	for _, t := range r.db.Transactions {
		amount, err := strconv.ParseFloat(t.Amount, 64)
		if err == nil {
			revenue += amount
		}
		if t.Subscribed && strings.Contains(t.Plan, "Premium") {
			stats.PremiumSubscribers++
		}
		if !t.Subscribed {
			stats.FailedPayments++
		}
	}
	// Round half away from zero on the cents digit.
	stats.TotalRevenue = math.Round(revenue*100) / 100

	for _, rep := range r.db.Reports {
		if rep.Status == models.ReportStatusPending {
			stats.PendingReports++
		}
		if rep.Reason == "Inappropriate Content" {
			stats.FlaggedMessages++
		}
	}

	today := dateNow()
	for _, m := range r.db.Messages {
		if m.CreatedAt == today {
			stats.TodayMessages++
		}
		if m.Type == models.MessageTypeImage {
			stats.ImageMessages++
		}
	}

	stats.TotalAPIRequests = len(r.db.APILogs)
	for _, k := range r.db.APIKeys {
		if k.Active {
			stats.ActiveAPIKeys++
		}
	}

	return stats, nil
}
