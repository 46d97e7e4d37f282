package services

import (
	"loveadmin_backend/internal/repositories"
	"loveadmin_backend/pkg/apperrors"
)

type AnalyticsService interface {
	GetDashboardStats() (*repositories.DashboardStats, error)
}

type AnalyticsServiceImpl struct {
	analyticsRepo repositories.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo repositories.AnalyticsRepository) AnalyticsService {
	return &AnalyticsServiceImpl{analyticsRepo: analyticsRepo}
}

func (s *AnalyticsServiceImpl) GetDashboardStats() (*repositories.DashboardStats, error) {
	stats, err := s.analyticsRepo.GetDashboardStats()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}
