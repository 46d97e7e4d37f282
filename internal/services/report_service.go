package services

import (
	"fmt"

	"loveadmin_backend/internal/models"
	"loveadmin_backend/internal/repositories"
	"loveadmin_backend/pkg/apperrors"
)

type ReportService interface {
	List() ([]models.Report, error)
	UpdateStatus(id, status string) (*models.Report, error)
}

type ReportServiceImpl struct {
	reportRepo repositories.ReportRepository
}

func NewReportService(reportRepo repositories.ReportRepository) ReportService {
	return &ReportServiceImpl{reportRepo: reportRepo}
}

func (s *ReportServiceImpl) List() ([]models.Report, error) {
	reports, err := s.reportRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reports, nil
}

// UpdateStatus moves a moderation case out of pending. Resolved cases are
// terminal; re-opening needs a new report.
func (s *ReportServiceImpl) UpdateStatus(id, status string) (*models.Report, error) {
	next := models.ReportStatus(status)
	if !next.Valid() {
		return nil, apperrors.ErrInvalidStatus("reports", fmt.Sprintf("Unknown report status %q", status))
	}

	report, err := s.reportRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "reports", "Report not found")
	}

	if !report.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrInvalidTransition("reports",
			fmt.Sprintf("Cannot change report status from %q to %q", report.Status, next))
	}

	updated, err := s.reportRepo.UpdateStatus(id, next)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "reports", "Report not found")
	}
	return updated, nil
}
