package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"loveadmin_backend/internal/memdb"
	"loveadmin_backend/internal/models"
)

var (
	ErrReportNotFound      = errors.New("report not found")
	ErrReportAlreadyExists = errors.New("report already exists")
)

type ReportRepository interface {
	FindByID(id string) (*models.Report, error)
	FindAll() ([]models.Report, error)
	Create(report *models.Report) error
	UpdateStatus(id string, status models.ReportStatus) (*models.Report, error)
}

type ReportRepositoryImpl struct {
	db *memdb.DB
}

func NewReportRepository(db *memdb.DB) ReportRepository {
	return &ReportRepositoryImpl{db: db}
}

func (r *ReportRepositoryImpl) FindByID(id string) (*models.Report, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	report, ok := r.db.Reports[id]
	if !ok {
		return nil, ErrReportNotFound
	}
	return &report, nil
}

func (r *ReportRepositoryImpl) FindAll() ([]models.Report, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	reports := make([]models.Report, 0, len(r.db.ReportOrder))
	for _, id := range r.db.ReportOrder {
		reports = append(reports, r.db.Reports[id])
	}
	return reports, nil
}

func (r *ReportRepositoryImpl) Create(report *models.Report) error {
	r.db.Lock()
	defer r.db.Unlock()

	if report.ID == "" {
		report.ID = uuid.NewString()
	} else if _, exists := r.db.Reports[report.ID]; exists {
		return ErrReportAlreadyExists
	}

	now := time.Now()
	report.CreatedAt = now
	report.UpdatedAt = now

	r.db.Reports[report.ID] = *report
	r.db.ReportOrder = append(r.db.ReportOrder, report.ID)
	return nil
}

// UpdateStatus touches only status and updated_at.
func (r *ReportRepositoryImpl) UpdateStatus(id string, status models.ReportStatus) (*models.Report, error) {
	r.db.Lock()
	defer r.db.Unlock()

	report, ok := r.db.Reports[id]
	if !ok {
		return nil, ErrReportNotFound
	}

	report.Status = status
	report.UpdatedAt = time.Now()
	r.db.Reports[id] = report
	return &report, nil
}
