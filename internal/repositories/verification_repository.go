package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"loveadmin_backend/internal/memdb"
	"loveadmin_backend/internal/models"
)

var (
	ErrVerificationNotFound      = errors.New("verification not found")
	ErrVerificationAlreadyExists = errors.New("verification already exists")
)

type VerificationRepository interface {
	FindByID(id string) (*models.Verification, error)
	FindAll() ([]models.Verification, error)
	Create(verification *models.Verification) error
	UpdateStatus(id string, status models.VerificationStatus) (*models.Verification, error)
}

type VerificationRepositoryImpl struct {
	db *memdb.DB
}

func NewVerificationRepository(db *memdb.DB) VerificationRepository {
	return &VerificationRepositoryImpl{db: db}
}

func (r *VerificationRepositoryImpl) FindByID(id string) (*models.Verification, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	verification, ok := r.db.Verifications[id]
	if !ok {
		return nil, ErrVerificationNotFound
	}
	return &verification, nil
}

func (r *VerificationRepositoryImpl) FindAll() ([]models.Verification, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	verifications := make([]models.Verification, 0, len(r.db.VerificationOrder))
	for _, id := range r.db.VerificationOrder {
		verifications = append(verifications, r.db.Verifications[id])
	}
	return verifications, nil
}

func (r *VerificationRepositoryImpl) Create(verification *models.Verification) error {
	r.db.Lock()
	defer r.db.Unlock()

	if verification.ID == "" {
		verification.ID = uuid.NewString()
	} else if _, exists := r.db.Verifications[verification.ID]; exists {
		return ErrVerificationAlreadyExists
	}

	now := time.Now()
	verification.CreatedAt = now
	verification.UpdatedAt = now

	r.db.Verifications[verification.ID] = *verification
	r.db.VerificationOrder = append(r.db.VerificationOrder, verification.ID)
	return nil
}

// UpdateStatus touches only status and updated_at.
func (r *VerificationRepositoryImpl) UpdateStatus(id string, status models.VerificationStatus) (*models.Verification, error) {
	r.db.Lock()
	defer r.db.Unlock()

	verification, ok := r.db.Verifications[id]
	if !ok {
		return nil, ErrVerificationNotFound
	}

	verification.Status = status
	verification.UpdatedAt = time.Now()
	r.db.Verifications[id] = verification
	return &verification, nil
}
