package services

import (
	"fmt"

	"loveadmin_backend/internal/models"
	"loveadmin_backend/internal/repositories"
	"loveadmin_backend/pkg/apperrors"
)

type VerificationService interface {
	List() ([]models.Verification, error)
	UpdateStatus(id, status string) (*models.Verification, error)
}

type VerificationServiceImpl struct {
	verificationRepo repositories.VerificationRepository
}

func NewVerificationService(verificationRepo repositories.VerificationRepository) VerificationService {
	return &VerificationServiceImpl{verificationRepo: verificationRepo}
}

func (s *VerificationServiceImpl) List() ([]models.Verification, error) {
	verifications, err := s.verificationRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return verifications, nil
}

func (s *VerificationServiceImpl) UpdateStatus(id, status string) (*models.Verification, error) {
	next := models.VerificationStatus(status)
	if !next.Valid() {
		return nil, apperrors.ErrInvalidStatus("verifications", fmt.Sprintf("Unknown verification status %q", status))
	}

	verification, err := s.verificationRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "verifications", "Verification not found")
	}

	if !verification.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrInvalidTransition("verifications",
			fmt.Sprintf("Cannot change verification status from %q to %q", verification.Status, next))
	}

	updated, err := s.verificationRepo.UpdateStatus(id, next)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "verifications", "Verification not found")
	}
	return updated, nil
}
