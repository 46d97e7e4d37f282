package services

import (
	"loveadmin_backend/internal/models"
	"loveadmin_backend/internal/repositories"
	"loveadmin_backend/pkg/apperrors"
)

// APIService covers the credential surface of the dashboard: keys, the
// append-only call log and user block lists.
type APIService interface {
	ListKeys() ([]models.APIKey, error)
	ListLogs() ([]models.APILog, error)
	ListBlockLists() ([]models.BlockList, error)
	RecordLog(log *models.APILog) error
}

type APIServiceImpl struct {
	keyRepo       repositories.APIKeyRepository
	logRepo       repositories.APILogRepository
	blockListRepo repositories.BlockListRepository
}

func NewAPIService(
	keyRepo repositories.APIKeyRepository,
	logRepo repositories.APILogRepository,
	blockListRepo repositories.BlockListRepository,
) APIService {
	return &APIServiceImpl{
		keyRepo:       keyRepo,
		logRepo:       logRepo,
		blockListRepo: blockListRepo,
	}
}

func (s *APIServiceImpl) ListKeys() ([]models.APIKey, error) {
	keys, err := s.keyRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return keys, nil
}

func (s *APIServiceImpl) ListLogs() ([]models.APILog, error) {
	logs, err := s.logRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return logs, nil
}

func (s *APIServiceImpl) ListBlockLists() ([]models.BlockList, error) {
	lists, err := s.blockListRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return lists, nil
}

func (s *APIServiceImpl) RecordLog(log *models.APILog) error {
	return s.logRepo.Create(log)
}
