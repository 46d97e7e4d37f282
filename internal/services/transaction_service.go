package services

import (
	"loveadmin_backend/internal/models"
	"loveadmin_backend/internal/repositories"
	"loveadmin_backend/pkg/apperrors"
)

type TransactionService interface {
	List() ([]models.Transaction, error)
}

type TransactionServiceImpl struct {
	transactionRepo repositories.TransactionRepository
}

func NewTransactionService(transactionRepo repositories.TransactionRepository) TransactionService {
	return &TransactionServiceImpl{transactionRepo: transactionRepo}
}

func (s *TransactionServiceImpl) List() ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return transactions, nil
}
