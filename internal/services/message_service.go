package services

import (
	"loveadmin_backend/internal/models"
	"loveadmin_backend/internal/repositories"
	"loveadmin_backend/pkg/apperrors"
)

type MessageService interface {
	List() ([]models.Message, error)
}

type MessageServiceImpl struct {
	messageRepo repositories.MessageRepository
}

func NewMessageService(messageRepo repositories.MessageRepository) MessageService {
	return &MessageServiceImpl{messageRepo: messageRepo}
}

func (s *MessageServiceImpl) List() ([]models.Message, error) {
	messages, err := s.messageRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return messages, nil
}
