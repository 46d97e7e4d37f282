package repositories

import (
	"errors"

	"github.com/google/uuid"

	"loveadmin_backend/internal/memdb"
	"loveadmin_backend/internal/models"
)

var (
	ErrMessageNotFound      = errors.New("message not found")
	ErrMessageAlreadyExists = errors.New("message already exists")
)

type MessageRepository interface {
	FindByID(id string) (*models.Message, error)
	FindAll() ([]models.Message, error)
	Create(message *models.Message) error
}

type MessageRepositoryImpl struct {
	db *memdb.DB
}

func NewMessageRepository(db *memdb.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) FindByID(id string) (*models.Message, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	message, ok := r.db.Messages[id]
	if !ok {
		return nil, ErrMessageNotFound
	}
	return &message, nil
}

func (r *MessageRepositoryImpl) FindAll() ([]models.Message, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	messages := make([]models.Message, 0, len(r.db.MessageOrder))
	for _, id := range r.db.MessageOrder {
		messages = append(messages, r.db.Messages[id])
	}
	return messages, nil
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	r.db.Lock()
	defer r.db.Unlock()

	if message.ID == "" {
		message.ID = uuid.NewString()
	} else if _, exists := r.db.Messages[message.ID]; exists {
		return ErrMessageAlreadyExists
	}

	today := dateNow()
	message.CreatedAt = today
	message.UpdatedAt = today

	r.db.Messages[message.ID] = *message
	r.db.MessageOrder = append(r.db.MessageOrder, message.ID)
	return nil
}
