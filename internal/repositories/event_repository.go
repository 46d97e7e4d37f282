package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"loveadmin_backend/internal/memdb"
	"loveadmin_backend/internal/models"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrEventAlreadyExists = errors.New("event already exists")
)

type EventRepository interface {
	FindByID(id string) (*models.Event, error)
	FindAll() ([]models.Event, error)
	Create(event *models.Event) error
	UpdateStatus(id string, status models.EventStatus) (*models.Event, error)
}

type EventRepositoryImpl struct {
	db *memdb.DB
}

func NewEventRepository(db *memdb.DB) EventRepository {
	return &EventRepositoryImpl{db: db}
}

func (r *EventRepositoryImpl) FindByID(id string) (*models.Event, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	event, ok := r.db.Events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	return &event, nil
}

func (r *EventRepositoryImpl) FindAll() ([]models.Event, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	events := make([]models.Event, 0, len(r.db.EventOrder))
	for _, id := range r.db.EventOrder {
		events = append(events, r.db.Events[id])
	}
	return events, nil
}

func (r *EventRepositoryImpl) Create(event *models.Event) error {
	r.db.Lock()
	defer r.db.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	} else if _, exists := r.db.Events[event.ID]; exists {
		return ErrEventAlreadyExists
	}

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	r.db.Events[event.ID] = *event
	r.db.EventOrder = append(r.db.EventOrder, event.ID)
	return nil
}

// UpdateStatus touches only status and updated_at.
func (r *EventRepositoryImpl) UpdateStatus(id string, status models.EventStatus) (*models.Event, error) {
	r.db.Lock()
	defer r.db.Unlock()

	event, ok := r.db.Events[id]
	if !ok {
		return nil, ErrEventNotFound
	}

	event.Status = status
	event.UpdatedAt = time.Now()
	r.db.Events[id] = event
	return &event, nil
}
