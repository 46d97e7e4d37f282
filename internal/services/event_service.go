package services

import (
	"fmt"

	"loveadmin_backend/internal/models"
	"loveadmin_backend/internal/repositories"
	"loveadmin_backend/pkg/apperrors"
)

type EventService interface {
	List() ([]models.Event, error)
	UpdateStatus(id, status string) (*models.Event, error)
}

type EventServiceImpl struct {
	eventRepo repositories.EventRepository
}

func NewEventService(eventRepo repositories.EventRepository) EventService {
	return &EventServiceImpl{eventRepo: eventRepo}
}

func (s *EventServiceImpl) List() ([]models.Event, error) {
	events, err := s.eventRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return events, nil
}

// UpdateStatus validates the value and the transition before writing. The
// store itself accepts any string; this is the layer that enforces the graph.
func (s *EventServiceImpl) UpdateStatus(id, status string) (*models.Event, error) {
	next := models.EventStatus(status)
	if !next.Valid() {
		return nil, apperrors.ErrInvalidStatus("events", fmt.Sprintf("Unknown event status %q", status))
	}

	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "events", "Event not found")
	}

	if !event.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrInvalidTransition("events",
			fmt.Sprintf("Cannot change event status from %q to %q", event.Status, next))
	}

	updated, err := s.eventRepo.UpdateStatus(id, next)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "events", "Event not found")
	}
	return updated, nil
}
