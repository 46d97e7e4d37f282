package models

import "time"

type EventCoordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type EventLocation struct {
	Address     string           `json:"address"`
	Coordinates EventCoordinates `json:"coordinates"`
}

// Event is a proposed meetup between two users. PartnerID is empty for
// open invitations.
type Event struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	StartTime   time.Time     `json:"start_time"`
	Location    EventLocation `json:"location"`
	CreatorID   string        `json:"creator_id"`
	PartnerID   string        `json:"partner_id,omitempty"`
	Status      EventStatus   `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
