package models

import "time"

// Report is a moderation case: UserID filed it, ViolatorID is the reported user.
// Both are opaque identifiers with no referential integrity enforced.
type Report struct {
	ID          string       `json:"id"`
	ViolatorID  string       `json:"violatorId"`
	UserID      string       `json:"userId"`
	Reason      string       `json:"reason"`
	Description string       `json:"description"`
	Status      ReportStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
