package models

import "time"

type Verification struct {
	ID        string             `json:"id"`
	Video     string             `json:"video"`
	UserID    string             `json:"userId"`
	Status    VerificationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
