package models

type BlockList struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	BlockedID string `json:"blockedId"`
	CreatedAt string `json:"created_at"`
}
