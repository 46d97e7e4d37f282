package models

// Message timestamps are date-only strings; the same-day dashboard counter
// relies on string equality against the current date.
type Message struct {
	ID        string      `json:"id"`
	Channel   string      `json:"channel"`
	Content   string      `json:"content"`
	Type      MessageType `json:"type"`
	Sender    string      `json:"sender"`
	Recipient string      `json:"recipient"`
	Read      bool        `json:"read"`
	Deleted   bool        `json:"deleted"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}
