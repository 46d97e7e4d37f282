package models

// Transaction records a payment attempt. Amount stays a decimal string and is
// parsed only when aggregating revenue. Subscribed doubles as the payment
// success flag.
type Transaction struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	ReferenceID string `json:"referenceId"`
	Narration   string `json:"narration"`
	Plan        string `json:"plan"`
	Subscribed  bool   `json:"subscribed"`
	UserID      string `json:"userId"`
	ApprovedBy  string `json:"approved_by"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
