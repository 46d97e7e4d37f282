package models

// APIKey is keyed by the key string itself, not a separate id.
type APIKey struct {
	Key       string `json:"apikey"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// APILog is an append-only record of one API call. Never mutated.
type APILog struct {
	ID        string `json:"id"`
	APIKey    string `json:"apikey"`
	URL       string `json:"url"`
	Type      string `json:"type"`
	IP        string `json:"ip"`
	Duration  string `json:"duration"`
	Location  string `json:"location"`
	By        string `json:"by"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
