package models

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type UserLocation struct {
	City        string      `json:"city"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
}

// User timestamps are date-only strings (YYYY-MM-DD); the dashboard client
// compares them as plain strings.
type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	DOB          string       `json:"dob"`
	Location     UserLocation `json:"location"`
	IsActive     bool         `json:"isActive"`
	IsVerified   bool         `json:"isVerified"`
	Bio          string       `json:"bio"`
	Images       []string     `json:"images"`
	Interests    []string     `json:"interests"`
	Occupation   string       `json:"occupation"`
	Education    string       `json:"education"`
	Height       string       `json:"height"`
	HereFor      string       `json:"herefor"`
	Relationship string       `json:"relationship"`
	Children     string       `json:"children"`
	Drinking     string       `json:"drinking"`
	Smoking      string       `json:"smoking"`
	Language     []string     `json:"language"`
	Religion     string       `json:"religion"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    string       `json:"updated_at"`
}

// UserUpdate is a partial update: nil fields are left untouched, the rest
// overwrite the stored value. Location is replaced wholesale, not deep-merged.
type UserUpdate struct {
	Name         *string       `json:"name"`
	Username     *string       `json:"username"`
	Email        *string       `json:"email" validate:"omitempty,email"`
	Phone        *string       `json:"phone"`
	DOB          *string       `json:"dob"`
	Location     *UserLocation `json:"location"`
	IsActive     *bool         `json:"isActive"`
	IsVerified   *bool         `json:"isVerified"`
	Bio          *string       `json:"bio"`
	Images       *[]string     `json:"images"`
	Interests    *[]string     `json:"interests"`
	Occupation   *string       `json:"occupation"`
	Education    *string       `json:"education"`
	Height       *string       `json:"height"`
	HereFor      *string       `json:"herefor"`
	Relationship *string       `json:"relationship"`
	Children     *string       `json:"children"`
	Drinking     *string       `json:"drinking"`
	Smoking      *string       `json:"smoking"`
	Language     *[]string     `json:"language"`
	Religion     *string       `json:"religion"`
}
