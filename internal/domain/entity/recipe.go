package entity

import "time"

// Recipe is a set of cooking instructions owned by a single user.
type Recipe struct {
	ID                int64
	Title             string `validate:"required"`
	Instructions      string `validate:"min=50"` // Counted in characters, not bytes.
	MinutesToComplete *int
	UserID            int64 // Owner; always taken from the caller's session.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
