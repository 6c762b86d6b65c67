package models

import "time"

// Exercise is a single logged entry belonging to a user.
type Exercise struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"` // weak reference; existence checked at creation
	Description string    `json:"description"`
	Duration    int       `json:"duration"` // minutes
	Date        time.Time `json:"date"`     // UTC, truncated to the calendar day
}
