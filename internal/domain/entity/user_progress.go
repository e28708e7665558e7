package entity

import "time"

// UserProgress is the completion state of one (user, task) pair.
// At most one record exists per pair; the user_progress table enforces it
// with a composite unique index and writes go through a single upsert.
type UserProgress struct {
	ID          string
	UserID      string
	TaskID      string
	Completed   bool
	CompletedAt *time.Time // set on the first transition to completed, nil otherwise
	Notes       *string    // nil = never set
}
