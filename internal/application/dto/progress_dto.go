package dto

import "time"

// SetProgressRequest body for POST /users/:userIdOrUsername/progress/:taskId.
// Notes overwrite only when present; there is nothing else to validate here,
// a missing "completed" is simply false.
type SetProgressRequest struct {
	Completed bool    `json:"completed"`
	Notes     *string `json:"notes"`
}

// ProgressResponse one progress record.
type ProgressResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	TaskID      string     `json:"taskId"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	Notes       *string    `json:"notes"`
}
