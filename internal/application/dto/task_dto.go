package dto

import (
	"encoding/json"

	"github.com/asxpathway/pathway-api/internal/application/validation"
	"github.com/asxpathway/pathway-api/internal/domain/entity"
)

var priorities = []string{entity.PriorityHigh, entity.PriorityMedium, entity.PriorityLow}

// CreateTaskRequest input for creating a task.
type CreateTaskRequest struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	TargetRole    string          `json:"targetRole"`
	Priority      string          `json:"priority"`
	EstimatedTime string          `json:"estimatedTime"`
	Dependencies  []string        `json:"dependencies"`
	Resources     json.RawMessage `json:"resources"`
	StageID       *string         `json:"stageId"`
}

// Validate checks required fields and the priority enum.
func (r CreateTaskRequest) Validate() error {
	var v validation.Error
	v.Required("title", r.Title)
	v.Required("description", r.Description)
	v.Required("category", r.Category)
	v.Required("targetRole", r.TargetRole)
	v.OneOf("priority", r.Priority, priorities)
	return v.Err()
}

// UpdateTaskRequest partial update; nil fields stay untouched.
type UpdateTaskRequest struct {
	Title         *string         `json:"title"`
	Description   *string         `json:"description"`
	Category      *string         `json:"category"`
	TargetRole    *string         `json:"targetRole"`
	Priority      *string         `json:"priority"`
	EstimatedTime *string         `json:"estimatedTime"`
	Dependencies  []string        `json:"dependencies"`
	Resources     json.RawMessage `json:"resources"`
	StageID       *string         `json:"stageId"`
}

// Validate keeps per-field rules without requiredness.
func (r UpdateTaskRequest) Validate() error {
	var v validation.Error
	if r.Title != nil {
		v.Required("title", *r.Title)
	}
	if r.Priority != nil {
		v.OneOf("priority", *r.Priority, priorities)
	}
	return v.Err()
}

// TaskResponse task output.
type TaskResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	TargetRole    string          `json:"targetRole"`
	Priority      string          `json:"priority"`
	EstimatedTime string          `json:"estimatedTime,omitempty"`
	Dependencies  []string        `json:"dependencies,omitempty"`
	Resources     json.RawMessage `json:"resources,omitempty"`
	StageID       *string         `json:"stageId"`
}
