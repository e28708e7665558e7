package entity

import "encoding/json"

// Task priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Task is a discrete to-do item assigned to a role, optionally tied to a
// listing stage of the journey.
type Task struct {
	ID            string
	Title         string
	Description   string
	Category      string // preparation, compliance, legal, financial, governance
	TargetRole    string
	Priority      string // high, medium, low
	EstimatedTime string
	Dependencies  []string
	Resources     json.RawMessage // links, documents, contacts
	StageID       *string         // nil = not tied to a stage
}
