package dto

import "github.com/asxpathway/pathway-api/internal/application/validation"

// CreateResourceRequest input for publishing a resource.
// IsPublic defaults to true when omitted.
type CreateResourceRequest struct {
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	TargetRoles []string `json:"targetRoles"`
	URL         string   `json:"url"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	IsPublic    *bool    `json:"isPublic"`
}

// Validate checks required fields.
func (r CreateResourceRequest) Validate() error {
	var v validation.Error
	v.Required("title", r.Title)
	v.Required("type", r.Type)
	v.Required("category", r.Category)
	return v.Err()
}

// UpdateResourceRequest partial update; nil fields stay untouched.
type UpdateResourceRequest struct {
	Title       *string  `json:"title"`
	Type        *string  `json:"type"`
	Category    *string  `json:"category"`
	TargetRoles []string `json:"targetRoles"`
	URL         *string  `json:"url"`
	Content     *string  `json:"content"`
	Tags        []string `json:"tags"`
	IsPublic    *bool    `json:"isPublic"`
}

// Validate keeps per-field rules without requiredness.
func (r UpdateResourceRequest) Validate() error {
	var v validation.Error
	if r.Title != nil {
		v.Required("title", *r.Title)
	}
	if r.Type != nil {
		v.Required("type", *r.Type)
	}
	return v.Err()
}

// ResourceResponse resource output.
type ResourceResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	TargetRoles []string `json:"targetRoles,omitempty"`
	URL         string   `json:"url,omitempty"`
	Content     string   `json:"content,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsPublic    bool     `json:"isPublic"`
}
