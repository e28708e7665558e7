package dto

import (
	"encoding/json"
	"time"

	"github.com/asxpathway/pathway-api/internal/application/validation"
	"github.com/asxpathway/pathway-api/internal/domain/timeline"
)

// CreateCompanyRequest input for registering a company.
// ListingStage defaults to exploration when omitted.
type CreateCompanyRequest struct {
	Name              string          `json:"name"`
	ABN               string          `json:"abn"`
	Industry          string          `json:"industry"`
	Size              string          `json:"size"`
	ListingStage      string          `json:"listingStage"`
	TargetListingDate *time.Time      `json:"targetListingDate"`
	KeyMetrics        json.RawMessage `json:"keyMetrics"`
}

// Validate checks the name and, when supplied, the stage enum.
func (r CreateCompanyRequest) Validate() error {
	var v validation.Error
	v.Required("name", r.Name)
	v.OneOf("listingStage", r.ListingStage, timeline.Stages)
	return v.Err()
}

// UpdateCompanyRequest partial update; nil fields stay untouched.
// Timeline fields go through PATCH /companies/:id/timeline instead.
type UpdateCompanyRequest struct {
	Name       *string         `json:"name"`
	ABN        *string         `json:"abn"`
	Industry   *string         `json:"industry"`
	Size       *string         `json:"size"`
	KeyMetrics json.RawMessage `json:"keyMetrics"`
}

// Validate keeps per-field rules without requiredness.
func (r UpdateCompanyRequest) Validate() error {
	var v validation.Error
	if r.Name != nil {
		v.Required("name", *r.Name)
	}
	return v.Err()
}

// UpdateTimelineRequest is the validated partial patch applied by the
// timeline mutator. At least one field must be present.
type UpdateTimelineRequest struct {
	ListingStage      *string    `json:"listingStage"`
	TargetListingDate *time.Time `json:"targetListingDate"`
}

// Validate enforces the timeline rules: at least one field, a known stage,
// and a strictly future target date.
func (r UpdateTimelineRequest) Validate() error {
	var v validation.Error
	if r.ListingStage == nil && r.TargetListingDate == nil {
		v.Add("patch", "at least one of listingStage or targetListingDate is required")
		return v.Err()
	}
	if r.ListingStage != nil && !timeline.IsValidStage(*r.ListingStage) {
		v.OneOf("listingStage", *r.ListingStage, timeline.Stages)
		if *r.ListingStage == "" {
			v.Add("listingStage", "must not be empty")
		}
	}
	if r.TargetListingDate != nil {
		v.Future("targetListingDate", *r.TargetListingDate)
	}
	return v.Err()
}

// CompanyResponse company output.
type CompanyResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	ABN               string          `json:"abn,omitempty"`
	Industry          string          `json:"industry,omitempty"`
	Size              string          `json:"size,omitempty"`
	ListingStage      string          `json:"listingStage"`
	TargetListingDate *time.Time      `json:"targetListingDate"`
	KeyMetrics        json.RawMessage `json:"keyMetrics,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}
