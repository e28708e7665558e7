package dto

import "github.com/asxpathway/pathway-api/internal/application/validation"

// CreateListingStageRequest input for defining a journey stage.
type CreateListingStageRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Order        int      `json:"order"`
	RoleSpecific []string `json:"roleSpecific"`
}

// Validate checks required fields and a positive order.
func (r CreateListingStageRequest) Validate() error {
	var v validation.Error
	v.Required("name", r.Name)
	v.Required("description", r.Description)
	if r.Order <= 0 {
		v.Add("order", "must be a positive integer")
	}
	return v.Err()
}

// ListingStageResponse stage output.
type ListingStageResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Order        int      `json:"order"`
	RoleSpecific []string `json:"roleSpecific,omitempty"`
}
