package dto

import "github.com/asxpathway/pathway-api/internal/application/validation"

// ErrorResponse is the HTTP error body. Details is only present for
// validation failures and carries per-field violations for form display.
type ErrorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Details []validation.FieldError `json:"details,omitempty"`
}
