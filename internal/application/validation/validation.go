// Package validation carries the structured input-validation error every
// mutating endpoint uses. A failed check produces a field-level violation
// list suitable for form display, rendered by the HTTP layer as a 400 with
// details.
package validation

import (
	"fmt"
	"strings"
	"time"
)

// FieldError is one per-field violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error collects field violations for one request.
type Error struct {
	Violations []FieldError
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a violation.
func (e *Error) Add(field, message string) {
	e.Violations = append(e.Violations, FieldError{Field: field, Message: message})
}

// Err returns the collected error, or nil when every check passed.
// Returning via Err avoids the non-nil interface holding a nil pointer.
func (e *Error) Err() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}

// Required checks a non-empty string.
func (e *Error) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "is required")
	}
}

// OneOf checks enum membership. Empty values are left to Required.
func (e *Error) OneOf(field, value string, allowed []string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e.Add(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
}

// Future checks that t is strictly after the current time. The server
// re-checks even when the client already did; the client cannot be trusted.
func (e *Error) Future(field string, t time.Time) {
	if !t.After(time.Now()) {
		e.Add(field, "must be in the future")
	}
}

// Range checks an inclusive integer range.
func (e *Error) Range(field string, value, min, max int) {
	if value < min || value > max {
		e.Add(field, fmt.Sprintf("must be between %d and %d", min, max))
	}
}
