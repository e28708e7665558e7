package dto

import "github.com/asxpathway/pathway-api/internal/application/validation"

// LoginRequest input for token issuing.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks both credentials are present.
func (r LoginRequest) Validate() error {
	var v validation.Error
	v.Required("username", r.Username)
	v.Required("password", r.Password)
	return v.Err()
}

// LoginResponse token plus the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
