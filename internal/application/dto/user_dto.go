package dto

import (
	"time"

	"github.com/asxpathway/pathway-api/internal/application/validation"
	"github.com/asxpathway/pathway-api/internal/domain/entity"
)

// CreateUserRequest input for signup. The plain password is hashed before
// it ever reaches the store.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	Position string `json:"position"`
}

// Validate checks required fields and enum membership.
func (r CreateUserRequest) Validate() error {
	var v validation.Error
	v.Required("username", r.Username)
	v.Required("password", r.Password)
	v.OneOf("role", r.Role, entity.Roles)
	return v.Err()
}

// UpdateUserRequest partial update; nil fields stay untouched.
type UpdateUserRequest struct {
	Password *string `json:"password"`
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Company  *string `json:"company"`
	Position *string `json:"position"`
}

// Validate keeps per-field rules without requiredness.
func (r UpdateUserRequest) Validate() error {
	var v validation.Error
	if r.Role != nil {
		v.OneOf("role", *r.Role, entity.Roles)
	}
	if r.Password != nil && *r.Password == "" {
		v.Add("password", "must not be empty")
	}
	return v.Err()
}

// UserResponse user output. The password hash never leaves the server.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role"`
	Company   string    `json:"company,omitempty"`
	Position  string    `json:"position,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
