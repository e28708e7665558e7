package entity

import "time"

// Valid roles for User. Each role gets its own dashboard in the web client.
const (
	RoleFounder          = "founder"
	RoleCompanySecretary = "company_secretary"
	RoleLawyer           = "lawyer"
	RoleCFO              = "cfo"
	RoleBoardMember      = "board_member"
	RoleAdviser          = "adviser"
)

// Roles lists every valid user role.
var Roles = []string{
	RoleFounder, RoleCompanySecretary, RoleLawyer,
	RoleCFO, RoleBoardMember, RoleAdviser,
}

// User represents a portal user. Usernames are unique and contain no
// hyphens, which is what lets user-scoped routes accept either an id or
// a username.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, never the plain password after persisting
	Email        string
	Name         string
	Role         string // see Role* constants
	Company      string
	Position     string
	CreatedAt    time.Time
}
