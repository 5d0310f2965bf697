package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Role represents the type of role an account can hold in the system.
type Role string

const (
	// RoleAdmin grants full access to the back office and the
	// administrator-management endpoints.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return r == RoleAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Account is an authentication account managed by the identity layer. The
// IsAdmin flag mirrors the account metadata set at creation; authorization
// decisions are taken from the user_roles table, not from this flag.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// Profile carries the display data attached to an account.
type Profile struct {
	ID        uuid.UUID // Same value as the account id.
	FullName  string
	CreatedAt time.Time
}

// AdminUser is the administrator listing row: the join of an admin role
// record with its profile and authentication account.
type AdminUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}
