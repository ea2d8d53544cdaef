package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole controls access to administrative operations.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// IsValid reports whether r is a known role.
func (r UserRole) IsValid() bool {
	return r == UserRoleUser || r == UserRoleAdmin
}

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	DisplayName  string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}

// IsAdmin reports whether the user may run administrative operations.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// UserUpdate lists profile columns to change. Nil fields are left as they are.
type UserUpdate struct {
	Email        *string
	DisplayName  *string
	PasswordHash *string
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.DisplayName == nil && u.PasswordHash == nil
}

// UserWithTotals pairs a user with their all-time minutes, for admin listings.
type UserWithTotals struct {
	User         User
	TotalMinutes int
}
