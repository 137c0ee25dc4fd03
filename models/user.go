package models

import "time"

// UserRole represents user role types
type UserRole string

const (
	RoleAdmin          UserRole = "admin"
	RoleProjectManager UserRole = "project_manager"
	RoleTeamMember     UserRole = "team_member"
)

// User represents a member of the workspace
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Password   string    `json:"password,omitempty"` // bcrypt hash; cleared before API responses
	Role       UserRole  `json:"role"`
	Avatar     string    `json:"avatar"`
	Department string    `json:"department"`
	Phone      string    `json:"phone"`
	JoinDate   time.Time `json:"joinDate"`
	IsActive   bool      `json:"isActive"`
}

// IsAdmin reports whether the user has the admin role
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Sanitized returns a copy of the user with the password hash removed,
// suitable for API responses.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
