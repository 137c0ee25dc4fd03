package dto

import "github.com/tpms-simple/models"

// CreateUserRequest represents the payload for creating a team member
type CreateUserRequest struct {
	Name       string          `json:"name" binding:"required"`
	Email      string          `json:"email" binding:"required,email"`
	Password   string          `json:"password" binding:"required,min=6"`
	Role       models.UserRole `json:"role" binding:"required"`
	Avatar     string          `json:"avatar"`
	Department string          `json:"department"`
	Phone      string          `json:"phone"`
	IsActive   *bool           `json:"isActive"`
}

// UpdateUserRequest carries the fields of a partial user update. Nil
// fields are left untouched.
type UpdateUserRequest struct {
	Name       *string          `json:"name"`
	Email      *string          `json:"email"`
	Password   *string          `json:"password"`
	Role       *models.UserRole `json:"role"`
	Avatar     *string          `json:"avatar"`
	Department *string          `json:"department"`
	Phone      *string          `json:"phone"`
	IsActive   *bool            `json:"isActive"`
}
