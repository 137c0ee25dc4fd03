package dto

import (
	"time"

	"github.com/tpms-simple/models"
)

// CreateProjectRequest represents the payload for creating a project
type CreateProjectRequest struct {
	Name          string               `json:"name" binding:"required"`
	Description   string               `json:"description"`
	Status        models.ProjectStatus `json:"status"`
	Priority      models.Priority      `json:"priority"`
	StartDate     time.Time            `json:"startDate"`
	EndDate       time.Time            `json:"endDate"`
	ManagerID     string               `json:"managerId" binding:"required"`
	TeamMemberIDs []string             `json:"teamMemberIds"`
	Budget        float64              `json:"budget"`
	Progress      int                  `json:"progress"`
	Tags          []string             `json:"tags"`
}

// UpdateProjectRequest carries the fields of a partial project update.
// Nil fields are left untouched.
type UpdateProjectRequest struct {
	Name          *string               `json:"name"`
	Description   *string               `json:"description"`
	Status        *models.ProjectStatus `json:"status"`
	Priority      *models.Priority      `json:"priority"`
	StartDate     *time.Time            `json:"startDate"`
	EndDate       *time.Time            `json:"endDate"`
	ManagerID     *string               `json:"managerId"`
	TeamMemberIDs *[]string             `json:"teamMemberIds"`
	Budget        *float64              `json:"budget"`
	Progress      *int                  `json:"progress"`
	Tags          *[]string             `json:"tags"`
}
