package models

import (
	"slices"
	"time"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "not_started"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectOnHold     ProjectStatus = "on_hold"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

// Priority represents the urgency assigned to projects and tasks
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Project represents a managed unit of work owning zero or more tasks
type Project struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Status        ProjectStatus `json:"status"`
	Priority      Priority      `json:"priority"`
	StartDate     time.Time     `json:"startDate"`
	EndDate       time.Time     `json:"endDate"`
	ManagerID     string        `json:"managerId"`
	TeamMemberIDs []string      `json:"teamMemberIds"`
	Budget        float64       `json:"budget"`
	Progress      int           `json:"progress"`
	Tags          []string      `json:"tags"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// HasMember reports whether the given user is on the project team
func (p Project) HasMember(userID string) bool {
	return slices.Contains(p.TeamMemberIDs, userID)
}
