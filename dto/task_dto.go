package dto

import (
	"time"

	"github.com/tpms-simple/models"
)

// CreateTaskRequest represents the payload for creating a task
type CreateTaskRequest struct {
	Title          string            `json:"title" binding:"required"`
	Description    string            `json:"description"`
	Status         models.TaskStatus `json:"status"`
	Priority       models.Priority   `json:"priority"`
	ProjectID      string            `json:"projectId" binding:"required"`
	AssigneeID     string            `json:"assigneeId" binding:"required"`
	ReporterID     string            `json:"reporterId"`
	StartDate      time.Time         `json:"startDate"`
	DueDate        time.Time         `json:"dueDate"`
	EstimatedHours float64           `json:"estimatedHours"`
	Tags           []string          `json:"tags"`
}

// UpdateTaskRequest carries the fields of a partial task update. Nil
// fields are left untouched.
type UpdateTaskRequest struct {
	Title          *string            `json:"title"`
	Description    *string            `json:"description"`
	Status         *models.TaskStatus `json:"status"`
	Priority       *models.Priority   `json:"priority"`
	AssigneeID     *string            `json:"assigneeId"`
	StartDate      *time.Time         `json:"startDate"`
	DueDate        *time.Time         `json:"dueDate"`
	EstimatedHours *float64           `json:"estimatedHours"`
	LoggedHours    *float64           `json:"loggedHours"`
	Progress       *int               `json:"progress"`
	Tags           *[]string          `json:"tags"`
}

// UpdateTaskStatusRequest moves a task to a new workflow state
type UpdateTaskStatusRequest struct {
	Status models.TaskStatus `json:"status" binding:"required"`
}

// AddCommentRequest appends a comment to a task
type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddSubTaskRequest appends a subtask to a task checklist
type AddSubTaskRequest struct {
	Title string `json:"title" binding:"required"`
}
