package models

import "time"

// TaskStatus represents the workflow state of a task
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskInReview   TaskStatus = "in_review"
	TaskCompleted  TaskStatus = "completed"
	TaskBlocked    TaskStatus = "blocked"
)

// SubTask is a checklist entry belonging to a task
type SubTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Comment is a discussion entry on a task
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Attachment holds metadata about a file attached to a task
type Attachment struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	UploadedBy string    `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
	URL        string    `json:"url"`
}

// Task represents a unit of work belonging to exactly one project
type Task struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Status         TaskStatus   `json:"status"`
	Priority       Priority     `json:"priority"`
	ProjectID      string       `json:"projectId"`
	AssigneeID     string       `json:"assigneeId"`
	ReporterID     string       `json:"reporterId"`
	StartDate      time.Time    `json:"startDate"`
	DueDate        time.Time    `json:"dueDate"`
	CompletedDate  *time.Time   `json:"completedDate,omitempty"`
	EstimatedHours float64      `json:"estimatedHours"`
	LoggedHours    float64      `json:"loggedHours"`
	Progress       int          `json:"progress"`
	SubTasks       []SubTask    `json:"subtasks"`
	Comments       []Comment    `json:"comments"`
	Attachments    []Attachment `json:"attachments"`
	Tags           []string     `json:"tags"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// IsOverdue reports whether the task is past due and not completed.
// Tasks without a due date are never overdue.
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate.IsZero() || t.Status == TaskCompleted {
		return false
	}
	return t.DueDate.Before(now)
}
