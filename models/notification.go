package models

import "time"

// NotificationType tags the event a notification describes
type NotificationType string

const (
	NotifTaskAssigned     NotificationType = "task_assigned"
	NotifTaskUpdated      NotificationType = "task_updated"
	NotifDeadlineReminder NotificationType = "deadline_reminder"
	NotifCommentAdded     NotificationType = "comment_added"
	NotifProjectUpdated   NotificationType = "project_updated"
	NotifStatusChanged    NotificationType = "status_changed"
)

// Notification is addressed to a single user
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	UserID    string           `json:"userId"`
	RelatedID string           `json:"relatedId,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}
