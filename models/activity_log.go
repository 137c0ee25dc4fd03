package models

import "time"

// EntityType identifies which collection an activity log entry refers to
type EntityType string

const (
	EntityProject EntityType = "project"
	EntityTask    EntityType = "task"
	EntityUser    EntityType = "user"
)

// ActivityLog is an append-only audit record of a user action.
// Entries may outlive the entity they reference; readers must tolerate
// ids that no longer resolve.
type ActivityLog struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Action     string     `json:"action"`
	EntityType EntityType `json:"entityType"`
	EntityID   string     `json:"entityId"`
	Details    string     `json:"details"`
	CreatedAt  time.Time  `json:"createdAt"`
}
