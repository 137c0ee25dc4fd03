package utils

import "github.com/google/uuid"

// Entity id prefixes, one per collection
const (
	PrefixUser         = "user"
	PrefixProject      = "proj"
	PrefixTask         = "task"
	PrefixSubTask      = "sub"
	PrefixComment      = "comment"
	PrefixNotification = "notif"
	PrefixActivityLog  = "log"
	PrefixAttachment   = "file"
)

// GenerateEntityID returns an id of the form "{prefix}-{8 hex chars}".
// Collision resistance is best-effort; ids are never reused but not
// checked against the existing collection.
func GenerateEntityID(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}
