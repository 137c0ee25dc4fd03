package repositories

import (
	"time"

	"github.com/tpms-simple/models"
	"github.com/tpms-simple/utils"
)

// NotificationRepository handles store operations for notifications
type NotificationRepository struct {
	ds *Dataset
}

// NewNotificationRepository creates a new notification repository instance
func NewNotificationRepository(ds *Dataset) *NotificationRepository {
	return &NotificationRepository{ds: ds}
}

// FindByUser retrieves all notifications addressed to a user, newest first
func (r *NotificationRepository) FindByUser(userID string) []models.Notification {
	var notifications []models.Notification
	for _, n := range r.ds.Notifications {
		if n.UserID == userID {
			notifications = append(notifications, n)
		}
	}
	return notifications
}

// Create stamps a fresh id and timestamp and prepends the notification,
// keeping the collection newest first
func (r *NotificationRepository) Create(notification models.Notification) (models.Notification, error) {
	notification.ID = utils.GenerateEntityID(utils.PrefixNotification)
	notification.CreatedAt = time.Now().UTC()
	r.ds.Notifications = append([]models.Notification{notification}, r.ds.Notifications...)
	if err := r.ds.persistNotifications(); err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

// MarkRead flags a single notification as read
func (r *NotificationRepository) MarkRead(id string) error {
	for i := range r.ds.Notifications {
		if r.ds.Notifications[i].ID == id {
			r.ds.Notifications[i].Read = true
			return r.ds.persistNotifications()
		}
	}
	return ErrNotFound
}

// MarkAllRead flags every notification addressed to the user as read
func (r *NotificationRepository) MarkAllRead(userID string) error {
	changed := false
	for i := range r.ds.Notifications {
		if r.ds.Notifications[i].UserID == userID && !r.ds.Notifications[i].Read {
			r.ds.Notifications[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return r.ds.persistNotifications()
}

// CountUnread counts unread notifications addressed to the user
func (r *NotificationRepository) CountUnread(userID string) int {
	count := 0
	for _, n := range r.ds.Notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}
