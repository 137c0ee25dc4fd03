package services

import (
	"github.com/tpms-simple/models"
	"github.com/tpms-simple/repositories"
)

// NotificationService handles business logic for notifications
type NotificationService struct {
	notifications *repositories.NotificationRepository
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(ds *repositories.Dataset) *NotificationService {
	return &NotificationService{
		notifications: repositories.NewNotificationRepository(ds),
	}
}

// ListForUser retrieves all notifications addressed to the user, newest first
func (s *NotificationService) ListForUser(userID string) []models.Notification {
	notifications := s.notifications.FindByUser(userID)
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications
}

// UnreadCount counts the user's unread notifications
func (s *NotificationService) UnreadCount(userID string) int {
	return s.notifications.CountUnread(userID)
}

// MarkRead flags one notification as read
func (s *NotificationService) MarkRead(id string) error {
	return s.notifications.MarkRead(id)
}

// MarkAllRead flags every notification addressed to the user as read
func (s *NotificationService) MarkAllRead(userID string) error {
	return s.notifications.MarkAllRead(userID)
}
