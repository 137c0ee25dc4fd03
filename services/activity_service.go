package services

import (
	"github.com/tpms-simple/models"
	"github.com/tpms-simple/repositories"
)

// ActivityService exposes the audit trail
type ActivityService struct {
	logs *repositories.ActivityLogRepository
}

// NewActivityService creates a new activity service instance
func NewActivityService(ds *repositories.Dataset) *ActivityService {
	return &ActivityService{
		logs: repositories.NewActivityLogRepository(ds),
	}
}

// Recent retrieves up to limit of the newest log entries
func (s *ActivityService) Recent(limit int) []models.ActivityLog {
	logs := s.logs.FindRecent(limit)
	if logs == nil {
		logs = []models.ActivityLog{}
	}
	return logs
}

// ForUser retrieves the entries recorded for one acting user
func (s *ActivityService) ForUser(userID string) []models.ActivityLog {
	logs := s.logs.FindByUser(userID)
	if logs == nil {
		logs = []models.ActivityLog{}
	}
	return logs
}
