package repositories

import (
	"time"

	"github.com/tpms-simple/models"
	"github.com/tpms-simple/utils"
)

// ActivityLogRepository handles store operations for the audit trail.
// The collection is append-only; entries are never updated or deleted
// outside a full data reset.
type ActivityLogRepository struct {
	ds *Dataset
}

// NewActivityLogRepository creates a new activity log repository instance
func NewActivityLogRepository(ds *Dataset) *ActivityLogRepository {
	return &ActivityLogRepository{ds: ds}
}

// FindAll retrieves every log entry, newest first
func (r *ActivityLogRepository) FindAll() []models.ActivityLog {
	return r.ds.ActivityLogs
}

// FindRecent retrieves up to limit of the newest entries
func (r *ActivityLogRepository) FindRecent(limit int) []models.ActivityLog {
	if limit <= 0 || limit > len(r.ds.ActivityLogs) {
		limit = len(r.ds.ActivityLogs)
	}
	return r.ds.ActivityLogs[:limit]
}

// FindByUser retrieves every entry recorded for the acting user
func (r *ActivityLogRepository) FindByUser(userID string) []models.ActivityLog {
	var logs []models.ActivityLog
	for _, l := range r.ds.ActivityLogs {
		if l.UserID == userID {
			logs = append(logs, l)
		}
	}
	return logs
}

// Append stamps a fresh id and timestamp and prepends the entry, keeping
// the collection newest first
func (r *ActivityLogRepository) Append(entry models.ActivityLog) (models.ActivityLog, error) {
	entry.ID = utils.GenerateEntityID(utils.PrefixActivityLog)
	entry.CreatedAt = time.Now().UTC()
	r.ds.ActivityLogs = append([]models.ActivityLog{entry}, r.ds.ActivityLogs...)
	if err := r.ds.persistActivityLogs(); err != nil {
		return models.ActivityLog{}, err
	}
	return entry, nil
}
