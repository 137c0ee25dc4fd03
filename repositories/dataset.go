package repositories

import (
	"errors"
	"fmt"
	"log"

	"github.com/tpms-simple/database"
	"github.com/tpms-simple/models"
)

// Storage keys, one per collection plus the current-user record
const (
	KeyUsers         = "tpms_users"
	KeyProjects      = "tpms_projects"
	KeyTasks         = "tpms_tasks"
	KeyNotifications = "tpms_notifications"
	KeyActivityLogs  = "tpms_activity_logs"
	KeyCurrentUser   = "tpms_current_user"
)

// Dataset is the authoritative in-memory holder of all collections for
// the session. It is rehydrated from the snapshot store at startup and
// mirrors every mutation back write-through. Construct it with Open and
// pass it to whatever consumes it; it is deliberately not a singleton.
type Dataset struct {
	store *database.Store

	Users         []models.User
	Projects      []models.Project
	Tasks         []models.Task
	Notifications []models.Notification
	ActivityLogs  []models.ActivityLog
}

// Open rehydrates all collections from the snapshot store. A missing
// snapshot is replaced by the seed defaults; a malformed one falls back
// to the seed with a logged warning instead of failing the boot.
func Open(store *database.Store) (*Dataset, error) {
	ds := &Dataset{store: store}

	var err error
	if ds.Users, err = loadCollection(store, KeyUsers, database.SeedUsers()); err != nil {
		return nil, err
	}
	if ds.Projects, err = loadCollection(store, KeyProjects, database.SeedProjects()); err != nil {
		return nil, err
	}
	if ds.Tasks, err = loadCollection(store, KeyTasks, database.SeedTasks()); err != nil {
		return nil, err
	}
	if ds.Notifications, err = loadCollection(store, KeyNotifications, database.SeedNotifications()); err != nil {
		return nil, err
	}
	if ds.ActivityLogs, err = loadCollection(store, KeyActivityLogs, database.SeedActivityLogs()); err != nil {
		return nil, err
	}

	return ds, nil
}

func loadCollection[T any](store *database.Store, key string, seed []T) ([]T, error) {
	var items []T
	found, err := store.Load(key, &items)
	if err != nil {
		if !errors.Is(err, database.ErrMalformed) {
			return nil, err
		}
		log.Printf("⚠️ %v — falling back to seed data", err)
		found = false
	}
	if !found {
		if err := store.Save(key, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	return items, nil
}

// Reset clears every storage key and reloads all collections from the
// seed defaults. Any current-user session record is removed as well.
func (d *Dataset) Reset() error {
	if err := d.store.Clear(KeyUsers, KeyProjects, KeyTasks, KeyNotifications, KeyActivityLogs, KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}

	ds, err := Open(d.store)
	if err != nil {
		return err
	}

	d.Users = ds.Users
	d.Projects = ds.Projects
	d.Tasks = ds.Tasks
	d.Notifications = ds.Notifications
	d.ActivityLogs = ds.ActivityLogs
	return nil
}

// SaveCurrentUser persists the authenticated user snapshot
func (d *Dataset) SaveCurrentUser(user models.User) error {
	return d.store.Save(KeyCurrentUser, user)
}

// ClearCurrentUser removes the authenticated user snapshot
func (d *Dataset) ClearCurrentUser() error {
	return d.store.Delete(KeyCurrentUser)
}

// Write-through persistence, one method per collection. O(n) per write,
// acceptable at the data volumes of a single-tenant tool.

func (d *Dataset) persistUsers() error         { return d.store.Save(KeyUsers, d.Users) }
func (d *Dataset) persistProjects() error      { return d.store.Save(KeyProjects, d.Projects) }
func (d *Dataset) persistTasks() error         { return d.store.Save(KeyTasks, d.Tasks) }
func (d *Dataset) persistNotifications() error { return d.store.Save(KeyNotifications, d.Notifications) }
func (d *Dataset) persistActivityLogs() error  { return d.store.Save(KeyActivityLogs, d.ActivityLogs) }
