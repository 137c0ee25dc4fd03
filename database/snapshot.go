package database

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrMalformed is returned when a stored snapshot cannot be decoded.
var ErrMalformed = errors.New("malformed snapshot")

// Snapshot is one durable key holding a JSON-encoded value. Each entity
// collection (and the current-user record) occupies exactly one row.
type Snapshot struct {
	Key  string `gorm:"primaryKey"`
	Data string `gorm:"type:text;not null"`
}

// TableName sets the table name for the Snapshot model
func (Snapshot) TableName() string {
	return "snapshots"
}

// Store reads and writes JSON snapshots keyed by collection name.
type Store struct {
	db *gorm.DB
}

// NewStore creates a snapshot store over an open database connection
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Load decodes the snapshot stored under key into out. It returns false
// when no snapshot exists, and ErrMalformed (wrapped) when the stored
// data cannot be decoded.
func (s *Store) Load(key string, out any) (bool, error) {
	var snap Snapshot
	result := s.db.First(&snap, "key = ?", key)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if result.Error != nil {
		return false, fmt.Errorf("failed to read snapshot %q: %w", key, result.Error)
	}
	if err := json.Unmarshal([]byte(snap.Data), out); err != nil {
		return false, fmt.Errorf("%w: key %q: %v", ErrMalformed, key, err)
	}
	return true, nil
}

// Save serializes value and writes it under key, replacing any previous
// snapshot. This is the write-through half of the mirror: callers invoke
// it after every collection mutation.
func (s *Store) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %q: %w", key, err)
	}
	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data"}),
	}).Create(&Snapshot{Key: key, Data: string(data)})
	if result.Error != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", key, result.Error)
	}
	return nil
}

// Delete removes the snapshot stored under key, if present
func (s *Store) Delete(key string) error {
	result := s.db.Delete(&Snapshot{}, "key = ?", key)
	return result.Error
}

// Clear removes all of the given keys. Used by the full data reset.
func (s *Store) Clear(keys ...string) error {
	for _, key := range keys {
		if err := s.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
