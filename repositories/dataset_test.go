package repositories

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpms-simple/database"
)

func newTestStore(t *testing.T) *database.Store {
	t.Helper()
	t.Setenv("DATABASE_URL", "")

	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return database.NewStore(db)
}

func newTestDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := Open(newTestStore(t))
	require.NoError(t, err)
	return ds
}

func TestOpenSeedsEmptyStore(t *testing.T) {
	ds := newTestDataset(t)

	assert.NotEmpty(t, ds.Users)
	assert.NotEmpty(t, ds.Projects)
	assert.NotEmpty(t, ds.Tasks)
	assert.NotEmpty(t, ds.Notifications)
	assert.NotEmpty(t, ds.ActivityLogs)
}

func TestOpenRehydratesPersistedState(t *testing.T) {
	store := newTestStore(t)

	ds, err := Open(store)
	require.NoError(t, err)

	created, err := NewProjectRepository(ds).Create(sampleProject("Persisted Project"))
	require.NoError(t, err)

	// A fresh dataset over the same store sees the write-through state
	reopened, err := Open(store)
	require.NoError(t, err)

	found, err := NewProjectRepository(reopened).FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Persisted Project", found.Name)
}

func TestOpenFallsBackToSeedOnMalformedSnapshot(t *testing.T) {
	store := newTestStore(t)

	// A JSON string is valid JSON but not a user collection
	require.NoError(t, store.Save(KeyUsers, "corrupted"))

	ds, err := Open(store)
	require.NoError(t, err)
	assert.NotEmpty(t, ds.Users, "malformed snapshot should fall back to seed users")
}

func TestResetRestoresSeedDefaults(t *testing.T) {
	ds := newTestDataset(t)
	seedProjects := len(ds.Projects)

	_, err := NewProjectRepository(ds).Create(sampleProject("Doomed"))
	require.NoError(t, err)
	require.Len(t, ds.Projects, seedProjects+1)

	require.NoError(t, ds.Reset())
	assert.Len(t, ds.Projects, seedProjects)
	for _, p := range ds.Projects {
		assert.NotEqual(t, "Doomed", p.Name)
	}
}
