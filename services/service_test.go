package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tpms-simple/database"
	"github.com/tpms-simple/repositories"
)

func newTestDataset(t *testing.T) *repositories.Dataset {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	ds, err := repositories.Open(database.NewStore(db))
	require.NoError(t, err)
	return ds
}
