package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.db")

	conn, err := OpenDB(path)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.Ping())
}

func TestMigrate_Idempotent(t *testing.T) {
	conn := openTestDB(t)

	// Run migrations a second time — should succeed without error.
	err := Migrate(conn)
	require.NoError(t, err)

	err = Migrate(conn)
	require.NoError(t, err)
}

func TestMigrate_CreatesSchema(t *testing.T) {
	conn := openTestDB(t)

	var name string
	err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='plantings'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "plantings", name)

	err = conn.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_plantings_created'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "idx_plantings_created", name)
}
