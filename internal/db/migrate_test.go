package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_MigratesKVTable(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO kv (key, value, updated_at) VALUES ('high-score', '3', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	var value string
	err = database.QueryRow(`SELECT value FROM kv WHERE key = 'high-score'`).Scan(&value)
	require.NoError(t, err)
	assert.Equal(t, "3", value)
}

func TestMigrate_IsRerunnable(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	assert.NoError(t, Migrate(database))
	assert.NoError(t, Migrate(database))
}
