package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/drill/internal/domain"
	"github.com/alexanderramin/drill/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureObserver struct {
	events []StoreEvent
}

func (c *captureObserver) OnStoreEvent(e StoreEvent) {
	c.events = append(c.events, e)
}

func TestSQLiteStateStore_HighScoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStateStore(testutil.NewTestDB(t), nil)

	assert.Zero(t, store.HighScore(ctx), "absent key falls back to zero")

	store.SetHighScore(ctx, 12)
	assert.Equal(t, 12, store.HighScore(ctx))

	store.SetHighScore(ctx, 15)
	assert.Equal(t, 15, store.HighScore(ctx))
}

func TestSQLiteStateStore_HighScoreCorruptionFallsBack(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	obs := &captureObserver{}
	store := NewSQLiteStateStore(database, obs)

	_, err := database.Exec(`INSERT INTO kv (key, value, updated_at) VALUES (?, 'not-a-number', '2026-01-01T00:00:00Z')`, KeyHighScore)
	require.NoError(t, err)

	assert.Zero(t, store.HighScore(ctx))
	require.Len(t, obs.events, 1)
	assert.Equal(t, "load", obs.events[0].Op)
	assert.Equal(t, KeyHighScore, obs.events[0].Key)
}

func TestSQLiteStateStore_NegativeHighScoreIsCorrupt(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	store := NewSQLiteStateStore(database, nil)

	_, err := database.Exec(`INSERT INTO kv (key, value, updated_at) VALUES (?, '-4', '2026-01-01T00:00:00Z')`, KeyHighScore)
	require.NoError(t, err)

	assert.Zero(t, store.HighScore(ctx))
}

func TestSQLiteStateStore_SettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStateStore(testutil.NewTestDB(t), nil)

	assert.Equal(t, domain.DefaultSettings(), store.Settings(ctx), "absent key falls back to defaults")

	want := domain.Settings{
		MaxResult:  20,
		MinOperand: 1,
		MaxOperand: 12,
		AllowZero:  false,
		Operations: []string{"multiplication"},
	}
	store.SaveSettings(ctx, want)
	assert.Equal(t, want, store.Settings(ctx))
}

func TestSQLiteStateStore_SettingsCorruptJSONFallsBack(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	obs := &captureObserver{}
	store := NewSQLiteStateStore(database, obs)

	_, err := database.Exec(`INSERT INTO kv (key, value, updated_at) VALUES (?, '{broken', '2026-01-01T00:00:00Z')`, KeySettings)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings(), store.Settings(ctx))
	require.Len(t, obs.events, 1)
	assert.Equal(t, KeySettings, obs.events[0].Key)
}

func TestSQLiteStateStore_WriteFailureIsObservedNotFatal(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	obs := &captureObserver{}
	store := NewSQLiteStateStore(database, obs)

	// Closing the handle makes every write fail the way a locked or
	// quota-exhausted store would.
	require.NoError(t, database.Close())

	store.SetHighScore(ctx, 3)
	require.NotEmpty(t, obs.events)
	assert.Equal(t, "save", obs.events[0].Op)

	// Reads against the dead handle observe and fall back too.
	assert.Zero(t, store.HighScore(ctx))
}
