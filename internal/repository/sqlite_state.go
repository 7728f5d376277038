package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/drill/internal/db"
	"github.com/alexanderramin/drill/internal/domain"
)

// Persisted keys. The high score and the settings object are the only two
// durable values; everything else is session-lifetime state.
const (
	KeyHighScore = "high-score"
	KeySettings  = "settings"
)

// SQLiteStateStore persists the two durable scalars in the kv table.
// Every read falls back to a default on absence, corruption or storage
// failure, and every write is best effort: no method here ever returns an
// error, because persistence trouble must never interrupt play.
type SQLiteStateStore struct {
	db  db.DBTX
	obs Observer
}

// NewSQLiteStateStore creates a store over conn, reporting failures to obs.
func NewSQLiteStateStore(conn db.DBTX, obs Observer) *SQLiteStateStore {
	if obs == nil {
		obs = NoopObserver{}
	}
	return &SQLiteStateStore{db: conn, obs: obs}
}

// HighScore returns the persisted high score, or zero when absent or
// unreadable.
func (s *SQLiteStateStore) HighScore(ctx context.Context) int {
	raw, ok := s.load(ctx, KeyHighScore)
	if !ok {
		return 0
	}
	score, err := strconv.Atoi(raw)
	if err != nil || score < 0 {
		s.obs.OnStoreEvent(StoreEvent{Op: "load", Key: KeyHighScore, Err: fmt.Errorf("corrupt value %q", raw)})
		return 0
	}
	return score
}

// SetHighScore writes the high score, best effort.
func (s *SQLiteStateStore) SetHighScore(ctx context.Context, score int) {
	s.save(ctx, KeyHighScore, strconv.Itoa(score))
}

// Settings returns the persisted settings object, or the built-in defaults
// when absent or unreadable.
func (s *SQLiteStateStore) Settings(ctx context.Context) domain.Settings {
	raw, ok := s.load(ctx, KeySettings)
	if !ok {
		return domain.DefaultSettings()
	}
	var settings domain.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.obs.OnStoreEvent(StoreEvent{Op: "load", Key: KeySettings, Err: fmt.Errorf("corrupt JSON: %w", err)})
		return domain.DefaultSettings()
	}
	return settings
}

// SaveSettings writes the settings object, best effort.
func (s *SQLiteStateStore) SaveSettings(ctx context.Context, settings domain.Settings) {
	raw, err := json.Marshal(settings)
	if err != nil {
		s.obs.OnStoreEvent(StoreEvent{Op: "save", Key: KeySettings, Err: err})
		return
	}
	s.save(ctx, KeySettings, string(raw))
}

// load reads one key. ok is false on absence or storage failure; only the
// latter is observed.
func (s *SQLiteStateStore) load(ctx context.Context, key string) (value string, ok bool) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.obs.OnStoreEvent(StoreEvent{Op: "load", Key: key, Err: err})
		}
		return "", false
	}
	return value, true
}

func (s *SQLiteStateStore) save(ctx context.Context, key, value string) {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)`,
		key, value, now)
	if err != nil {
		s.obs.OnStoreEvent(StoreEvent{Op: "save", Key: key, Err: err})
	}
}
