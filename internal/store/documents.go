package store

import (
	"context"
	"encoding/json"

	"github.com/abhisek/mathrush/internal/player"
)

// Logical document keys. Each key holds one JSON document written
// atomically per save.
const (
	keyProfile  = "profile"
	keyHistory  = "history"
	keySettings = "settings"
)

// LoadProfile returns the persisted profile, or the default profile when
// the document is absent or fails to decode.
func (s *Store) LoadProfile(ctx context.Context) player.Profile {
	p := player.DefaultProfile()
	s.loadDoc(ctx, keyProfile, &p, func() { p = player.DefaultProfile() })
	return p
}

// SaveProfile persists the profile document.
func (s *Store) SaveProfile(ctx context.Context, p player.Profile) error {
	return s.saveDoc(ctx, keyProfile, p)
}

// LoadHistory returns the persisted game history, oldest first, or an
// empty history when absent or undecodable.
func (s *Store) LoadHistory(ctx context.Context) []player.GameResult {
	var h []player.GameResult
	s.loadDoc(ctx, keyHistory, &h, func() { h = nil })
	return h
}

// SaveHistory persists the history document.
func (s *Store) SaveHistory(ctx context.Context, results []player.GameResult) error {
	return s.saveDoc(ctx, keyHistory, results)
}

// LoadSettings returns the persisted settings, or defaults when absent or
// undecodable.
func (s *Store) LoadSettings(ctx context.Context) player.Settings {
	set := player.DefaultSettings()
	s.loadDoc(ctx, keySettings, &set, func() { set = player.DefaultSettings() })
	return set
}

// SaveSettings persists the settings document.
func (s *Store) SaveSettings(ctx context.Context, set player.Settings) error {
	return s.saveDoc(ctx, keySettings, set)
}

// Reset deletes every document, restoring first-run state.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM documents`)
	return err
}

// loadDoc decodes the document at key into out. Absence leaves out
// untouched; a decode failure calls restore to put out back to defaults.
// Neither is an error: malformed persisted state is treated as absent.
func (s *Store) loadDoc(ctx context.Context, key string, out any, restore func()) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM documents WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		// Covers sql.ErrNoRows; a missing or unreadable document is
		// simply absent.
		return
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		restore()
	}
}

// saveDoc upserts the JSON encoding of v under key.
func (s *Store) saveDoc(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw))
	return err
}
