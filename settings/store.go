package settings

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store is the minimal interface the command layer uses to persist
// preferences.
type Store interface {
	Load() (Preferences, error)
	Save(Preferences) error
	Close() error
}

// The whole preferences struct is stored as a single JSON blob under
// one key.
const settingsKey = "weather_app_settings"

// SQLiteStore keeps the preferences blob in a single-table key-value
// SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLite opens (creating if needed) the settings database at path
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create settings table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// DefaultPath returns the per-user location of the settings database,
// creating the parent directory if needed
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	appDir := filepath.Join(dir, "weatherly")
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return filepath.Join(appDir, "settings.db"), nil
}

// Load reads the stored preferences. Stored values are decoded over
// the defaults so fields added since the blob was written keep their
// default values.
func (s *SQLiteStore) Load() (Preferences, error) {
	prefs := DefaultPreferences()

	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, settingsKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return prefs, nil
	}
	if err != nil {
		return prefs, fmt.Errorf("load settings: %w", err)
	}

	if err := json.Unmarshal([]byte(value), &prefs); err != nil {
		return DefaultPreferences(), fmt.Errorf("decode settings: %w", err)
	}
	return prefs, nil
}

// Save writes the preferences blob, replacing any previous value
func (s *SQLiteStore) Save(p Preferences) error {
	value, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		settingsKey, string(value),
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
