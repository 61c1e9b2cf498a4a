// Package prefs is a small sqlite-backed key-value store for persisted UI
// preferences, currently just the kiosk text size.
package prefs

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Text size values round-tripped through the store. Anything else read back
// degrades to the default.
const (
	TextSizeSmall  = "small"
	TextSizeMedium = "medium"
	TextSizeLarge  = "large"

	textSizeKey = "textsize"
)

// TextSizes lists the valid sizes in increasing order.
var TextSizes = []string{TextSizeSmall, TextSizeMedium, TextSizeLarge}

// Store persists preference values.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the preference database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open prefs db: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS prefs (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init prefs schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the stored value for key, or fallback when the key is absent.
func (s *Store) Get(key, fallback string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// TextSize returns the persisted text size; missing or invalid values
// default to medium.
func (s *Store) TextSize() string {
	value, err := s.Get(textSizeKey, TextSizeMedium)
	if err != nil || !ValidTextSize(value) {
		return TextSizeMedium
	}
	return value
}

// SetTextSize persists the text size. Invalid values are rejected.
func (s *Store) SetTextSize(value string) error {
	if !ValidTextSize(value) {
		return fmt.Errorf("invalid text size %q", value)
	}
	return s.Set(textSizeKey, value)
}

// ValidTextSize reports whether value is one of the known sizes.
func ValidTextSize(value string) bool {
	for _, v := range TextSizes {
		if v == value {
			return true
		}
	}
	return false
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}
