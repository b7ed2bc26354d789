package prefs

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// Preference keys persisted across sessions.
const (
	KeyTheme            = "theme"
	KeySidebarCollapsed = "sidebarCollapsed"
)

// Store is the durable client-local key/value store (theme preference,
// sidebar collapsed flag). If the database cannot be opened the store
// degrades to in-memory so the UI stays usable; values then last only
// for the process lifetime.
type Store struct {
	db *sql.DB

	mu  sync.Mutex
	mem map[string]string
}

func Open() (*Store, error) {
	s := &Store{mem: map[string]string{}}

	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, herr := os.UserHomeDir()
		if herr != nil {
			return s, err
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	dbDir := filepath.Join(configDir, "genie")
	if err := os.MkdirAll(dbDir, 0o700); err != nil {
		return s, err
	}

	db, err := sql.Open("sqlite", filepath.Join(dbDir, "genie.db"))
	if err != nil {
		return s, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return s, err
	}

	schema := `CREATE TABLE IF NOT EXISTS prefs (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return s, err
	}

	s.db = db
	return s, nil
}

func (s *Store) Get(key string) (string, bool) {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		v, ok := s.mem[key]
		return v, ok
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *Store) Set(key, value string) error {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.mem[key] = value
		return nil
	}

	_, err := s.db.Exec(
		"INSERT INTO prefs(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key,
		value,
	)
	return err
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
