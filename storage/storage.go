package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Snapshot keys, one per persisted collection or record.
const (
	KeyPosts       = "posts"
	KeyAds         = "ads"
	KeySession     = "current-session-user"
	KeyComments    = "comments"
	KeyUsers       = "registered-users"
	KeyMessages    = "contact-messages"
	KeySubscribers = "newsletter-subscribers"
)

// Store persists named collections as JSON snapshots in SQLite. Each
// mutation in the application rewrites the full snapshot for the
// affected collection.
type Store struct {
	db *sql.DB
}

// Open opens the snapshot database and creates the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
        CREATE TABLE IF NOT EXISTS snapshots (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL,
            updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
        )
    `)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the snapshot for key into v. It reports false when no
// snapshot exists. A snapshot that fails to deserialize is treated the
// same as a missing one so the caller falls back to its seed data; one
// corrupt collection must not block loading of the others.
func (s *Store) Load(key string, v interface{}) (bool, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM snapshots WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load snapshot %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		log.Printf("Corrupt snapshot %q, falling back to defaults: %v", key, err)
		return false, nil
	}
	return true, nil
}

// Save writes the full snapshot for key.
func (s *Store) Save(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode snapshot %q: %w", key, err)
	}

	_, err = s.db.Exec(`
        INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
    `, key, string(raw), time.Now())
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", key, err)
	}
	return nil
}

// Delete removes the snapshot for key, if present.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM snapshots WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("delete snapshot %q: %w", key, err)
	}
	return nil
}
