// Package storage persists the player profile (remaining lives and the
// audio preference) in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Profile is everything kept between runs
type Profile struct {
	Lives        int // 0 means "start over"
	AudioEnabled bool
}

// Store manages the SQLite database connection for the profile.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the single-row profile table if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			lives INTEGER NOT NULL DEFAULT 0,
			audio_enabled INTEGER NOT NULL DEFAULT 1,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT OR IGNORE INTO profile (id) VALUES (1);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadProfile reads the stored profile
func (s *Store) LoadProfile() (Profile, error) {
	var p Profile
	err := s.db.QueryRow("SELECT lives, audio_enabled FROM profile WHERE id = 1").Scan(&p.Lives, &p.AudioEnabled)
	if err != nil {
		return Profile{}, fmt.Errorf("storage: cannot load profile: %w", err)
	}
	return p, nil
}

// LoadLives returns the stored lives counter
func (s *Store) LoadLives() (int, error) {
	p, err := s.LoadProfile()
	if err != nil {
		return 0, err
	}
	return p.Lives, nil
}

// SaveLives stores the lives counter
func (s *Store) SaveLives(lives int) error {
	_, err := s.db.Exec(
		"UPDATE profile SET lives = ?, updated_at = CURRENT_TIMESTAMP WHERE id = 1",
		lives,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save lives: %w", err)
	}
	return nil
}

// SaveAudioEnabled stores the audio preference
func (s *Store) SaveAudioEnabled(enabled bool) error {
	_, err := s.db.Exec(
		"UPDATE profile SET audio_enabled = ?, updated_at = CURRENT_TIMESTAMP WHERE id = 1",
		enabled,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save audio preference: %w", err)
	}
	return nil
}
