// Package storage provides SQLite-based persistence for recorded runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a replay does not exist.
var ErrNotFound = errors.New("storage: replay not found")

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// ReplayEntry is a stored recording. Data holds the encoded replay;
// list queries leave it empty.
type ReplayEntry struct {
	ID        int64
	GameID    string
	Seed      int64
	Frames    int
	Duration  float64 // Seconds of simulated time
	Data      []byte
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
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
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			duration REAL NOT NULL,
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_game_id ON replays(game_id, id DESC);
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

// SaveReplay stores an encoded replay.
// Returns the ID of the inserted record.
func (s *Store) SaveReplay(e ReplayEntry) (int64, error) {
	if len(e.Data) == 0 {
		return 0, errors.New("storage: cannot save empty replay")
	}
	result, err := s.db.Exec(
		"INSERT INTO replays (game_id, seed, frames, duration, data) VALUES (?, ?, ?, ?, ?)",
		e.GameID, e.Seed, e.Frames, e.Duration, e.Data,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// ReplayByID loads a replay including its data.
func (s *Store) ReplayByID(id int64) (ReplayEntry, error) {
	var e ReplayEntry
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, game_id, seed, frames, duration, data, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.GameID, &e.Seed, &e.Frames, &e.Duration, &e.Data, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return ReplayEntry{}, ErrNotFound
	}
	if err != nil {
		return ReplayEntry{}, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// RecentReplays lists the newest replays, without data. An empty gameID
// lists every game.
func (s *Store) RecentReplays(gameID string, limit int) ([]ReplayEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, frames, duration, created_at
		 FROM replays
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplayEntry
	for rows.Next() {
		var e ReplayEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Seed, &e.Frames, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ReplayCount returns the number of stored replays for a game.
func (s *Store) ReplayCount(gameID string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM replays WHERE game_id = ?", gameID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count replays: %w", err)
	}
	return n, nil
}

// DeleteReplay removes one replay.
func (s *Store) DeleteReplay(id int64) error {
	res, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearReplays deletes all replays for the given game.
func (s *Store) ClearReplays(gameID string) error {
	_, err := s.db.Exec("DELETE FROM replays WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear replays: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
