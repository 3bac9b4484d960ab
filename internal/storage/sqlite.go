// Package storage provides persistence for high scores and session history.
// Store uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies;
// LocalStore keeps only the top five in the per-user data directory.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/planetary/internal/highscore"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Outcome is how a recorded session ended.
type Outcome string

const (
	OutcomeGameOver  Outcome = "game_over"
	OutcomeAbandoned Outcome = "abandoned"
	OutcomeFailed    Outcome = "failed"
)

// SessionRecord is one finished single-player session.
type SessionRecord struct {
	ID         int64
	Score      int
	Frames     int
	Intercepts int
	Outcome    Outcome
	Difficulty string
	Seed       int64
	CreatedAt  time.Time
}

// Stats contains aggregated statistics over every recorded session.
type Stats struct {
	GamesCount      int
	HighScore       int
	AvgScore        float64
	TotalScore      int64
	TotalIntercepts int64
	LastPlayed      time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
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
		CREATE TABLE IF NOT EXISTS top_scores (
			rank INTEGER PRIMARY KEY,
			score INTEGER NOT NULL,
			recorded_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			intercepts INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
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

// LoadTopScores returns the persisted high-score table, highest first.
func (s *Store) LoadTopScores() ([]highscore.Entry, error) {
	rows, err := s.db.Query(
		`SELECT score, recorded_at
		 FROM top_scores
		 ORDER BY rank
		 LIMIT ?`,
		highscore.Capacity,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query top scores: %w", err)
	}
	defer rows.Close()

	var entries []highscore.Entry
	for rows.Next() {
		var e highscore.Entry
		var recordedAt any
		if err := rows.Scan(&e.Score, &recordedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.RecordedAt = parseTime(recordedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// SaveTopScores replaces the persisted high-score table in one transaction.
func (s *Store) SaveTopScores(entries []highscore.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec("DELETE FROM top_scores"); err != nil {
		return fmt.Errorf("storage: cannot clear top scores: %w", err)
	}
	for i, e := range entries {
		if i >= highscore.Capacity {
			break
		}
		if _, err := tx.Exec(
			"INSERT INTO top_scores (rank, score, recorded_at) VALUES (?, ?, ?)",
			i, e.Score, e.RecordedAt.UTC().Format(timeLayout),
		); err != nil {
			return fmt.Errorf("storage: cannot save top score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit top scores: %w", err)
	}
	return nil
}

// RecordSession appends a finished session to the history.
// Returns the ID of the inserted record.
func (s *Store) RecordSession(r SessionRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (score, frames, intercepts, outcome, difficulty, seed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Score, r.Frames, r.Intercepts, string(r.Outcome), r.Difficulty, r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, score, frames, intercepts, outcome, difficulty, seed, created_at
		 FROM sessions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &r.Frames, &r.Intercepts, &outcome, &r.Difficulty, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats aggregates the session history. Failed sessions are left out.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(SUM(intercepts), 0), MAX(created_at)
		 FROM sessions WHERE outcome != ?`,
		string(OutcomeFailed),
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &stats.TotalIntercepts, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearSessions deletes the session history. The high-score table is kept.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string column values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

var _ highscore.Store = (*Store)(nil)
