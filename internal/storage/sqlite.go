// Package storage provides SQLite-based persistence for high scores.
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

	"github.com/vovakirdan/tiltdodge/internal/config"
	"github.com/vovakirdan/tiltdodge/internal/highscore"
)

// Store manages the SQLite database connection. It serves as a
// highscore.Backend and keeps a log of every finished run.
type Store struct {
	db *sql.DB
}

// Run is one finished game from the run log.
type Run struct {
	ID        int64
	Key       string
	Name      string
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath = config.ExpandHome(dbPath)

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
		CREATE TABLE IF NOT EXISTS high_scores (
			score_key TEXT NOT NULL,
			rank INTEGER NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			PRIMARY KEY (score_key, rank)
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score_key TEXT NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_key ON runs(score_key);
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

// LoadTable reads every ranked entry.
func (s *Store) LoadTable() (highscore.Table, error) {
	rows, err := s.db.Query(
		`SELECT score_key, name, score
		 FROM high_scores
		 ORDER BY score_key, rank`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	t := highscore.Table{}
	for rows.Next() {
		var key string
		var e highscore.Entry
		if err := rows.Scan(&key, &e.Name, &e.Score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		t[key] = append(t[key], e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return t, nil
}

// SaveTable replaces the ranked entries in a single transaction.
func (s *Store) SaveTable(t highscore.Table) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM high_scores"); err != nil {
		return fmt.Errorf("storage: cannot clear high scores: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO high_scores (score_key, rank, name, score) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for key, entries := range t {
		for rank, e := range entries {
			if _, err := stmt.Exec(key, rank, e.Name, e.Score); err != nil {
				return fmt.Errorf("storage: cannot save entry for %s: %w", key, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit high scores: %w", err)
	}
	return nil
}

// LogRun appends a finished run to the run log.
func (s *Store) LogRun(key, name string, score int) error {
	_, err := s.db.Exec(
		"INSERT INTO runs (score_key, name, score) VALUES (?, ?, ?)",
		key, name, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot log run: %w", err)
	}
	return nil
}

// RecentRuns returns the latest runs for key, newest first.
func (s *Store) RecentRuns(key string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score_key, name, score, created_at
		 FROM runs
		 WHERE score_key = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		key, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Key, &r.Name, &r.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearKey deletes the ranked entries and the run log for key.
func (s *Store) ClearKey(key string) error {
	if _, err := s.db.Exec("DELETE FROM high_scores WHERE score_key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot clear high scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs WHERE score_key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// KeyStats contains aggregated run statistics for one difficulty/level key.
type KeyStats struct {
	Key        string
	RunsCount  int
	BestScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Stats retrieves aggregated run statistics for key.
func (s *Store) Stats(key string) (*KeyStats, error) {
	stats := &KeyStats{Key: key}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM runs WHERE score_key = ?`,
		key,
	).Scan(&stats.RunsCount, &stats.BestScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE score_key = ? ORDER BY id DESC LIMIT 1`,
		key,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// AllStats retrieves run statistics for every key that has been played.
func (s *Store) AllStats() (map[string]*KeyStats, error) {
	rows, err := s.db.Query(
		`SELECT score_key, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM runs
		 GROUP BY score_key`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*KeyStats)
	for rows.Next() {
		var ks KeyStats
		var lastPlayed any
		if err := rows.Scan(&ks.Key, &ks.RunsCount, &ks.BestScore, &ks.AvgScore, &ks.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ks.LastPlayed = parseTime(lastPlayed)
		stats[ks.Key] = &ks
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
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
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

var (
	_ highscore.Backend   = (*Store)(nil)
	_ highscore.RunLogger = (*Store)(nil)
)
