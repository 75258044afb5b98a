// Package storage keeps the high score table of every level pack in a
// SQLite database, using the pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	pack       TEXT    NOT NULL,
	score      INTEGER NOT NULL,
	levels     INTEGER NOT NULL DEFAULT 0,
	completed  INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(pack, score DESC);
`

// Store is an open score database. Its methods are safe for concurrent
// use, so SSH sessions share one Store.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished run of a level pack.
type ScoreEntry struct {
	ID        int64
	Pack      string // pack name
	Score     int
	Levels    int  // levels cleared
	Completed bool // every level of the pack cleared
	CreatedAt time.Time
}

// PackSummary aggregates the runs of one pack.
type PackSummary struct {
	Pack        string
	Runs        int
	Best        int
	Completions int
}

// Open opens the database at dbPath, creating the file, its directories
// and the schema as needed. A leading "~" is the home directory.
func Open(dbPath string) (*Store, error) {
	if dbPath == "~" || strings.HasPrefix(dbPath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveScore records a finished run and returns its ID.
func (s *Store) SaveScore(pack string, score, levels int, completed bool) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO scores (pack, score, levels, completed) VALUES (?, ?, ?, ?)`,
		pack, score, levels, completed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return res.LastInsertId()
}

// TopScores returns the best limit runs of pack, highest first; ties go
// to the earlier run. A non-positive limit means 10.
func (s *Store) TopScores(pack string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pack, score, levels, completed, created_at
		   FROM scores
		  WHERE pack = ?
		  ORDER BY score DESC, id ASC
		  LIMIT ?`,
		pack, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var (
			e       ScoreEntry
			created any
		)
		if err := rows.Scan(&e.ID, &e.Pack, &e.Score, &e.Levels, &e.Completed, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan score: %w", err)
		}
		e.CreatedAt = parseTime(created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// HighScore returns the best score of pack, or 0 when it has none.
func (s *Store) HighScore(pack string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(score) FROM scores WHERE pack = ?`, pack).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// Summaries returns one summary per pack with scores, sorted by name.
func (s *Store) Summaries() ([]PackSummary, error) {
	rows, err := s.db.Query(
		`SELECT pack, COUNT(*), MAX(score), SUM(completed)
		   FROM scores
		  GROUP BY pack
		  ORDER BY pack`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query packs: %w", err)
	}
	defer rows.Close()

	var out []PackSummary
	for rows.Next() {
		var p PackSummary
		if err := rows.Scan(&p.Pack, &p.Runs, &p.Best, &p.Completions); err != nil {
			return nil, fmt.Errorf("storage: cannot scan pack: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Packs returns the names of the packs with scores, sorted.
func (s *Store) Packs() ([]string, error) {
	summaries, err := s.Summaries()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(summaries))
	for i, p := range summaries {
		names[i] = p.Pack
	}
	return names, nil
}

// ClearScores deletes every score of pack.
func (s *Store) ClearScores(pack string) error {
	if _, err := s.db.Exec(`DELETE FROM scores WHERE pack = ?`, pack); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime accepts the time.Time or text the driver may return for a
// DATETIME column.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.DateTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
