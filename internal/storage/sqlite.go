// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one finished (or abandoned) game.
type Result struct {
	ID        int64
	SessionID string // Random UUID, generated on save when empty
	Side      int    // Board side; results of different sizes never compete
	Score     int
	Largest   int
	Attempts  int
	Cycles    int
	Outcome   string // victory, overvictory, loss, quit or interrupted
	CreatedAt time.Time
}

// Stats aggregates the results of one board size.
type Stats struct {
	Side       int
	GamesCount int
	Victories  int
	HighScore  int
	BestTile   int
	AvgScore   float64
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			side INTEGER NOT NULL,
			score INTEGER NOT NULL,
			largest INTEGER NOT NULL DEFAULT 0,
			attempts INTEGER NOT NULL DEFAULT 0,
			cycles INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_side ON results(side);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(side, score DESC);
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

// SaveResult records a game. Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.SessionID == "" {
		r.SessionID = uuid.NewString()
	} else if _, err := uuid.Parse(r.SessionID); err != nil {
		return 0, fmt.Errorf("storage: invalid session id %q: %w", r.SessionID, err)
	}

	result, err := s.db.Exec(
		`INSERT INTO results (session_id, side, score, largest, attempts, cycles, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Side, r.Score, r.Largest, r.Attempts, r.Cycles, r.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the top N results for the given board side.
// Results are ordered by score descending.
func (s *Store) TopResults(side, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, side, score, largest, attempts, cycles, outcome, created_at
		 FROM results
		 WHERE side = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		side, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Side, &r.Score, &r.Largest,
			&r.Attempts, &r.Cycles, &r.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		entries = append(entries, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ResultBySession retrieves a result by its session ID.
// Returns nil, nil when no such session was saved.
func (s *Store) ResultBySession(sessionID string) (*Result, error) {
	var r Result
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, session_id, side, score, largest, attempts, cycles, outcome, created_at
		 FROM results
		 WHERE session_id = ?`,
		sessionID,
	).Scan(&r.ID, &r.SessionID, &r.Side, &r.Score, &r.Largest,
		&r.Attempts, &r.Cycles, &r.Outcome, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}

	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// HighScore returns the highest score for the given board side.
// Returns 0 if no results exist.
func (s *Store) HighScore(side int) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE side = ?",
		side,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearResults deletes all results for the given board side.
func (s *Store) ClearResults(side int) error {
	_, err := s.db.Exec("DELETE FROM results WHERE side = ?", side)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for one board side.
func (s *Store) Stats(side int) (*Stats, error) {
	stats := &Stats{Side: side}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome IN ('victory', 'overvictory') THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0), COALESCE(MAX(largest), 0), COALESCE(AVG(score), 0),
		        MAX(created_at)
		 FROM results WHERE side = ?`,
		side,
	).Scan(&stats.GamesCount, &stats.Victories, &stats.HighScore, &stats.BestTile, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// Sides returns every board side that has results, smallest first.
func (s *Store) Sides() ([]int, error) {
	rows, err := s.db.Query("SELECT DISTINCT side FROM results ORDER BY side")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sides: %w", err)
	}
	defer rows.Close()

	var sides []int
	for rows.Next() {
		var side int
		if err := rows.Scan(&side); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sides = append(sides, side)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sides, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
