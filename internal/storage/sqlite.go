// Package storage provides SQLite-based persistence for solve history.
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

// Store manages the SQLite database connection for solve history.
type Store struct {
	db *sql.DB
}

// SolveRecord is one analysed puzzle.
type SolveRecord struct {
	ID         int64
	PuzzleID   string
	Source     string // "cli" or "ssh"
	Width      int
	Height     int
	LoopLength int
	Farthest   int
	Enclosed   int
	Clockwise  bool
	Duration   time.Duration
	CreatedAt  time.Time
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle_id TEXT NOT NULL,
			source TEXT NOT NULL DEFAULT 'cli',
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			loop_length INTEGER NOT NULL,
			farthest INTEGER NOT NULL,
			enclosed INTEGER NOT NULL,
			clockwise INTEGER NOT NULL,
			duration_us INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_puzzle_id ON solves(puzzle_id);
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

// SaveSolve records an analysis result.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(rec SolveRecord) (int64, error) {
	if rec.Source == "" {
		rec.Source = "cli"
	}

	result, err := s.db.Exec(
		`INSERT INTO solves (puzzle_id, source, width, height, loop_length, farthest, enclosed, clockwise, duration_us)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.PuzzleID, rec.Source, rec.Width, rec.Height,
		rec.LoopLength, rec.Farthest, rec.Enclosed, rec.Clockwise,
		rec.Duration.Microseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const solveColumns = `id, puzzle_id, source, width, height, loop_length, farthest, enclosed, clockwise, duration_us, created_at`

// RecentSolves retrieves the latest N solves of a puzzle, newest first.
// An empty puzzleID returns solves of every puzzle.
func (s *Store) RecentSolves(puzzleID string, limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	var (
		rows *sql.Rows
		err  error
	)
	if puzzleID == "" {
		rows, err = s.db.Query(
			`SELECT `+solveColumns+` FROM solves ORDER BY id DESC LIMIT ?`,
			limit,
		)
	} else {
		rows, err = s.db.Query(
			`SELECT `+solveColumns+` FROM solves WHERE puzzle_id = ? ORDER BY id DESC LIMIT ?`,
			puzzleID, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var records []SolveRecord
	for rows.Next() {
		rec, err := scanSolve(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// LatestSolve returns the most recent solve of a puzzle, or nil if it was never solved.
func (s *Store) LatestSolve(puzzleID string) (*SolveRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+solveColumns+` FROM solves WHERE puzzle_id = ? ORDER BY id DESC LIMIT 1`,
		puzzleID,
	)
	rec, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ClearSolves deletes the history of a puzzle.
func (s *Store) ClearSolves(puzzleID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE puzzle_id = ?", puzzleID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// PuzzleStats contains aggregated statistics for a puzzle.
type PuzzleStats struct {
	PuzzleID    string
	SolveCount  int
	AvgDuration time.Duration
	LastSolved  time.Time
}

// Stats retrieves aggregated statistics for a specific puzzle.
func (s *Store) Stats(puzzleID string) (*PuzzleStats, error) {
	stats := &PuzzleStats{PuzzleID: puzzleID}

	var avgMicros float64
	var lastSolved any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(duration_us), 0), MAX(created_at)
		 FROM solves WHERE puzzle_id = ?`,
		puzzleID,
	).Scan(&stats.SolveCount, &avgMicros, &lastSolved)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get puzzle stats: %w", err)
	}

	stats.AvgDuration = time.Duration(avgMicros) * time.Microsecond
	stats.LastSolved = parseTime(lastSolved)
	return stats, nil
}

// AllStats retrieves statistics for every puzzle that has been solved.
func (s *Store) AllStats() (map[string]*PuzzleStats, error) {
	rows, err := s.db.Query(
		`SELECT puzzle_id, COUNT(*), AVG(duration_us), MAX(created_at)
		 FROM solves
		 GROUP BY puzzle_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all puzzle stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PuzzleStats)
	for rows.Next() {
		var ps PuzzleStats
		var avgMicros float64
		var lastSolved any
		if err := rows.Scan(&ps.PuzzleID, &ps.SolveCount, &avgMicros, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.AvgDuration = time.Duration(avgMicros) * time.Microsecond
		ps.LastSolved = parseTime(lastSolved)
		stats[ps.PuzzleID] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(sc scanner) (SolveRecord, error) {
	var rec SolveRecord
	var micros int64
	var createdAt any
	err := sc.Scan(
		&rec.ID, &rec.PuzzleID, &rec.Source, &rec.Width, &rec.Height,
		&rec.LoopLength, &rec.Farthest, &rec.Enclosed, &rec.Clockwise,
		&micros, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, err
	}
	if err != nil {
		return rec, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	rec.Duration = time.Duration(micros) * time.Microsecond
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
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
