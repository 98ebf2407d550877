// Package storage provides SQLite-based persistence for game results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished-game record. Board is a
// label like "4x4" so scores from different grid sizes never compete.
type ScoreEntry struct {
	ID        int64
	Board     string
	Score     int
	MaxTile   int
	Won       bool
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
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

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_board ON scores(board);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(board, score DESC);
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

// SaveScore records a finished game for the given board label.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(board string, score, maxTile int, won bool) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (board, score, max_tile, won) VALUES (?, ?, ?, ?)",
		board, score, maxTile, won,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given board label.
// Results are ordered by score descending.
func (s *Store) TopScores(board string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, board, score, max_tile, won, created_at
		 FROM scores
		 WHERE board = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		board, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// AllScores retrieves all scores for the given board label (no limit).
func (s *Store) AllScores(board string) ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, board, score, max_tile, won, created_at
		 FROM scores
		 WHERE board = ?
		 ORDER BY score DESC`,
		board,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// scanEntries reads score rows into entries.
func scanEntries(rows *sql.Rows) ([]ScoreEntry, error) {
	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Board, &e.Score, &e.MaxTile, &e.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTimestamp handles both time.Time and string datetime values.
func parseTimestamp(v any) time.Time {
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

// HighScore returns the highest score for the given board label.
// Returns 0 if no scores exist.
func (s *Store) HighScore(board string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE board = ?",
		board,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Boards returns the distinct board labels that have recorded scores,
// ordered alphabetically.
func (s *Store) Boards() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT board FROM scores ORDER BY board")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query boards: %w", err)
	}
	defer rows.Close()

	var boards []string
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		boards = append(boards, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return boards, nil
}

// ClearScores deletes all scores for the given board label.
func (s *Store) ClearScores(board string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE board = ?", board)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// BoardStats contains aggregated statistics for one board label.
type BoardStats struct {
	Board      string
	GamesCount int
	WinsCount  int
	HighScore  int
	BestTile   int
	AvgScore   float64
	LastPlayed time.Time
}

// GetBoardStats retrieves aggregated statistics for a board label.
func (s *Store) GetBoardStats(board string) (*BoardStats, error) {
	stats := &BoardStats{Board: board}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0),
		        COALESCE(MAX(max_tile), 0), COALESCE(AVG(score), 0)
		 FROM scores WHERE board = ?`,
		board,
	).Scan(&stats.GamesCount, &stats.WinsCount, &stats.HighScore, &stats.BestTile, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get board stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE board = ? ORDER BY created_at DESC LIMIT 1`,
		board,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}
