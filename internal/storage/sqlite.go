// Package storage provides SQLite-based persistence for finished games.
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

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID         int64
	Difficulty string
	SessionID  string // Player session (local run or SSH connection)
	Seconds    int    // Time on the game clock
	Won        bool
	CreatedAt  time.Time
}

// Stats contains aggregated results for a difficulty.
type Stats struct {
	Difficulty string
	Played     int
	Won        int
	BestTime   int // 0 when no game was won
	LastPlayed time.Time
}

// WinRate returns the share of won games in [0, 1].
func (s Stats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			session_id TEXT NOT NULL DEFAULT '',
			seconds INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_difficulty ON results(difficulty);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(difficulty, won, seconds);
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

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO results (difficulty, session_id, seconds, won) VALUES (?, ?, ?, ?)",
		r.Difficulty, r.SessionID, r.Seconds, r.Won,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestTimes retrieves the N fastest won games for the given difficulty.
// Ties go to the earlier game.
func (s *Store) BestTimes(difficulty string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, session_id, seconds, won, created_at
		 FROM results
		 WHERE difficulty = ? AND won = 1
		 ORDER BY seconds ASC, id ASC
		 LIMIT ?`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Difficulty, &r.SessionID, &r.Seconds, &r.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// BestTime returns the fastest win for the given difficulty.
// The boolean is false when no game was won yet.
func (s *Store) BestTime(difficulty string) (int, bool, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(seconds) FROM results WHERE difficulty = ? AND won = 1",
		difficulty,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// Stats retrieves aggregated results for a single difficulty.
func (s *Store) Stats(difficulty string) (Stats, error) {
	stats := Stats{Difficulty: difficulty}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(won), 0),
		        COALESCE(MIN(CASE WHEN won = 1 THEN seconds END), 0),
		        MAX(created_at)
		 FROM results WHERE difficulty = ?`,
		difficulty,
	).Scan(&stats.Played, &stats.Won, &stats.BestTime, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllStats retrieves statistics for every difficulty that has been played.
func (s *Store) AllStats() (map[string]Stats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty,
		        COUNT(*),
		        COALESCE(SUM(won), 0),
		        COALESCE(MIN(CASE WHEN won = 1 THEN seconds END), 0),
		        MAX(created_at)
		 FROM results
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.Played, &st.Won, &st.BestTime, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearResults deletes all results for the given difficulty.
func (s *Store) ClearResults(difficulty string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE difficulty = ?", difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles both driver-native and text DATETIME values.
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
