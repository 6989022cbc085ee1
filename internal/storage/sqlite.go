// Package storage provides SQLite-based persistence for the high score and
// session history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pearldive/internal/progression"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished session as stored in the history table.
type SessionRecord struct {
	ID            int64
	SessionID     string
	Mode          progression.Mode
	Pearls        int
	Level         int
	TotalCorrect  int
	TotalAttempts int
	Accuracy      int
	Duration      time.Duration
	NewHighScore  bool
	StartedAt     time.Time
	CreatedAt     time.Time
}

// ModeStats contains aggregated history for one mode.
type ModeStats struct {
	Mode         progression.Mode
	Sessions     int
	BestPearls   int
	AvgPearls    float64
	TotalCorrect int64
	LastPlayed   time.Time
}

// ErrNegativeScore is returned when saving a high score below zero.
var ErrNegativeScore = errors.New("storage: high score must not be negative")

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	path, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
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

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(p string) (string, error) {
	if p == "" || p[0] != '~' {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			value INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			pearls INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			total_correct INTEGER NOT NULL DEFAULT 0,
			total_attempts INTEGER NOT NULL DEFAULT 0,
			accuracy INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			new_high_score INTEGER NOT NULL DEFAULT 0,
			started_at INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_mode ON sessions(mode);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(mode, pearls DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
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

// LoadHighScore returns the all-time high score, or 0 if none was saved.
func (s *Store) LoadHighScore() (int, error) {
	var value int
	err := s.db.QueryRow("SELECT value FROM high_score WHERE id = 1").Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return value, nil
}

// SaveHighScore stores value if it beats the saved high score.
// Lower values leave the row untouched.
func (s *Store) SaveHighScore(value int) error {
	if value < 0 {
		return ErrNegativeScore
	}
	_, err := s.db.Exec(
		`INSERT INTO high_score (id, value, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
		   value = excluded.value,
		   updated_at = excluded.updated_at
		 WHERE excluded.value > high_score.value`,
		value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// ResetHighScore deletes the saved high score.
func (s *Store) ResetHighScore() error {
	if _, err := s.db.Exec("DELETE FROM high_score"); err != nil {
		return fmt.Errorf("storage: cannot reset high score: %w", err)
	}
	return nil
}

// SaveSession records a finished session. Empty summaries are skipped and
// return ID 0. Saving the same session twice keeps the first record.
func (s *Store) SaveSession(sum progression.Summary) (int64, error) {
	if sum.Empty() {
		return 0, nil
	}

	result, err := s.db.Exec(
		`INSERT OR IGNORE INTO sessions
		 (session_id, mode, pearls, level, total_correct, total_attempts, accuracy, duration_ms, new_high_score, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sum.SessionID,
		string(sum.Mode),
		sum.Pearls,
		sum.Level,
		sum.TotalCorrect,
		sum.TotalAttempts,
		sum.Accuracy,
		sum.Duration.Milliseconds(),
		boolToInt(sum.NewHighScore),
		sum.StartedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return 0, nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const sessionColumns = `id, session_id, mode, pearls, level, total_correct, total_attempts,
		accuracy, duration_ms, new_high_score, started_at, created_at`

// TopSessions retrieves the best N sessions for the given mode, by pearls.
// An empty mode covers all modes.
func (s *Store) TopSessions(mode progression.Mode, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	var (
		rows *sql.Rows
		err  error
	)
	if mode == "" {
		rows, err = s.db.Query(
			`SELECT `+sessionColumns+`
			 FROM sessions
			 ORDER BY pearls DESC, started_at ASC
			 LIMIT ?`,
			limit,
		)
	} else {
		rows, err = s.db.Query(
			`SELECT `+sessionColumns+`
			 FROM sessions
			 WHERE mode = ?
			 ORDER BY pearls DESC, started_at ASC
			 LIMIT ?`,
			string(mode), limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	return scanSessions(rows)
}

// RecentSessions retrieves the most recently started sessions.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	return scanSessions(rows)
}

// ClearSessions deletes the history for one mode.
func (s *Store) ClearSessions(mode progression.Mode) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE mode = ?", string(mode))
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// GetModeStats retrieves aggregated history for a specific mode.
func (s *Store) GetModeStats(mode progression.Mode) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	var lastPlayed sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(pearls), 0), COALESCE(AVG(pearls), 0),
		        COALESCE(SUM(total_correct), 0), MAX(started_at)
		 FROM sessions WHERE mode = ?`,
		string(mode),
	).Scan(&stats.Sessions, &stats.BestPearls, &stats.AvgPearls, &stats.TotalCorrect, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}

	if lastPlayed.Valid {
		stats.LastPlayed = time.UnixMilli(lastPlayed.Int64)
	}
	return stats, nil
}

// GetAllModeStats retrieves statistics for every mode that has been played.
func (s *Store) GetAllModeStats() (map[progression.Mode]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(pearls), AVG(pearls), SUM(total_correct), MAX(started_at)
		 FROM sessions
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all mode stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[progression.Mode]*ModeStats)
	for rows.Next() {
		var (
			st         ModeStats
			mode       string
			lastPlayed int64
		)
		if err := rows.Scan(&mode, &st.Sessions, &st.BestPearls, &st.AvgPearls, &st.TotalCorrect, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.Mode = progression.Mode(mode)
		st.LastPlayed = time.UnixMilli(lastPlayed)
		stats[st.Mode] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

func scanSessions(rows *sql.Rows) ([]SessionRecord, error) {
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var (
			r          SessionRecord
			mode       string
			durationMS int64
			newHigh    int
			startedAt  int64
			createdAt  any
		)
		if err := rows.Scan(
			&r.ID,
			&r.SessionID,
			&mode,
			&r.Pearls,
			&r.Level,
			&r.TotalCorrect,
			&r.TotalAttempts,
			&r.Accuracy,
			&durationMS,
			&newHigh,
			&startedAt,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.Mode = progression.Mode(mode)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.NewHighScore = newHigh != 0
		r.StartedAt = time.UnixMilli(startedAt)
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// parseTime handles both time.Time and string datetime values.
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

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ progression.HighScoreStore = (*Store)(nil)
