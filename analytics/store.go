package analytics

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite database holding page-view records.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the analytics database at path, ensures
// the data directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	// WAL for concurrent read/write, busy timeout so writers wait
	// instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS visits (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL,
    ip_hash TEXT NOT NULL,
    day TEXT NOT NULL,
    timestamp DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_visits_day ON visits(day);
CREATE INDEX IF NOT EXISTS idx_visits_path ON visits(path);

CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`)
	return err
}

// GetSetting retrieves a setting value by key. Returns an empty string
// if the key does not exist.
func (s *Store) GetSetting(key string) (string, error) {
	var val string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&val)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return val, err
}

// SetSetting stores a setting value by key (upsert).
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	return err
}

// RecordVisit stores one page view. now determines both the timestamp
// and the day bucket.
func (s *Store) RecordVisit(path, ipHash string, now time.Time) error {
	_, err := s.db.Exec(`INSERT INTO visits (path, ip_hash, day, timestamp) VALUES (?, ?, ?, ?)`,
		path, ipHash, now.Format("2006-01-02"), now.UTC())
	return err
}

// Summarize aggregates the dashboard numbers: overall and same-day
// totals, the most-viewed paths, and a per-day trail over the last
// `days` calendar days.
func (s *Store) Summarize(now time.Time, topLimit, days int) (Summary, error) {
	var sum Summary
	today := now.Format("2006-01-02")
	since := now.AddDate(0, 0, -days).Format("2006-01-02")

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM visits`).Scan(&sum.Total); err != nil {
		return Summary{}, err
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM visits WHERE day = ?`, today).Scan(&sum.Today); err != nil {
		return Summary{}, err
	}

	rows, err := s.db.Query(`SELECT path, COUNT(*) AS n FROM visits GROUP BY path ORDER BY n DESC, path LIMIT ?`, topLimit)
	if err != nil {
		return Summary{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Count); err != nil {
			return Summary{}, err
		}
		sum.TopPaths = append(sum.TopPaths, pc)
	}
	if err := rows.Err(); err != nil {
		return Summary{}, err
	}

	dayRows, err := s.db.Query(`SELECT day, COUNT(*) FROM visits WHERE day > ? GROUP BY day ORDER BY day DESC`, since)
	if err != nil {
		return Summary{}, err
	}
	defer dayRows.Close()
	for dayRows.Next() {
		var dc DayCount
		if err := dayRows.Scan(&dc.Day, &dc.Count); err != nil {
			return Summary{}, err
		}
		sum.Days = append(sum.Days, dc)
	}
	return sum, dayRows.Err()
}
