package history

import (
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/lotto-forge/internal/draw"
	"github.com/danielpatrickdp/lotto-forge/internal/filter"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS draw_history (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT NOT NULL,
	numbers     TEXT NOT NULL,
	score       REAL NOT NULL,
	total       INTEGER NOT NULL,
	ac          INTEGER NOT NULL,
	odd_even    TEXT NOT NULL,
	low_high    TEXT NOT NULL,
	created_at  TEXT NOT NULL
);
`
// #endregion schema

// #region types
// DefaultCap is how many records the history keeps before evicting the oldest.
const DefaultCap = 5

// Record is one accepted result with its display metrics and timestamp.
type Record struct {
	RunID       string
	Combination draw.Combination
	Score       float64
	Metrics     filter.Metrics
	CreatedAt   time.Time
}
// #endregion types

// #region store
// Store keeps a bounded, most-recent-first draw history in SQLite.
type Store struct {
	db  *sql.DB
	cap int
}

// NewStore opens the database at path and runs migrations.
func NewStore(path string) (*Store, error) {
	return NewStoreWithCap(path, DefaultCap)
}

// NewStoreWithCap opens a store with a custom capacity. Used by tests.
func NewStoreWithCap(path string, capacity int) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db, cap: capacity}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion store

// #region append
// Append inserts a record and evicts the oldest rows beyond capacity, in one
// transaction.
func (s *Store) Append(rec Record) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO draw_history (run_id, numbers, score, total, ac, odd_even, low_high, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, encodeNumbers(rec.Combination), rec.Score,
		rec.Metrics.Sum, rec.Metrics.AC, rec.Metrics.OddEven, rec.Metrics.LowHigh,
		rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}

	_, err = tx.Exec(
		`DELETE FROM draw_history
		 WHERE id NOT IN (SELECT id FROM draw_history ORDER BY id DESC LIMIT ?)`,
		s.cap,
	)
	if err != nil {
		return fmt.Errorf("evict: %w", err)
	}

	return tx.Commit()
}
// #endregion append

// #region load
// Load returns the stored records, most recent first. Malformed rows are
// skipped: corruption degrades to a shorter (possibly empty) history, never a
// fatal error.
func (s *Store) Load() ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT run_id, numbers, score, total, ac, odd_even, low_high, created_at
		 FROM draw_history ORDER BY id DESC LIMIT ?`, s.cap,
	)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var numbers, createdStr string
		if err := rows.Scan(
			&rec.RunID, &numbers, &rec.Score,
			&rec.Metrics.Sum, &rec.Metrics.AC, &rec.Metrics.OddEven, &rec.Metrics.LowHigh,
			&createdStr,
		); err != nil {
			log.Printf("[HISTORY] skipping unreadable row: %v", err)
			continue
		}
		c, err := decodeNumbers(numbers)
		if err != nil {
			log.Printf("[HISTORY] skipping malformed row: %v", err)
			continue
		}
		rec.Combination = c
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}
// #endregion load

// #region encoding
func encodeNumbers(c draw.Combination) string {
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func decodeNumbers(s string) (draw.Combination, error) {
	parts := strings.Split(s, ",")
	if len(parts) != draw.DrawSize {
		return nil, fmt.Errorf("expected %d numbers, got %d", draw.DrawSize, len(parts))
	}
	c := make(draw.Combination, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", p, err)
		}
		if n < draw.MinBall || n > draw.MaxBall {
			return nil, fmt.Errorf("number %d out of range", n)
		}
		c = append(c, n)
	}
	return c, nil
}
// #endregion encoding
