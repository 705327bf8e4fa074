/*
Package sqlite provides the SQLite-backed calculation-history store.

PURPOSE:
  Every calculation served by the API is recorded here — which calculator
  ran, the request, the result, and when — giving the platform an audit
  trail and the dashboard a "recent calculations" feed.

APPEND-ONLY ENFORCEMENT:
  The store is append-only: no UPDATE or DELETE statements. A calculation
  record is a historical fact, never corrected in place.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

BEST-EFFORT CONTRACT:
  Recording history must never fail a calculation. Callers log and ignore
  Save errors (see api.Handler.record).

USAGE:
  store, err := sqlite.New("./data/fiscal.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists calculation history in SQLite.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// CalculationRecord is one stored calculation.
type CalculationRecord struct {
	ID         int64
	Calculator string // "escritura", "honorarios", ...
	Request    string // request JSON as received
	Result     string // result JSON as returned
	CreatedAt  time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS calculations (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	calculator  TEXT NOT NULL,
	request     TEXT NOT NULL,
	result      TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_calculations_created ON calculations(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_calculations_calculator ON calculations(calculator);
`

// New opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for an in-memory database.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveCalculation appends one calculation record.
func (s *Store) SaveCalculation(ctx context.Context, calculator, requestJSON, resultJSON string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO calculations (calculator, request, result, created_at) VALUES (?, ?, ?, ?)`,
		calculator, requestJSON, resultJSON, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save calculation: %w", err)
	}
	return nil
}

// ListCalculations returns the most recent records, newest first.
func (s *Store) ListCalculations(ctx context.Context, limit int) ([]CalculationRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, calculator, request, result, created_at
		 FROM calculations ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	defer rows.Close()

	var records []CalculationRecord
	for rows.Next() {
		var r CalculationRecord
		if err := rows.Scan(&r.ID, &r.Calculator, &r.Request, &r.Result, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
