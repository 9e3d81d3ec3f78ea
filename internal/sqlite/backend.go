// Package sqlite keeps the run history in a SQLite database so answers and
// timings can be compared across runs.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/aoc2023/pkg/types"
)

// DBFileName is the database file created under Config.DataDir.
const DBFileName = "history.db"

// Store implements types.Store on SQLite.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

var _ types.Store = (*Store)(nil)

// NewStore creates a new, detached store. Call Attach before use.
func NewStore() *Store {
	return &Store{}
}

// Attach opens (or creates) the history database in config.DataDir.
// Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	// SQLite has a single writer.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.attached = true
	return nil
}

// Detach closes the database. Detach is idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	s.db = nil
	s.attached = false
	return nil
}

// Record inserts results in one transaction. Results without a RunID get a
// fresh one.
func (s *Store) Record(results ...types.Result) error {
	_, err := s.insert(insertRun, results)
	return err
}

func (s *Store) insert(query string, results []types.Result) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return 0, types.ErrStoreDetached
	}
	ctx := context.Background()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, r := range results {
		if r.RunID == "" {
			r.RunID = generateUUID()
		}
		j := toRunJSON(r)
		res, err := stmt.ExecContext(ctx, j.RunID, j.Day, j.Part, j.Answer, j.Error, j.DurationNS, j.StartedAt)
		if err != nil {
			return 0, fmt.Errorf("insert run %s: %w", j.RunID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			added += int(n)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return added, nil
}

// History returns up to limit results for day, newest first. A day of 0
// means every day; a limit of 0 or less means no limit.
func (s *Store) History(day, limit int) ([]types.Result, error) {
	if limit <= 0 {
		limit = -1
	}
	return s.query(selectHistory, day, limit)
}

// Latest returns the newest result for every (day, part) pair.
func (s *Store) Latest() ([]types.Result, error) {
	return s.query(selectLatest)
}

func (s *Store) query(q string, args ...any) ([]types.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []types.Result
	for rows.Next() {
		var j runJSON
		if err := rows.Scan(&j.RunID, &j.Day, &j.Part, &j.Answer, &j.Error, &j.DurationNS, &j.StartedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r, err := j.result()
		if err != nil {
			return nil, fmt.Errorf("run %s: bad started_at: %w", j.RunID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// generateUUID generates a new UUID v7 for run IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
