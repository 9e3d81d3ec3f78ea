package types

import "errors"

// Store records run results so that answers and timings can be compared
// across runs. Callers attach, record or query, and detach when done.
type Store interface {
	// Attach opens the store under cfg.DataDir, creating it if needed.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(cfg Config) error

	// Detach releases resources. Idempotent.
	// After Detach, operations return ErrStoreDetached.
	Detach() error

	// Record persists results in a single transaction.
	Record(results ...Result) error

	// History returns up to limit results for day, newest first.
	// A day of 0 returns results for every day.
	History(day, limit int) ([]Result, error)

	// Latest returns the most recent result of every (day, part) pair,
	// ordered by day then part.
	Latest() ([]Result, error)
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
