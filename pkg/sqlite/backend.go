// Package sqlite provides the public constructor for the SQLite run-history
// store while keeping implementation details internal.
package sqlite

import (
	"github.com/mesh-intelligence/aoc2023/internal/sqlite"
	"github.com/mesh-intelligence/aoc2023/pkg/types"
)

// NewStore creates a new SQLite history store.
// The store is not attached; call Attach with a Config to open it.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Attach(types.Config{
//	    InputDir: "inputs",
//	    DataDir:  ".aoc",
//	    Workers:  4,
//	})
//	defer store.Detach()
func NewStore() types.Store {
	return sqlite.NewStore()
}
