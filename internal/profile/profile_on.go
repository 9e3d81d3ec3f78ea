//go:build heapprofile

package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
)

// Enabled reports whether heap profiling is compiled in.
const Enabled = true

// Start samples every allocation until the returned stop func runs, which
// writes FileName into dir and returns the allocation totals.
func Start(dir string) (func() (Stats, error), error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating profile dir: %w", err)
	}
	prev := runtime.MemProfileRate
	runtime.MemProfileRate = 1
	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	stop := func() (Stats, error) {
		defer func() { runtime.MemProfileRate = prev }()
		runtime.GC()
		var after runtime.MemStats
		runtime.ReadMemStats(&after)
		stats := Stats{
			TotalAlloc: after.TotalAlloc - before.TotalAlloc,
			Mallocs:    after.Mallocs - before.Mallocs,
			HeapInUse:  after.HeapInuse,
		}
		f, err := os.Create(filepath.Join(dir, FileName))
		if err != nil {
			return stats, fmt.Errorf("creating heap profile: %w", err)
		}
		defer f.Close()
		if err := pprof.Lookup("allocs").WriteTo(f, 0); err != nil {
			return stats, fmt.Errorf("writing heap profile: %w", err)
		}
		return stats, nil
	}
	return stop, nil
}
