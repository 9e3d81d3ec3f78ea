// Package daytest holds benchmark helpers shared by the day packages.
package daytest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/aoc2023/internal/paths"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// FindProjectRoot walks up from the working directory to the directory
// holding go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found")
		}
		dir = parent
	}
}

// InputDir returns AOC_INPUT_DIR if set, else <project root>/inputs.
func InputDir() (string, error) {
	if dir := os.Getenv(paths.EnvInputDir); dir != "" {
		return dir, nil
	}
	root, err := FindProjectRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, paths.DefaultInputDirName), nil
}

// Input loads the real input for day, skipping the benchmark when it is
// not available. Puzzle inputs are personal and not checked in.
func Input(tb testing.TB, day int) string {
	tb.Helper()
	dir, err := InputDir()
	if err != nil {
		tb.Skipf("no input dir: %v", err)
	}
	input, err := puzzle.LoadInput(dir, day)
	if err != nil {
		tb.Skipf("no input for day %d: %v", day, err)
	}
	return input
}

// Bench benchmarks solve against day's real input.
func Bench(b *testing.B, day int, solve puzzle.SolveFunc) {
	input := Input(b, day)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solve(input); err != nil {
			b.Fatal(err)
		}
	}
}
