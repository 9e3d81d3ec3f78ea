//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets (all, unit, bench, profile).
type Test mg.Namespace

// All runs all tests.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Unit runs the tests in short mode, skipping the slow CLI benchmark.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "-short", "./...")
}

// Bench runs the per-day Go benchmarks against the sample inputs.
//
//	mage test:bench [--day N] [--count C]
func (Test) Bench() error {
	fs := flag.NewFlagSet("test:bench", flag.ContinueOnError)
	day := fs.Int("day", 0, "benchmark only this day")
	count := fs.Int("count", 1, "benchmark repetitions")
	parseTargetFlags(fs)

	pkg := "./internal/days/..."
	if *day > 0 {
		pkg = dayPackage(*day)
	}
	return sh.RunV(binGo, "test", "-run", "^$", "-bench", ".", "-benchmem",
		"-count", fmt.Sprint(*count), pkg)
}

// Profile runs days from the puzzle inputs with heap profiling compiled in
// and writes heap.pprof under bin/profile.
//
//	mage test:profile [--day N]
func (Test) Profile() error {
	fs := flag.NewFlagSet("test:profile", flag.ContinueOnError)
	day := fs.Int("day", 0, "profile only this day")
	parseTargetFlags(fs)

	dir := filepath.Join(binaryDir, "profile")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	args := []string{"run", "-tags", "heapprofile", cmdDir, "run", "--profile-dir", dir}
	if *day > 0 {
		args = append(args, fmt.Sprint(*day))
	}
	if err := sh.RunV(binGo, args...); err != nil {
		return err
	}
	fmt.Printf("inspect with: go tool pprof -sample_index=alloc_space %s\n", filepath.Join(dir, "heap.pprof"))
	return nil
}

func dayPackage(day int) string {
	return fmt.Sprintf("./internal/days/day%02d", day)
}
