// Package puzzle describes a day's solution and provides the machinery to
// load its input, run and time its parts, benchmark them and check answers
// against known values.
package puzzle

import (
	"errors"
	"fmt"
	"slices"
)

// SolveFunc computes one part's answer from the raw puzzle input.
type SolveFunc func(input string) (int, error)

// Day is a registered puzzle. Part2 is nil when the day has a single part.
type Day struct {
	Number int
	Title  string
	Part1  SolveFunc
	Part2  SolveFunc
}

// Parts returns the part numbers the day implements.
func (d Day) Parts() []int {
	if d.Part2 == nil {
		return []int{1}
	}
	return []int{1, 2}
}

// Solver returns the solve function for part.
func (d Day) Solver(part int) (SolveFunc, error) {
	switch {
	case part == 1 && d.Part1 != nil:
		return d.Part1, nil
	case part == 2 && d.Part2 != nil:
		return d.Part2, nil
	}
	return nil, fmt.Errorf("day %d part %d: %w", d.Number, part, ErrUnknownPart)
}

// Lookup errors.
var (
	ErrUnknownDay  = errors.New("unknown day")
	ErrUnknownPart = errors.New("unknown part")
)

// Registry holds the days that have solutions, keyed by day number.
type Registry struct {
	days map[int]Day
}

// NewRegistry builds a registry from days. A later day with the same
// number replaces an earlier one.
func NewRegistry(days ...Day) *Registry {
	r := &Registry{days: make(map[int]Day, len(days))}
	for _, d := range days {
		r.days[d.Number] = d
	}
	return r
}

// Get returns day n, or ErrUnknownDay.
func (r *Registry) Get(n int) (Day, error) {
	d, ok := r.days[n]
	if !ok {
		return Day{}, fmt.Errorf("day %d: %w", n, ErrUnknownDay)
	}
	return d, nil
}

// All returns every registered day ordered by number.
func (r *Registry) All() []Day {
	out := make([]Day, 0, len(r.days))
	for _, d := range r.days {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b Day) int { return a.Number - b.Number })
	return out
}

// Len returns the number of registered days.
func (r *Registry) Len() int {
	return len(r.days)
}
