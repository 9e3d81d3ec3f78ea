// Package day11 solves "Cosmic Expansion".
package day11

import (
	"slices"

	"github.com/mesh-intelligence/aoc2023/internal/grid"
	"github.com/mesh-intelligence/aoc2023/internal/parse"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// Galaxies returns the position of every '#', in reading order.
func Galaxies(input string) ([]grid.Point, error) {
	var out []grid.Point
	for r, line := range parse.Lines(input) {
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case '#':
				out = append(out, grid.Point{R: r, C: c})
			case '.':
			default:
				return nil, puzzle.Errorf(r, "unexpected %q", line[c])
			}
		}
	}
	return out, nil
}

// Expand replaces every empty row and column with factor empty ones.
func Expand(gs []grid.Point, factor int) []grid.Point {
	rows := expansion(gs, factor, func(p grid.Point) int { return p.R })
	cols := expansion(gs, factor, func(p grid.Point) int { return p.C })
	out := make([]grid.Point, len(gs))
	for i, g := range gs {
		out[i] = grid.Point{R: rows[g.R], C: cols[g.C]}
	}
	return out
}

// expansion maps each occupied coordinate to its position after expanding.
func expansion(gs []grid.Point, factor int, coord func(grid.Point) int) map[int]int {
	used := make([]int, 0, len(gs))
	for _, g := range gs {
		used = append(used, coord(g))
	}
	slices.Sort(used)
	used = slices.Compact(used)

	out := make(map[int]int, len(used))
	for i, v := range used {
		// v-i empty lines precede v.
		out[v] = v + (v-i)*(factor-1)
	}
	return out
}

// SumDistances is the sum of Manhattan distances between every pair of
// galaxies once the universe has expanded by factor.
func SumDistances(input string, factor int) (int, error) {
	gs, err := Galaxies(input)
	if err != nil {
		return 0, err
	}
	gs = Expand(gs, factor)
	// Sum each axis separately: after sorting, the k-th value contributes
	// k*v - (sum of the k values before it).
	total := 0
	for _, coord := range []func(grid.Point) int{
		func(p grid.Point) int { return p.R },
		func(p grid.Point) int { return p.C },
	} {
		vs := make([]int, len(gs))
		for i, g := range gs {
			vs[i] = coord(g)
		}
		slices.Sort(vs)
		prefix := 0
		for k, v := range vs {
			total += k*v - prefix
			prefix += v
		}
	}
	return total, nil
}

// Part1 doubles every empty row and column.
func Part1(input string) (int, error) { return SumDistances(input, 2) }

// Part2 makes every empty row and column a million times larger.
func Part2(input string) (int, error) { return SumDistances(input, 1_000_000) }
