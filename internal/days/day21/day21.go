// Package day21 solves "Step Counter".
package day21

import (
	"github.com/mesh-intelligence/aoc2023/internal/grid"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// Step counts asked for by the two parts.
const (
	Steps         = 64
	InfiniteSteps = 26501365
)

// Garden is the map plus the starting plot.
type Garden struct {
	g     *grid.Grid
	start grid.Point
}

// ParseGarden reads the map; 'S' marks the start and is a garden plot.
func ParseGarden(input string) (*Garden, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, puzzle.Invalid("%v", err)
	}
	s, ok := g.Find('S')
	if !ok {
		return nil, puzzle.Invalid("no start")
	}
	g.Set(s, '.')
	return &Garden{g: g, start: s}, nil
}

func (gd *Garden) open(p grid.Point, infinite bool) bool {
	if infinite {
		p = grid.Point{R: mod(p.R, gd.g.H), C: mod(p.C, gd.g.W)}
	} else if !gd.g.In(p) {
		return false
	}
	return gd.g.At(p) != '#'
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

// Reach counts the plots the elf can stand on after exactly steps steps.
// A plot reached in d steps is also reachable in d+2, d+4, ... so it counts
// when d has the same parity as steps. With infinite set the map repeats
// in every direction.
func (gd *Garden) Reach(steps int, infinite bool) int {
	dist := map[grid.Point]int{gd.start: 0}
	frontier := []grid.Point{gd.start}
	count := 0
	if steps%2 == 0 {
		count++
	}
	for d := 1; d <= steps && len(frontier) > 0; d++ {
		var next []grid.Point
		for _, p := range frontier {
			for _, dir := range grid.Dirs {
				q := p.Add(dir.Delta())
				if _, seen := dist[q]; seen || !gd.open(q, infinite) {
					continue
				}
				dist[q] = d
				next = append(next, q)
			}
		}
		if d%2 == steps%2 {
			count += len(next)
		}
		frontier = next
	}
	return count
}

// Extrapolate evaluates at x the quadratic through (0, f0), (1, f1), (2, f2).
func Extrapolate(f0, f1, f2, x int) int {
	return f0 + x*(f1-f0) + x*(x-1)/2*(f2-2*f1+f0)
}

// Part1 counts plots reachable in exactly 64 steps.
func Part1(input string) (int, error) {
	gd, err := ParseGarden(input)
	if err != nil {
		return 0, err
	}
	return gd.Reach(Steps, false), nil
}

// Part2 counts plots on the infinite map after 26501365 steps. The map is
// square with the start in the centre and clear lines through it, so the
// count grows quadratically in whole tiles walked; three samples fix it.
func Part2(input string) (int, error) {
	gd, err := ParseGarden(input)
	if err != nil {
		return 0, err
	}
	return gd.ReachFar(InfiniteSteps)
}

// ReachFar extrapolates Reach on the infinite map for large step counts.
func (gd *Garden) ReachFar(steps int) (int, error) {
	size := gd.g.W
	if gd.g.H != size || gd.start != (grid.Point{R: size / 2, C: size / 2}) {
		return 0, puzzle.Invalid("map must be square with the start in the centre")
	}
	rem := steps % size
	var f [3]int
	for i := range f {
		f[i] = gd.Reach(rem+i*size, true)
	}
	return Extrapolate(f[0], f[1], f[2], steps/size), nil
}
