// Package day14 solves "Parabolic Reflector Dish".
package day14

import (
	"bytes"

	"github.com/mesh-intelligence/aoc2023/internal/grid"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// Cycles is the number of spin cycles part 2 asks for.
const Cycles = 1_000_000_000

// ParsePlatform reads the dish: 'O' round rocks, '#' cube rocks, '.' empty.
func ParsePlatform(input string) (*grid.Grid, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, puzzle.Invalid("%v", err)
	}
	for r := 0; r < g.H; r++ {
		row := g.Row(r)
		if i := bytes.IndexFunc([]byte(row), func(c rune) bool {
			return c != 'O' && c != '#' && c != '.'
		}); i >= 0 {
			return nil, puzzle.Errorf(r, "unexpected %q at column %d", row[i], i+1)
		}
	}
	return g, nil
}

// cell maps position i along lane to a grid point, counting from the edge
// that d faces.
func cell(g *grid.Grid, d grid.Dir, lane, i int) grid.Point {
	switch d {
	case grid.Up:
		return grid.Point{R: i, C: lane}
	case grid.Down:
		return grid.Point{R: g.H - 1 - i, C: lane}
	case grid.Left:
		return grid.Point{R: lane, C: i}
	default:
		return grid.Point{R: lane, C: g.W - 1 - i}
	}
}

// Tilt rolls every round rock as far as it goes towards d.
func Tilt(g *grid.Grid, d grid.Dir) {
	lanes, length := g.W, g.H
	if d == grid.Left || d == grid.Right {
		lanes, length = g.H, g.W
	}
	for lane := 0; lane < lanes; lane++ {
		free := 0
		for i := 0; i < length; i++ {
			p := cell(g, d, lane, i)
			switch g.At(p) {
			case '#':
				free = i + 1
			case 'O':
				g.Set(p, '.')
				g.Set(cell(g, d, lane, free), 'O')
				free++
			}
		}
	}
}

// Spin tilts north, west, south, then east.
func Spin(g *grid.Grid) {
	for _, d := range []grid.Dir{grid.Up, grid.Left, grid.Down, grid.Right} {
		Tilt(g, d)
	}
}

// Load is the total load on the north support beams.
func Load(g *grid.Grid) int {
	total := 0
	for r := 0; r < g.H; r++ {
		total += (g.H - r) * bytes.Count([]byte(g.Row(r)), []byte{'O'})
	}
	return total
}

// Part1 tilts north once.
func Part1(input string) (int, error) {
	g, err := ParsePlatform(input)
	if err != nil {
		return 0, err
	}
	Tilt(g, grid.Up)
	return Load(g), nil
}

// Part2 runs the spin cycle Cycles times, skipping ahead once the platform
// repeats a state.
func Part2(input string) (int, error) {
	g, err := ParsePlatform(input)
	if err != nil {
		return 0, err
	}
	return LoadAfter(g, Cycles), nil
}

// LoadAfter spins g n times and returns the north load.
func LoadAfter(g *grid.Grid, n int) int {
	seen := map[string]int{}
	for i := 0; i < n; i++ {
		key := g.Key()
		if j, ok := seen[key]; ok {
			for rest := (n - i) % (i - j); rest > 0; rest-- {
				Spin(g)
			}
			return Load(g)
		}
		seen[key] = i
		Spin(g)
	}
	return Load(g)
}
