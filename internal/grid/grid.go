// Package grid provides the character grid, point and direction types used
// by the map-walking puzzles.
package grid

import (
	"errors"
	"strings"

	"github.com/mesh-intelligence/aoc2023/internal/parse"
)

// ErrRagged is returned when grid rows differ in length.
var ErrRagged = errors.New("grid rows have different lengths")

// Point is a row/column position. Row grows downwards.
type Point struct {
	R, C int
}

// Add returns p moved by q.
func (p Point) Add(q Point) Point {
	return Point{p.R + q.R, p.C + q.C}
}

// Step returns p moved n cells in direction d.
func (p Point) Step(d Dir, n int) Point {
	dp := d.Delta()
	return Point{p.R + dp.R*n, p.C + dp.C*n}
}

// Dir is one of the four compass directions.
type Dir uint8

// Directions in clockwise order.
const (
	Up Dir = iota
	Right
	Down
	Left
)

// Dirs lists the four directions in clockwise order.
var Dirs = [4]Dir{Up, Right, Down, Left}

var deltas = [4]Point{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Delta is the unit offset for d.
func (d Dir) Delta() Point { return deltas[d&3] }

// TurnRight rotates d clockwise.
func (d Dir) TurnRight() Dir { return (d + 1) & 3 }

// TurnLeft rotates d counter-clockwise.
func (d Dir) TurnLeft() Dir { return (d + 3) & 3 }

// Reverse points the other way.
func (d Dir) Reverse() Dir { return (d + 2) & 3 }

func (d Dir) String() string {
	return [4]string{"U", "R", "D", "L"}[d&3]
}

// Grid is a rectangular byte grid. Cells are addressed by Point.
type Grid struct {
	H, W  int
	cells []byte
}

// New returns an h×w grid filled with fill.
func New(h, w int, fill byte) *Grid {
	cells := make([]byte, h*w)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid{H: h, W: w, cells: cells}
}

// Parse builds a grid from the lines of input.
func Parse(input string) (*Grid, error) {
	return FromLines(parse.Lines(input))
}

// FromLines builds a grid from equal-length rows.
func FromLines(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return &Grid{}, nil
	}
	w := len(lines[0])
	g := &Grid{H: len(lines), W: w, cells: make([]byte, 0, len(lines)*w)}
	for _, line := range lines {
		if len(line) != w {
			return nil, ErrRagged
		}
		g.cells = append(g.cells, line...)
	}
	return g, nil
}

// In reports whether p lies inside the grid.
func (g *Grid) In(p Point) bool {
	return p.R >= 0 && p.R < g.H && p.C >= 0 && p.C < g.W
}

// At returns the cell at p. p must be inside the grid.
func (g *Grid) At(p Point) byte {
	return g.cells[p.R*g.W+p.C]
}

// Get returns the cell at p and whether p is inside the grid.
func (g *Grid) Get(p Point) (byte, bool) {
	if !g.In(p) {
		return 0, false
	}
	return g.At(p), true
}

// Set stores b at p. p must be inside the grid.
func (g *Grid) Set(p Point, b byte) {
	g.cells[p.R*g.W+p.C] = b
}

// Find returns the first point holding b in row-major order.
func (g *Grid) Find(b byte) (Point, bool) {
	for i, c := range g.cells {
		if c == b {
			return Point{i / g.W, i % g.W}, true
		}
	}
	return Point{}, false
}

// Row returns row r as a string.
func (g *Grid) Row(r int) string {
	return string(g.cells[r*g.W : (r+1)*g.W])
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{H: g.H, W: g.W, cells: make([]byte, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Key returns the grid contents as a string, usable as a map key.
func (g *Grid) Key() string {
	return string(g.cells)
}

// Neighbors4 calls fn for every in-bounds orthogonal neighbour of p.
func (g *Grid) Neighbors4(p Point, fn func(Point)) {
	for _, d := range deltas {
		if q := p.Add(d); g.In(q) {
			fn(q)
		}
	}
}

// Neighbors8 calls fn for every in-bounds neighbour of p, diagonals included.
func (g *Grid) Neighbors8(p Point, fn func(Point)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if q := (Point{p.R + dr, p.C + dc}); g.In(q) {
				fn(q)
			}
		}
	}
}

func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.H; r++ {
		b.WriteString(g.Row(r))
		b.WriteByte('\n')
	}
	return b.String()
}
