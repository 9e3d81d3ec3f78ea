// Package day16 solves "The Floor Will Be Lava".
package day16

import (
	"github.com/mesh-intelligence/aoc2023/internal/grid"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

type beam struct {
	at  grid.Point
	dir grid.Dir
}

// bounce returns the directions a beam travelling d leaves tile c in.
func bounce(c byte, d grid.Dir) []grid.Dir {
	switch c {
	case '/':
		return []grid.Dir{[4]grid.Dir{grid.Right, grid.Up, grid.Left, grid.Down}[d]}
	case '\\':
		return []grid.Dir{[4]grid.Dir{grid.Left, grid.Down, grid.Right, grid.Up}[d]}
	case '|':
		if d == grid.Left || d == grid.Right {
			return []grid.Dir{grid.Up, grid.Down}
		}
	case '-':
		if d == grid.Up || d == grid.Down {
			return []grid.Dir{grid.Left, grid.Right}
		}
	}
	return []grid.Dir{d}
}

// Energized counts the tiles a beam entering at p heading d passes through.
func Energized(g *grid.Grid, p grid.Point, d grid.Dir) int {
	seen := make([]uint8, g.H*g.W)
	count := 0
	stack := []beam{{p, d}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !g.In(b.at) {
			continue
		}
		i := b.at.R*g.W + b.at.C
		if seen[i]&(1<<b.dir) != 0 {
			continue
		}
		if seen[i] == 0 {
			count++
		}
		seen[i] |= 1 << b.dir
		for _, nd := range bounce(g.At(b.at), b.dir) {
			stack = append(stack, beam{b.at.Add(nd.Delta()), nd})
		}
	}
	return count
}

func parseContraption(input string) (*grid.Grid, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, puzzle.Invalid("%v", err)
	}
	if g.H == 0 {
		return nil, puzzle.Invalid("empty contraption")
	}
	return g, nil
}

// Part1 starts the beam in the top-left corner heading right.
func Part1(input string) (int, error) {
	g, err := parseContraption(input)
	if err != nil {
		return 0, err
	}
	return Energized(g, grid.Point{}, grid.Right), nil
}

// Part2 tries every edge tile, heading inwards.
func Part2(input string) (int, error) {
	g, err := parseContraption(input)
	if err != nil {
		return 0, err
	}
	best := 0
	try := func(p grid.Point, d grid.Dir) {
		best = max(best, Energized(g, p, d))
	}
	for r := 0; r < g.H; r++ {
		try(grid.Point{R: r, C: 0}, grid.Right)
		try(grid.Point{R: r, C: g.W - 1}, grid.Left)
	}
	for c := 0; c < g.W; c++ {
		try(grid.Point{R: 0, C: c}, grid.Down)
		try(grid.Point{R: g.H - 1, C: c}, grid.Up)
	}
	return best, nil
}
