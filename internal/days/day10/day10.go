// Package day10 solves "Pipe Maze".
package day10

import (
	"github.com/mesh-intelligence/aoc2023/internal/grid"
	"github.com/mesh-intelligence/aoc2023/internal/numeric"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// connects lists the two openings of each pipe tile.
var connects = map[byte][2]grid.Dir{
	'|': {grid.Up, grid.Down},
	'-': {grid.Left, grid.Right},
	'L': {grid.Up, grid.Right},
	'J': {grid.Up, grid.Left},
	'7': {grid.Down, grid.Left},
	'F': {grid.Down, grid.Right},
}

func opens(tile byte, d grid.Dir) bool {
	c, ok := connects[tile]
	return ok && (c[0] == d || c[1] == d)
}

// Loop returns the tiles of the main loop in walking order, starting at S.
func Loop(g *grid.Grid) ([]grid.Point, error) {
	start, ok := g.Find('S')
	if !ok {
		return nil, puzzle.Invalid("no start tile")
	}
	for _, d := range grid.Dirs {
		if path, ok := walk(g, start, d); ok {
			return path, nil
		}
	}
	return nil, puzzle.Invalid("start is not on a loop")
}

// walk follows pipes leaving start in direction d and reports whether it
// arrives back at start.
func walk(g *grid.Grid, start grid.Point, d grid.Dir) ([]grid.Point, bool) {
	path := []grid.Point{start}
	p := start
	for {
		p = p.Add(d.Delta())
		tile, ok := g.Get(p)
		if !ok {
			return nil, false
		}
		if tile == 'S' {
			return path, true
		}
		if !opens(tile, d.Reverse()) {
			return nil, false
		}
		path = append(path, p)
		c := connects[tile]
		if c[0] == d.Reverse() {
			d = c[1]
		} else {
			d = c[0]
		}
		if len(path) > g.H*g.W {
			return nil, false
		}
	}
}

// Part1 is the distance to the loop tile farthest from S.
func Part1(input string) (int, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return 0, err
	}
	loop, err := Loop(g)
	if err != nil {
		return 0, err
	}
	return len(loop) / 2, nil
}

// Part2 counts tiles enclosed by the loop, using the shoelace area and
// Pick's theorem: interior = area - boundary/2 + 1.
func Part2(input string) (int, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return 0, err
	}
	loop, err := Loop(g)
	if err != nil {
		return 0, err
	}
	area2 := 0
	for i, p := range loop {
		q := loop[(i+1)%len(loop)]
		area2 += p.C*q.R - q.C*p.R
	}
	area := numeric.Abs(area2) / 2
	return area - len(loop)/2 + 1, nil
}
