// Package day23 solves "A Long Walk".
package day23

import (
	"github.com/mesh-intelligence/aoc2023/internal/grid"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

var slopes = map[byte]grid.Dir{'^': grid.Up, '>': grid.Right, 'v': grid.Down, '<': grid.Left}

// Trail is the hiking map compressed to its junctions: the start, the end
// and every tile with three or more open neighbours. Edges carry the
// corridor length between two junctions.
type Trail struct {
	nodes []grid.Point
	edges [][]hop
	start int
	end   int
}

type hop struct {
	to   int
	dist int
}

func open(g *grid.Grid, p grid.Point) bool {
	c, ok := g.Get(p)
	return ok && c != '#'
}

// canMove reports whether a hiker may step from p towards d. On icy
// slopes the hiker can only leave or enter a slope tile downhill.
func canMove(g *grid.Grid, p grid.Point, d grid.Dir, icy bool) bool {
	q := p.Add(d.Delta())
	if !open(g, q) {
		return false
	}
	if !icy {
		return true
	}
	if s, ok := slopes[g.At(p)]; ok && s != d {
		return false
	}
	if s, ok := slopes[g.At(q)]; ok && s != d {
		return false
	}
	return true
}

// BuildTrail finds the junctions of g and the corridors between them.
func BuildTrail(g *grid.Grid, icy bool) (*Trail, error) {
	if g.H < 2 {
		return nil, puzzle.Invalid("map too small")
	}
	t := &Trail{}
	index := map[grid.Point]int{}
	add := func(p grid.Point) int {
		index[p] = len(t.nodes)
		t.nodes = append(t.nodes, p)
		return index[p]
	}
	start, end := -1, -1
	for c := 0; c < g.W; c++ {
		if p := (grid.Point{R: 0, C: c}); open(g, p) && start < 0 {
			start = add(p)
		}
		if p := (grid.Point{R: g.H - 1, C: c}); open(g, p) && end < 0 {
			end = add(p)
		}
	}
	if start < 0 || end < 0 {
		return nil, puzzle.Invalid("no gap in the top or bottom row")
	}
	t.start, t.end = start, end
	for r := 1; r < g.H-1; r++ {
		for c := 0; c < g.W; c++ {
			p := grid.Point{R: r, C: c}
			if !open(g, p) {
				continue
			}
			n := 0
			g.Neighbors4(p, func(q grid.Point) {
				if open(g, q) {
					n++
				}
			})
			if n >= 3 {
				add(p)
			}
		}
	}
	t.edges = make([][]hop, len(t.nodes))
	for from, p := range t.nodes {
		for _, d := range grid.Dirs {
			if !canMove(g, p, d, icy) {
				continue
			}
			if to, dist, ok := follow(g, index, p, d, icy); ok {
				t.edges[from] = append(t.edges[from], hop{to, dist})
			}
		}
	}
	return t, nil
}

// follow walks the corridor leaving p in direction d until it reaches a
// junction. It fails on dead ends and uphill slopes.
func follow(g *grid.Grid, index map[grid.Point]int, p grid.Point, d grid.Dir, icy bool) (int, int, bool) {
	dist := 1
	cur := p.Add(d.Delta())
	for {
		if to, ok := index[cur]; ok {
			return to, dist, true
		}
		moved := false
		for _, nd := range grid.Dirs {
			if nd == d.Reverse() || !canMove(g, cur, nd, icy) {
				continue
			}
			cur, d, moved = cur.Add(nd.Delta()), nd, true
			break
		}
		if !moved {
			return 0, 0, false
		}
		dist++
	}
}

// Longest is the length of the longest path from start to end that never
// visits a junction twice, or -1 when there is none.
func (t *Trail) Longest() (int, error) {
	if len(t.nodes) > 64 {
		return 0, puzzle.Invalid("%d junctions is more than the search supports", len(t.nodes))
	}
	var dfs func(at int, seen uint64) int
	dfs = func(at int, seen uint64) int {
		if at == t.end {
			return 0
		}
		best := -1
		for _, h := range t.edges[at] {
			if seen&(1<<h.to) != 0 {
				continue
			}
			if rest := dfs(h.to, seen|1<<h.to); rest >= 0 {
				best = max(best, rest+h.dist)
			}
		}
		return best
	}
	return dfs(t.start, 1<<t.start), nil
}

func solve(input string, icy bool) (int, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return 0, puzzle.Invalid("%v", err)
	}
	t, err := BuildTrail(g, icy)
	if err != nil {
		return 0, err
	}
	n, err := t.Longest()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, puzzle.Invalid("no path to the end")
	}
	return n, nil
}

// Part1 respects the icy slopes.
func Part1(input string) (int, error) { return solve(input, true) }

// Part2 treats slopes as ordinary paths.
func Part2(input string) (int, error) { return solve(input, false) }
