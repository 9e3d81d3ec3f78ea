// Package day25 solves "Snowverload". There is no second part.
package day25

import (
	"strings"

	"github.com/mesh-intelligence/aoc2023/internal/parse"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// CutSize is the number of wires to disconnect.
const CutSize = 3

// Graph is the undirected component wiring diagram.
type Graph struct {
	names []string
	adj   [][]int
}

// ParseGraph reads "jqt: rhn xhk nvd" lines.
func ParseGraph(input string) (*Graph, error) {
	g := &Graph{}
	index := map[string]int{}
	id := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		index[name] = len(g.names)
		g.names = append(g.names, name)
		g.adj = append(g.adj, nil)
		return len(g.names) - 1
	}
	for i, line := range parse.Lines(input) {
		from, to, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(from) == "" {
			return nil, puzzle.Errorf(i, "missing component name")
		}
		a := id(strings.TrimSpace(from))
		for _, name := range strings.Fields(to) {
			b := id(name)
			g.adj[a] = append(g.adj[a], b)
			g.adj[b] = append(g.adj[b], a)
		}
	}
	return g, nil
}

// Len is the number of components.
func (g *Graph) Len() int { return len(g.names) }

// flow finds up to limit edge-disjoint paths from s to t with unit
// capacities in both directions. It returns the number found and, when
// that is below limit, the size of the side of the cut holding s.
func (g *Graph) flow(s, t, limit int) (paths, side int) {
	used := map[[2]int]int{}
	residual := func(a, b int) int { return 1 - used[[2]int{a, b}] + used[[2]int{b, a}] }
	prev := make([]int, g.Len())
	for paths = 0; ; paths++ {
		for i := range prev {
			prev[i] = -1
		}
		prev[s] = s
		queue := []int{s}
		reached := 1
		for len(queue) > 0 && prev[t] < 0 {
			a := queue[0]
			queue = queue[1:]
			for _, b := range g.adj[a] {
				if prev[b] < 0 && residual(a, b) > 0 {
					prev[b] = a
					reached++
					queue = append(queue, b)
				}
			}
		}
		if prev[t] < 0 {
			return paths, reached
		}
		if paths == limit {
			return paths + 1, 0
		}
		for b := t; b != s; b = prev[b] {
			a := prev[b]
			if used[[2]int{b, a}] > 0 {
				used[[2]int{b, a}]--
			} else {
				used[[2]int{a, b}]++
			}
		}
	}
}

// Split finds the two groups left after cutting exactly CutSize wires and
// returns their sizes.
func (g *Graph) Split() (int, int, error) {
	if g.Len() < 2 {
		return 0, 0, puzzle.Invalid("need at least two components")
	}
	for t := 1; t < g.Len(); t++ {
		paths, side := g.flow(0, t, CutSize)
		if paths == CutSize {
			return side, g.Len() - side, nil
		}
	}
	return 0, 0, puzzle.Invalid("no %d-wire cut", CutSize)
}

// Part1 multiplies the sizes of the two groups.
func Part1(input string) (int, error) {
	g, err := ParseGraph(input)
	if err != nil {
		return 0, err
	}
	a, b, err := g.Split()
	if err != nil {
		return 0, err
	}
	return a * b, nil
}
