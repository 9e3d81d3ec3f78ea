// Package day17 solves "Clumsy Crucible".
package day17

import (
	"container/heap"

	"github.com/mesh-intelligence/aoc2023/internal/grid"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// City is the map of per-block heat loss.
type City struct {
	H, W int
	loss []int
}

// ParseCity reads a grid of digits.
func ParseCity(input string) (*City, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, puzzle.Invalid("%v", err)
	}
	if g.H == 0 {
		return nil, puzzle.Invalid("empty map")
	}
	c := &City{H: g.H, W: g.W, loss: make([]int, 0, g.H*g.W)}
	for r := 0; r < g.H; r++ {
		for i, b := range []byte(g.Row(r)) {
			if b < '1' || b > '9' {
				return nil, puzzle.Errorf(r, "bad heat loss %q at column %d", b, i+1)
			}
			c.loss = append(c.loss, int(b-'0'))
		}
	}
	return c, nil
}

// state is a block plus the axis the crucible arrived on: 0 vertical,
// 1 horizontal. Each move turns onto the other axis.
type state struct {
	p    grid.Point
	axis int
}

type item struct {
	state
	cost int
}

type queue []item

func (q queue) Len() int           { return len(q) }
func (q queue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)        { *q = append(*q, x.(item)) }
func (q *queue) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]
	return it
}

var axisDirs = [2][2]grid.Dir{{grid.Up, grid.Down}, {grid.Left, grid.Right}}

// MinLoss is the least heat loss from the top-left to the bottom-right
// block when the crucible must move between lo and hi blocks before
// turning.
func (c *City) MinLoss(lo, hi int) (int, bool) {
	goal := grid.Point{R: c.H - 1, C: c.W - 1}
	best := map[state]int{}
	q := &queue{}
	for axis := 0; axis < 2; axis++ {
		s := state{axis: axis}
		best[s] = 0
		heap.Push(q, item{s, 0})
	}
	for q.Len() > 0 {
		it := heap.Pop(q).(item)
		if it.cost > best[it.state] {
			continue
		}
		if it.p == goal {
			return it.cost, true
		}
		next := 1 - it.axis
		for _, d := range axisDirs[next] {
			cost := it.cost
			for n := 1; n <= hi; n++ {
				p := it.p.Step(d, n)
				if p.R < 0 || p.R >= c.H || p.C < 0 || p.C >= c.W {
					break
				}
				cost += c.loss[p.R*c.W+p.C]
				if n < lo {
					continue
				}
				s := state{p, next}
				if old, ok := best[s]; ok && old <= cost {
					continue
				}
				best[s] = cost
				heap.Push(q, item{s, cost})
			}
		}
	}
	return 0, false
}

func solve(input string, lo, hi int) (int, error) {
	c, err := ParseCity(input)
	if err != nil {
		return 0, err
	}
	loss, ok := c.MinLoss(lo, hi)
	if !ok {
		return 0, puzzle.Invalid("no route to the factory")
	}
	return loss, nil
}

// Part1 uses a crucible that moves at most three blocks in a line.
func Part1(input string) (int, error) { return solve(input, 1, 3) }

// Part2 uses an ultra crucible: four to ten blocks before turning.
func Part2(input string) (int, error) { return solve(input, 4, 10) }
