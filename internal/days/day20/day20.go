// Package day20 solves "Pulse Propagation".
package day20

import (
	"strings"

	"github.com/mesh-intelligence/aoc2023/internal/numeric"
	"github.com/mesh-intelligence/aoc2023/internal/parse"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

const (
	broadcaster = "broadcaster"
	machine     = "rx"
	// maxPresses bounds the search for feeder cycles in part 2.
	maxPresses = 1 << 20
)

// Module kinds. Modules that only appear as targets are sinks.
const (
	sink = iota
	relay
	flipFlop
	conjunction
)

type edge struct {
	to   int
	slot int // index of the sender in the target's inputs
}

type module struct {
	name string
	kind int
	outs []edge
	ins  []int
	on   bool
	mem  []bool
	high int
}

// Network is the module configuration plus its state.
type Network struct {
	mods  []*module
	index map[string]int
}

func (n *Network) id(name string) int {
	if i, ok := n.index[name]; ok {
		return i
	}
	n.index[name] = len(n.mods)
	n.mods = append(n.mods, &module{name: name})
	return len(n.mods) - 1
}

// ParseNetwork reads "%a -> b, c" lines.
func ParseNetwork(input string) (*Network, error) {
	n := &Network{index: map[string]int{}}
	for i, line := range parse.Lines(input) {
		src, dst, ok := strings.Cut(line, " -> ")
		if !ok {
			return nil, puzzle.Errorf(i, "missing arrow")
		}
		kind := relay
		switch {
		case strings.HasPrefix(src, "%"):
			kind, src = flipFlop, src[1:]
		case strings.HasPrefix(src, "&"):
			kind, src = conjunction, src[1:]
		case src != broadcaster:
			return nil, puzzle.Errorf(i, "unknown module %q", src)
		}
		m := n.mods[n.id(src)]
		if m.kind != sink {
			return nil, puzzle.Errorf(i, "module %q defined twice", src)
		}
		m.kind = kind
		for _, t := range strings.Split(dst, ",") {
			m.outs = append(m.outs, edge{to: n.id(strings.TrimSpace(t))})
		}
	}
	if _, ok := n.index[broadcaster]; !ok {
		return nil, puzzle.Invalid("no broadcaster")
	}
	for from, m := range n.mods {
		for k, e := range m.outs {
			t := n.mods[e.to]
			m.outs[k].slot = len(t.ins)
			t.ins = append(t.ins, from)
		}
	}
	for _, m := range n.mods {
		m.mem = make([]bool, len(m.ins))
	}
	return n, nil
}

type pulse struct {
	from int
	to   edge
	high bool
}

// Press pushes the button once and returns the low and high pulse counts.
// observe, if not nil, sees every pulse as it is delivered.
func (n *Network) Press(observe func(from, to int, high bool)) (low, high int) {
	queue := []pulse{{from: -1, to: edge{to: n.index[broadcaster]}}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p.high {
			high++
		} else {
			low++
		}
		if observe != nil {
			observe(p.from, p.to.to, p.high)
		}
		m := n.mods[p.to.to]
		var out bool
		switch m.kind {
		case sink:
			continue
		case relay:
			out = p.high
		case flipFlop:
			if p.high {
				continue
			}
			m.on = !m.on
			out = m.on
		case conjunction:
			if m.mem[p.to.slot] != p.high {
				m.mem[p.to.slot] = p.high
				if p.high {
					m.high++
				} else {
					m.high--
				}
			}
			out = m.high != len(m.mem)
		}
		for _, e := range m.outs {
			queue = append(queue, pulse{from: p.to.to, to: e, high: out})
		}
	}
	return low, high
}

// Part1 multiplies the low and high pulse counts over 1000 presses.
func Part1(input string) (int, error) {
	n, err := ParseNetwork(input)
	if err != nil {
		return 0, err
	}
	low, high := 0, 0
	for i := 0; i < 1000; i++ {
		l, h := n.Press(nil)
		low += l
		high += h
	}
	return low * high, nil
}

// Part2 finds the fewest presses before rx sees a low pulse. rx is fed by
// a single conjunction whose inputs each send high on a fixed cycle; the
// answer is the LCM of those cycles.
func Part2(input string) (int, error) {
	n, err := ParseNetwork(input)
	if err != nil {
		return 0, err
	}
	rx, ok := n.index[machine]
	if !ok {
		return 0, puzzle.Invalid("network has no %s module", machine)
	}
	if len(n.mods[rx].ins) != 1 || n.mods[n.mods[rx].ins[0]].kind != conjunction {
		return 0, puzzle.Invalid("%s is not fed by a single conjunction", machine)
	}
	hub := n.mods[rx].ins[0]
	first := map[int]int{}
	for press := 1; press <= maxPresses; press++ {
		n.Press(func(from, to int, high bool) {
			if to == hub && high {
				if _, ok := first[from]; !ok {
					first[from] = press
				}
			}
		})
		if len(first) == len(n.mods[hub].ins) {
			cycles := make([]int, 0, len(first))
			for _, c := range first {
				cycles = append(cycles, c)
			}
			return numeric.LCM(cycles...), nil
		}
	}
	return 0, puzzle.Invalid("no cycle found in %d presses", maxPresses)
}
