// Package day08 solves "Haunted Wasteland".
package day08

import (
	"strings"

	"github.com/mesh-intelligence/aoc2023/internal/numeric"
	"github.com/mesh-intelligence/aoc2023/internal/parse"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// Network is the instruction string and the node table.
type Network struct {
	Directions string
	Left       map[string]string
	Right      map[string]string
	Nodes      []string
}

// ParseNetwork reads the directions line followed by "AAA = (BBB, CCC)" lines.
func ParseNetwork(input string) (Network, error) {
	lines := parse.Lines(input)
	if len(lines) == 0 {
		return Network{}, puzzle.Invalid("empty input")
	}
	n := Network{
		Directions: strings.TrimSpace(lines[0]),
		Left:       map[string]string{},
		Right:      map[string]string{},
	}
	if n.Directions == "" || strings.Trim(n.Directions, "LR") != "" {
		return Network{}, puzzle.Errorf(0, "bad directions %q", lines[0])
	}
	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, rest, ok := strings.Cut(line, " = (")
		if !ok {
			return Network{}, puzzle.Errorf(i+1, "bad node %q", line)
		}
		l, r, ok := strings.Cut(strings.TrimSuffix(rest, ")"), ", ")
		if !ok {
			return Network{}, puzzle.Errorf(i+1, "bad node %q", line)
		}
		n.Left[key], n.Right[key] = l, r
		n.Nodes = append(n.Nodes, key)
	}
	return n, nil
}

// Steps walks from start until done reports true and returns the number of
// steps taken.
func (n Network) Steps(start string, done func(string) bool) (int, error) {
	cur, steps := start, 0
	limit := len(n.Directions) * (len(n.Nodes) + 1)
	for !done(cur) {
		if _, ok := n.Left[cur]; !ok {
			return 0, puzzle.Invalid("unknown node %q", cur)
		}
		if n.Directions[steps%len(n.Directions)] == 'L' {
			cur = n.Left[cur]
		} else {
			cur = n.Right[cur]
		}
		steps++
		if steps > limit {
			return 0, puzzle.Invalid("no exit reachable from %q", start)
		}
	}
	return steps, nil
}

// Part1 counts the steps from AAA to ZZZ.
func Part1(input string) (int, error) {
	n, err := ParseNetwork(input)
	if err != nil {
		return 0, err
	}
	return n.Steps("AAA", func(s string) bool { return s == "ZZZ" })
}

// Part2 walks every node ending in A at once until all stand on nodes ending
// in Z. Each ghost loops with a fixed period, so the answer is the LCM.
func Part2(input string) (int, error) {
	n, err := ParseNetwork(input)
	if err != nil {
		return 0, err
	}
	var periods []int
	for _, node := range n.Nodes {
		if !strings.HasSuffix(node, "A") {
			continue
		}
		s, err := n.Steps(node, func(s string) bool { return strings.HasSuffix(s, "Z") })
		if err != nil {
			return 0, err
		}
		periods = append(periods, s)
	}
	if len(periods) == 0 {
		return 0, puzzle.Invalid("no start nodes")
	}
	return numeric.LCM(periods...), nil
}
