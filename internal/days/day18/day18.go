// Package day18 solves "Lavaduct Lagoon".
package day18

import (
	"strconv"
	"strings"

	"github.com/mesh-intelligence/aoc2023/internal/grid"
	"github.com/mesh-intelligence/aoc2023/internal/numeric"
	"github.com/mesh-intelligence/aoc2023/internal/parse"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// Step is one dig instruction.
type Step struct {
	Dir grid.Dir
	N   int
}

var letters = map[string]grid.Dir{"U": grid.Up, "R": grid.Right, "D": grid.Down, "L": grid.Left}

// hexDirs maps the last hex digit of a colour code to a direction.
var hexDirs = [4]grid.Dir{grid.Right, grid.Down, grid.Left, grid.Up}

// ParsePlan reads "R 6 (#70c710)" lines. When fromColor is set the
// direction and distance come from the colour code instead.
func ParsePlan(input string, fromColor bool) ([]Step, error) {
	var plan []Step
	for i, line := range parse.Lines(input) {
		f := strings.Fields(line)
		if len(f) != 3 {
			return nil, puzzle.Errorf(i, "want 3 fields, got %d", len(f))
		}
		if fromColor {
			code := strings.TrimSuffix(strings.TrimPrefix(f[2], "(#"), ")")
			if len(code) != 6 {
				return nil, puzzle.Errorf(i, "bad colour %q", f[2])
			}
			n, err := strconv.ParseInt(code[:5], 16, 64)
			if err != nil || code[5] < '0' || code[5] > '3' {
				return nil, puzzle.Errorf(i, "bad colour %q", f[2])
			}
			if n <= 0 {
				return nil, puzzle.Errorf(i, "bad distance in colour %q", f[2])
			}
			plan = append(plan, Step{hexDirs[code[5]-'0'], int(n)})
			continue
		}
		d, ok := letters[f[0]]
		if !ok {
			return nil, puzzle.Errorf(i, "bad direction %q", f[0])
		}
		n, err := strconv.Atoi(f[1])
		if err != nil || n <= 0 {
			return nil, puzzle.Errorf(i, "bad distance %q", f[1])
		}
		plan = append(plan, Step{d, n})
	}
	return plan, nil
}

// Volume is the number of cubic metres the lagoon holds: the trench plus
// its interior. The shoelace area counts cells from their centres, so half
// the perimeter plus one is added back.
func Volume(plan []Step) int {
	var p grid.Point
	area, perimeter := 0, 0
	for _, s := range plan {
		q := p.Step(s.Dir, s.N)
		area += p.C*q.R - q.C*p.R
		perimeter += s.N
		p = q
	}
	return numeric.Abs(area)/2 + perimeter/2 + 1
}

func solve(input string, fromColor bool) (int, error) {
	plan, err := ParsePlan(input, fromColor)
	if err != nil {
		return 0, err
	}
	return Volume(plan), nil
}

// Part1 follows the letter and distance columns.
func Part1(input string) (int, error) { return solve(input, false) }

// Part2 decodes the instructions from the hexadecimal colours.
func Part2(input string) (int, error) { return solve(input, true) }
