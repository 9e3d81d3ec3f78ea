// Package day13 solves "Point of Incidence".
package day13

import (
	"github.com/mesh-intelligence/aoc2023/internal/parse"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// Pattern is one block of ash ('.') and rocks ('#').
type Pattern []string

// transpose swaps rows and columns.
func (p Pattern) transpose() Pattern {
	if len(p) == 0 {
		return nil
	}
	out := make(Pattern, len(p[0]))
	for c := range out {
		b := make([]byte, len(p))
		for r := range p {
			b[r] = p[r][c]
		}
		out[c] = string(b)
	}
	return out
}

// mirrorRow returns the number of rows above a horizontal mirror line that
// reflects the pattern with exactly smudges differences, or 0.
func (p Pattern) mirrorRow(smudges int) int {
	for line := 1; line < len(p); line++ {
		diff := 0
		for a, b := line-1, line; a >= 0 && b < len(p) && diff <= smudges; a, b = a-1, b+1 {
			for c := 0; c < len(p[a]); c++ {
				if p[a][c] != p[b][c] {
					diff++
				}
			}
		}
		if diff == smudges {
			return line
		}
	}
	return 0
}

// Summary is the column count left of a vertical mirror, or 100 times the
// row count above a horizontal one.
func (p Pattern) Summary(smudges int) (int, bool) {
	if c := p.transpose().mirrorRow(smudges); c > 0 {
		return c, true
	}
	if r := p.mirrorRow(smudges); r > 0 {
		return 100 * r, true
	}
	return 0, false
}

// ParsePatterns splits input into blank-line separated patterns.
func ParsePatterns(input string) ([]Pattern, error) {
	var out []Pattern
	for i, b := range parse.Blocks(input) {
		for _, row := range b {
			if len(row) != len(b[0]) {
				return nil, puzzle.Invalid("pattern %d is not rectangular", i+1)
			}
		}
		out = append(out, Pattern(b))
	}
	return out, nil
}

func summarize(input string, smudges int) (int, error) {
	ps, err := ParsePatterns(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for i, p := range ps {
		s, ok := p.Summary(smudges)
		if !ok {
			return 0, puzzle.Invalid("pattern %d has no mirror", i+1)
		}
		total += s
	}
	return total, nil
}

// Part1 sums the summaries of the perfect reflections.
func Part1(input string) (int, error) { return summarize(input, 0) }

// Part2 finds the reflection that needs exactly one smudge fixed.
func Part2(input string) (int, error) { return summarize(input, 1) }
