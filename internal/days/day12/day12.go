// Package day12 solves "Hot Springs".
package day12

import (
	"strconv"
	"strings"

	"github.com/mesh-intelligence/aoc2023/internal/parse"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// Record is one row: the spring states ('.', '#', '?') and the damaged
// group sizes.
type Record struct {
	Springs string
	Groups  []int
}

// ParseRecord reads "???.### 1,1,3".
func ParseRecord(line string) (Record, error) {
	springs, gs, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok {
		return Record{}, puzzle.Invalid("bad record %q", line)
	}
	if strings.Trim(springs, ".#?") != "" {
		return Record{}, puzzle.Invalid("bad springs %q", springs)
	}
	r := Record{Springs: springs}
	for _, g := range strings.Split(gs, ",") {
		n, err := strconv.Atoi(g)
		if err != nil || n <= 0 {
			return Record{}, puzzle.Invalid("bad group %q", g)
		}
		r.Groups = append(r.Groups, n)
	}
	return r, nil
}

// Unfold repeats the record n times, joining springs with '?'.
func (r Record) Unfold(n int) Record {
	parts := make([]string, n)
	var groups []int
	for i := range n {
		parts[i] = r.Springs
		groups = append(groups, r.Groups...)
	}
	return Record{Springs: strings.Join(parts, "?"), Groups: groups}
}

// Arrangements counts the ways to fill in the unknown springs so that the
// damaged runs match the groups exactly.
func (r Record) Arrangements() int {
	s, gs := r.Springs, r.Groups
	n, m := len(s), len(gs)

	// nextDamaged[i] is the index of the first '#' at or after i, or n.
	nextDamaged := make([]int, n+1)
	nextDamaged[n] = n
	for i := n - 1; i >= 0; i-- {
		if s[i] == '#' {
			nextDamaged[i] = i
		} else {
			nextDamaged[i] = nextDamaged[i+1]
		}
	}
	// run[i] is the length of the run of non-'.' cells starting at i.
	run := make([]int, n+1)
	for i := n - 1; i >= 0; i-- {
		if s[i] != '.' {
			run[i] = run[i+1] + 1
		}
	}

	// ways[i][j]: arrangements of s[i:] using groups[j:].
	ways := make([][]int, n+2)
	for i := range ways {
		ways[i] = make([]int, m+1)
	}
	for i := n + 1; i >= 0; i-- {
		for j := m; j >= 0; j-- {
			if i >= n {
				if j == m {
					ways[i][j] = 1
				}
				continue
			}
			if j == m {
				if nextDamaged[i] == n {
					ways[i][j] = 1
				}
				continue
			}
			total := 0
			if s[i] != '#' {
				total += ways[i+1][j]
			}
			g := gs[j]
			if s[i] != '.' && run[i] >= g && (i+g == n || s[i+g] != '#') {
				total += ways[min(i+g+1, n+1)][j+1]
			}
			ways[i][j] = total
		}
	}
	return ways[0][0]
}

func total(input string, copies int) (int, error) {
	sum := 0
	for i, line := range parse.Lines(input) {
		if line == "" {
			continue
		}
		r, err := ParseRecord(line)
		if err != nil {
			return 0, puzzle.AtLine(i, err)
		}
		sum += r.Unfold(copies).Arrangements()
	}
	return sum, nil
}

// Part1 sums the arrangement counts of every record.
func Part1(input string) (int, error) { return total(input, 1) }

// Part2 unfolds each record five times first.
func Part2(input string) (int, error) { return total(input, 5) }
