// Package day19 solves "Aplenty".
package day19

import (
	"strconv"
	"strings"

	"github.com/mesh-intelligence/aoc2023/internal/parse"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// Workflow names with special meaning.
const (
	Start    = "in"
	Accepted = "A"
	Rejected = "R"
)

// Rating categories, in the order parts list them.
const categories = "xmas"

// Part is a machine part's four ratings, indexed as in categories.
type Part [4]int

// Sum adds the four ratings.
func (p Part) Sum() int { return p[0] + p[1] + p[2] + p[3] }

// Rule sends parts to Target when rating Cat compares true against Value.
// A rule with Op 0 always matches.
type Rule struct {
	Cat    int
	Op     byte
	Value  int
	Target string
}

func (r Rule) matches(p Part) bool {
	switch r.Op {
	case '<':
		return p[r.Cat] < r.Value
	case '>':
		return p[r.Cat] > r.Value
	}
	return true
}

// System holds the workflows and the parts to sort.
type System struct {
	Workflows map[string][]Rule
	Parts     []Part
}

func parseRule(s string) (Rule, error) {
	cond, target, ok := strings.Cut(s, ":")
	if !ok {
		return Rule{Target: s}, nil
	}
	if len(cond) < 3 {
		return Rule{}, puzzle.Invalid("bad rule %q", s)
	}
	cat := strings.IndexByte(categories, cond[0])
	if cat < 0 || (cond[1] != '<' && cond[1] != '>') {
		return Rule{}, puzzle.Invalid("bad rule %q", s)
	}
	v, err := strconv.Atoi(cond[2:])
	if err != nil {
		return Rule{}, puzzle.Invalid("bad value in %q", s)
	}
	return Rule{Cat: cat, Op: cond[1], Value: v, Target: target}, nil
}

// ParseSystem reads the workflow block and the parts block.
func ParseSystem(input string) (*System, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 {
		return nil, puzzle.Invalid("want workflows and parts, got %d blocks", len(blocks))
	}
	s := &System{Workflows: map[string][]Rule{}}
	for i, line := range blocks[0] {
		name, body, ok := strings.Cut(line, "{")
		if !ok || !strings.HasSuffix(body, "}") {
			return nil, puzzle.Errorf(i, "bad workflow %q", line)
		}
		var rules []Rule
		for _, rs := range strings.Split(strings.TrimSuffix(body, "}"), ",") {
			r, err := parseRule(rs)
			if err != nil {
				return nil, puzzle.AtLine(i, err)
			}
			rules = append(rules, r)
		}
		if rules[len(rules)-1].Op != 0 {
			return nil, puzzle.Errorf(i, "workflow %s has no fallback rule", name)
		}
		s.Workflows[name] = rules
	}
	if _, ok := s.Workflows[Start]; !ok {
		return nil, puzzle.Invalid("no %q workflow", Start)
	}
	for _, line := range blocks[1] {
		vals := parse.Ints(line)
		if len(vals) != 4 {
			return nil, puzzle.Invalid("bad part %q", line)
		}
		var p Part
		copy(p[:], vals)
		s.Parts = append(s.Parts, p)
	}
	return s, nil
}

// Accept runs p through the workflows starting at "in".
func (s *System) Accept(p Part) (bool, error) {
	name := Start
	for steps := 0; steps <= len(s.Workflows); steps++ {
		switch name {
		case Accepted:
			return true, nil
		case Rejected:
			return false, nil
		}
		rules, ok := s.Workflows[name]
		if !ok {
			return false, puzzle.Invalid("unknown workflow %q", name)
		}
		for _, r := range rules {
			if r.matches(p) {
				name = r.Target
				break
			}
		}
	}
	return false, puzzle.Invalid("workflows loop")
}

// Span is an inclusive range of ratings.
type Span struct{ Lo, Hi int }

// Box is one span per category.
type Box [4]Span

func (b Box) size() int {
	n := 1
	for _, s := range b {
		n *= s.Hi - s.Lo + 1
	}
	return n
}

// split divides b on r into the matching and the remaining parts.
func (r Rule) split(b Box) (match, rest *Box) {
	s := b[r.Cat]
	lo, hi := s, s
	switch r.Op {
	case '<':
		lo.Hi = min(s.Hi, r.Value-1)
		hi.Lo = max(s.Lo, r.Value)
	case '>':
		hi.Lo = max(s.Lo, r.Value+1)
		lo.Hi = min(s.Hi, r.Value)
		lo, hi = hi, lo
	default:
		return &b, nil
	}
	if lo.Lo <= lo.Hi {
		m := b
		m[r.Cat] = lo
		match = &m
	}
	if hi.Lo <= hi.Hi {
		o := b
		o[r.Cat] = hi
		rest = &o
	}
	return match, rest
}

// Combinations counts the rating combinations in b accepted from workflow
// name.
func (s *System) Combinations(name string, b Box, depth int) (int, error) {
	switch name {
	case Accepted:
		return b.size(), nil
	case Rejected:
		return 0, nil
	}
	if depth > len(s.Workflows) {
		return 0, puzzle.Invalid("workflows loop")
	}
	rules, ok := s.Workflows[name]
	if !ok {
		return 0, puzzle.Invalid("unknown workflow %q", name)
	}
	total := 0
	cur := &b
	for _, r := range rules {
		if cur == nil {
			break
		}
		match, rest := r.split(*cur)
		if match != nil {
			n, err := s.Combinations(r.Target, *match, depth+1)
			if err != nil {
				return 0, err
			}
			total += n
		}
		cur = rest
	}
	return total, nil
}

// Part1 sums the ratings of accepted parts.
func Part1(input string) (int, error) {
	s, err := ParseSystem(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, p := range s.Parts {
		ok, err := s.Accept(p)
		if err != nil {
			return 0, err
		}
		if ok {
			sum += p.Sum()
		}
	}
	return sum, nil
}

// Part2 counts the accepted combinations with every rating in 1..4000.
func Part2(input string) (int, error) {
	s, err := ParseSystem(input)
	if err != nil {
		return 0, err
	}
	full := Span{1, 4000}
	return s.Combinations(Start, Box{full, full, full, full}, 0)
}
