// Package day05 solves "If You Give A Seed A Fertilizer".
package day05

import (
	"slices"
	"strings"

	"github.com/mesh-intelligence/aoc2023/internal/parse"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// Range maps [Src, Src+Len) onto [Dst, Dst+Len).
type Range struct {
	Dst, Src, Len int
}

// TryMap returns the image of v, or false when v is outside the range.
func (r Range) TryMap(v int) (int, bool) {
	if v < r.Src || v >= r.Src+r.Len {
		return 0, false
	}
	return r.Dst + v - r.Src, true
}

// Map is one "a-to-b map:" section. Values not covered by a range map to
// themselves.
type Map struct {
	From, To string
	Ranges   []Range
}

// Apply maps a single value.
func (m Map) Apply(v int) int {
	for _, r := range m.Ranges {
		if out, ok := r.TryMap(v); ok {
			return out
		}
	}
	return v
}

// Span is the half-open interval [Start, End).
type Span struct {
	Start, End int
}

// ApplySpans maps a set of spans, splitting them where ranges begin and end.
func (m Map) ApplySpans(in []Span) []Span {
	var out []Span
	todo := slices.Clone(in)
	for _, r := range m.Ranges {
		var rest []Span
		lo, hi := r.Src, r.Src+r.Len
		for _, s := range todo {
			if s.Start < lo {
				rest = append(rest, Span{s.Start, min(s.End, lo)})
			}
			if s.End > hi {
				rest = append(rest, Span{max(s.Start, hi), s.End})
			}
			if a, b := max(s.Start, lo), min(s.End, hi); a < b {
				out = append(out, Span{a - r.Src + r.Dst, b - r.Src + r.Dst})
			}
		}
		todo = rest
	}
	return append(out, todo...)
}

// Almanac is the parsed puzzle input.
type Almanac struct {
	Seeds []int
	Maps  []Map
}

// ParseMapKey reads "soil-to-fertilizer map:".
func ParseMapKey(s string) (from, to string, err error) {
	name, ok := strings.CutSuffix(strings.TrimSpace(s), " map:")
	if !ok {
		return "", "", puzzle.Invalid("bad map header %q", s)
	}
	from, to, ok = strings.Cut(name, "-to-")
	if !ok {
		return "", "", puzzle.Invalid("bad map header %q", s)
	}
	return from, to, nil
}

// ParseRange reads "50 98 2" (destination, source, length).
func ParseRange(s string) (Range, error) {
	ns, err := parse.Fields(s)
	if err != nil {
		return Range{}, err
	}
	if len(ns) != 3 {
		return Range{}, puzzle.Invalid("range needs 3 numbers: %q", s)
	}
	return Range{Dst: ns[0], Src: ns[1], Len: ns[2]}, nil
}

// ParseAlmanac reads the whole input.
func ParseAlmanac(input string) (Almanac, error) {
	blocks := parse.Blocks(input)
	if len(blocks) == 0 {
		return Almanac{}, puzzle.Invalid("empty input")
	}
	seeds, ok := strings.CutPrefix(blocks[0][0], "seeds:")
	if !ok {
		return Almanac{}, puzzle.Invalid("missing seeds line")
	}
	var a Almanac
	var err error
	if a.Seeds, err = parse.Fields(seeds); err != nil {
		return Almanac{}, err
	}
	for _, b := range blocks[1:] {
		var m Map
		if m.From, m.To, err = ParseMapKey(b[0]); err != nil {
			return Almanac{}, err
		}
		for _, line := range b[1:] {
			r, err := ParseRange(line)
			if err != nil {
				return Almanac{}, err
			}
			m.Ranges = append(m.Ranges, r)
		}
		a.Maps = append(a.Maps, m)
	}
	return a, nil
}

// Location follows seed through every map.
func (a Almanac) Location(seed int) int {
	v := seed
	for _, m := range a.Maps {
		v = m.Apply(v)
	}
	return v
}

// Part1 is the lowest location of any listed seed.
func Part1(input string) (int, error) {
	a, err := ParseAlmanac(input)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 {
		return 0, puzzle.Invalid("no seeds")
	}
	best := a.Location(a.Seeds[0])
	for _, s := range a.Seeds[1:] {
		best = min(best, a.Location(s))
	}
	return best, nil
}

// Part2 reads the seeds as (start, length) pairs and finds the lowest
// location over all of them.
func Part2(input string) (int, error) {
	a, err := ParseAlmanac(input)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 || len(a.Seeds)%2 != 0 {
		return 0, puzzle.Invalid("seed ranges must come in pairs")
	}
	var spans []Span
	for i := 0; i < len(a.Seeds); i += 2 {
		n := a.Seeds[i+1]
		if n < 0 {
			return 0, puzzle.Invalid("negative seed range length %d", n)
		}
		if n > 0 {
			spans = append(spans, Span{a.Seeds[i], a.Seeds[i] + n})
		}
	}
	for _, m := range a.Maps {
		spans = m.ApplySpans(spans)
	}
	if len(spans) == 0 {
		return 0, puzzle.Invalid("seed ranges are empty")
	}
	best := spans[0].Start
	for _, s := range spans[1:] {
		best = min(best, s.Start)
	}
	return best, nil
}
