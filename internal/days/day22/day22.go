// Package day22 solves "Sand Slabs".
package day22

import (
	"slices"

	"github.com/mesh-intelligence/aoc2023/internal/parse"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// Brick spans the inclusive box from Lo to Hi, as x, y, z.
type Brick struct {
	Lo, Hi [3]int
}

// ParseBricks reads "1,0,1~1,2,1" lines.
func ParseBricks(input string) ([]Brick, error) {
	var out []Brick
	for i, line := range parse.Lines(input) {
		v := parse.Ints(line)
		if len(v) != 6 {
			return nil, puzzle.Errorf(i, "want 6 coordinates, got %d", len(v))
		}
		var b Brick
		for k := 0; k < 3; k++ {
			b.Lo[k], b.Hi[k] = min(v[k], v[k+3]), max(v[k], v[k+3])
			if b.Lo[k] < 0 {
				return nil, puzzle.Errorf(i, "negative coordinate")
			}
		}
		if b.Lo[2] < 1 {
			return nil, puzzle.Errorf(i, "brick below the ground")
		}
		out = append(out, b)
	}
	return out, nil
}

// Stack is a settled pile: for every brick, the bricks resting on it and
// the bricks it rests on.
type Stack struct {
	Above [][]int
	Below [][]int
}

type column struct {
	z     int
	brick int
}

// Settle drops the bricks until none can fall and records who supports
// whom. Bricks are indexed in order of their original height.
func Settle(bricks []Brick) *Stack {
	bricks = slices.Clone(bricks)
	slices.SortFunc(bricks, func(a, b Brick) int { return a.Lo[2] - b.Lo[2] })
	top := map[[2]int]column{}
	s := &Stack{Above: make([][]int, len(bricks)), Below: make([][]int, len(bricks))}
	for i, b := range bricks {
		floor := 0
		for x := b.Lo[0]; x <= b.Hi[0]; x++ {
			for y := b.Lo[1]; y <= b.Hi[1]; y++ {
				floor = max(floor, top[[2]int{x, y}].z)
			}
		}
		h := b.Hi[2] - b.Lo[2]
		for x := b.Lo[0]; x <= b.Hi[0]; x++ {
			for y := b.Lo[1]; y <= b.Hi[1]; y++ {
				c, ok := top[[2]int{x, y}]
				if ok && c.z == floor && !slices.Contains(s.Below[i], c.brick) {
					s.Below[i] = append(s.Below[i], c.brick)
					s.Above[c.brick] = append(s.Above[c.brick], i)
				}
				top[[2]int{x, y}] = column{z: floor + 1 + h, brick: i}
			}
		}
	}
	return s
}

// Safe reports whether brick i can go without anything else falling.
func (s *Stack) Safe(i int) bool {
	for _, a := range s.Above[i] {
		if len(s.Below[a]) == 1 {
			return false
		}
	}
	return true
}

// Falls counts the other bricks that drop when brick i is removed.
func (s *Stack) Falls(i int) int {
	gone := map[int]bool{i: true}
	queue := []int{i}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		for _, a := range s.Above[b] {
			if gone[a] {
				continue
			}
			all := true
			for _, under := range s.Below[a] {
				if !gone[under] {
					all = false
					break
				}
			}
			if all {
				gone[a] = true
				queue = append(queue, a)
			}
		}
	}
	return len(gone) - 1
}

func settle(input string) (*Stack, error) {
	bricks, err := ParseBricks(input)
	if err != nil {
		return nil, err
	}
	return Settle(bricks), nil
}

// Part1 counts the bricks that could be disintegrated safely.
func Part1(input string) (int, error) {
	s, err := settle(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for i := range s.Above {
		if s.Safe(i) {
			n++
		}
	}
	return n, nil
}

// Part2 sums, over every brick, the number of other bricks that would fall.
func Part2(input string) (int, error) {
	s, err := settle(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for i := range s.Above {
		sum += s.Falls(i)
	}
	return sum, nil
}
