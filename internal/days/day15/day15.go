// Package day15 solves "Lens Library".
package day15

import (
	"slices"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// Hash is the HASH algorithm: for each byte, add, multiply by 17, mod 256.
func Hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

// Steps splits the initialization sequence, ignoring newlines.
func Steps(input string) []string {
	input = strings.NewReplacer("\n", "", "\r", "").Replace(input)
	if input == "" {
		return nil
	}
	return strings.Split(input, ",")
}

type lens struct {
	label string
	focal int
}

// Boxes is the HASHMAP: 256 boxes of ordered lenses.
type Boxes [256][]lens

// Apply performs one step, "label=N" or "label-".
func (b *Boxes) Apply(step string) error {
	if label, ok := strings.CutSuffix(step, "-"); ok {
		box := &b[Hash(label)]
		*box = slices.DeleteFunc(*box, func(l lens) bool { return l.label == label })
		return nil
	}
	label, f, ok := strings.Cut(step, "=")
	if !ok || label == "" {
		return puzzle.Invalid("bad step %q", step)
	}
	focal, err := strconv.Atoi(f)
	if err != nil || focal < 1 || focal > 9 {
		return puzzle.Invalid("bad focal length in %q", step)
	}
	box := &b[Hash(label)]
	if i := slices.IndexFunc(*box, func(l lens) bool { return l.label == label }); i >= 0 {
		(*box)[i].focal = focal
		return nil
	}
	*box = append(*box, lens{label, focal})
	return nil
}

// Power is the total focusing power of every lens.
func (b *Boxes) Power() int {
	total := 0
	for i, box := range b {
		for slot, l := range box {
			total += (i + 1) * (slot + 1) * l.focal
		}
	}
	return total
}

// Part1 sums the hash of every step.
func Part1(input string) (int, error) {
	sum := 0
	for _, s := range Steps(input) {
		sum += Hash(s)
	}
	return sum, nil
}

// Part2 runs the HASHMAP procedure and reports the focusing power.
func Part2(input string) (int, error) {
	var b Boxes
	for _, s := range Steps(input) {
		if err := b.Apply(s); err != nil {
			return 0, err
		}
	}
	return b.Power(), nil
}
