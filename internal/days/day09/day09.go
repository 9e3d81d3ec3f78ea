// Package day09 solves "Mirage Maintenance".
package day09

import (
	"slices"

	"github.com/mesh-intelligence/aoc2023/internal/parse"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// Towers returns seq followed by its successive difference rows, stopping at
// the first row of all zeros.
func Towers(seq []int) [][]int {
	rows := [][]int{seq}
	cur := seq
	for len(cur) > 0 && slices.ContainsFunc(cur, func(v int) bool { return v != 0 }) {
		next := make([]int, len(cur)-1)
		for i := range next {
			next[i] = cur[i+1] - cur[i]
		}
		rows = append(rows, next)
		cur = next
	}
	return rows
}

// Next extrapolates the value after seq.
func Next(seq []int) int {
	sum := 0
	for _, row := range Towers(seq) {
		if len(row) > 0 {
			sum += row[len(row)-1]
		}
	}
	return sum
}

// Previous extrapolates the value before seq.
func Previous(seq []int) int {
	rows := Towers(seq)
	v := 0
	for i := len(rows) - 1; i >= 0; i-- {
		if len(rows[i]) > 0 {
			v = rows[i][0] - v
		}
	}
	return v
}

func sequences(input string) ([][]int, error) {
	var out [][]int
	for i, line := range parse.Lines(input) {
		if line == "" {
			continue
		}
		seq, err := parse.Fields(line)
		if err != nil {
			return nil, puzzle.AtLine(i, err)
		}
		out = append(out, seq)
	}
	return out, nil
}

func sum(input string, f func([]int) int) (int, error) {
	seqs, err := sequences(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, s := range seqs {
		total += f(s)
	}
	return total, nil
}

// Part1 sums the next value of every history.
func Part1(input string) (int, error) { return sum(input, Next) }

// Part2 sums the previous value of every history.
func Part2(input string) (int, error) { return sum(input, Previous) }
