// Package day01 solves "Trebuchet?!": recover calibration values from the
// first and last digit on each line.
package day01

import (
	"strings"

	"github.com/mesh-intelligence/aoc2023/internal/parse"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

var words = [...]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Digits returns the digits found in line, in order. With spelled set,
// spelled-out names count too; names may overlap, so "eightwo" yields 8, 2.
func Digits(line string, spelled bool) []int {
	var out []int
	for i := 0; i < len(line); i++ {
		if c := line[i]; c >= '0' && c <= '9' {
			out = append(out, int(c-'0'))
			continue
		}
		if !spelled {
			continue
		}
		for v, w := range words {
			if strings.HasPrefix(line[i:], w) {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

// FirstAndLast returns the first and last element of ds. A single element
// is both first and last.
func FirstAndLast(ds []int) (first, last int, ok bool) {
	if len(ds) == 0 {
		return 0, 0, false
	}
	return ds[0], ds[len(ds)-1], true
}

func calibrate(input string, spelled bool) (int, error) {
	sum := 0
	for i, line := range parse.Lines(input) {
		if line == "" {
			continue
		}
		first, last, ok := FirstAndLast(Digits(line, spelled))
		if !ok {
			return 0, puzzle.Errorf(i, "no digit in %q", line)
		}
		sum += first*10 + last
	}
	return sum, nil
}

// Part1 sums calibration values built from numeric digits only.
func Part1(input string) (int, error) {
	return calibrate(input, false)
}

// Part2 also accepts digits spelled out with letters.
func Part2(input string) (int, error) {
	return calibrate(input, true)
}
