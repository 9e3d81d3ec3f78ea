// Package parse holds the small text helpers most puzzle inputs need:
// splitting into lines and blank-line separated blocks, and pulling
// integers out of free-form text.
package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines splits input into lines, dropping a trailing empty line and any
// carriage returns.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Blocks splits input into groups of lines separated by blank lines.
func Blocks(input string) [][]string {
	var blocks [][]string
	var cur []string
	for _, line := range Lines(input) {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

// Ints returns every integer in s, in order. A '-' directly before a digit
// is read as a sign.
func Ints(s string) []int {
	var out []int
	n, neg, in := 0, false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			if !in {
				in = true
				neg = i > 0 && s[i-1] == '-'
				n = 0
			}
			n = n*10 + int(c-'0')
		default:
			if in {
				if neg {
					n = -n
				}
				out = append(out, n)
				in = false
			}
		}
	}
	if in {
		if neg {
			n = -n
		}
		out = append(out, n)
	}
	return out
}

// Fields parses every whitespace separated field of s as an integer.
func Fields(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Atoi is strconv.Atoi with the offending text in the error.
func Atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return n, nil
}
