// Package day03 solves "Gear Ratios".
package day03

import "github.com/mesh-intelligence/aoc2023/internal/parse"

// Item is a part number or a symbol on the engine schematic. Symbol is 0
// for numbers.
type Item struct {
	Symbol byte
	Number int
	Line   int
	Col    int
	Len    int
}

// IsNumber reports whether the item is a part number.
func (it Item) IsNumber() bool { return it.Symbol == 0 }

// touches reports whether the single-cell item s is adjacent to the
// number n, diagonals included.
func touches(s, n Item) bool {
	return s.Line >= n.Line-1 && s.Line <= n.Line+1 &&
		s.Col >= n.Col-1 && s.Col <= n.Col+n.Len
}

// Scan lists numbers and symbols in reading order. Dots are empty space.
func Scan(input string) []Item {
	var items []Item
	for l, line := range parse.Lines(input) {
		for c := 0; c < len(line); c++ {
			ch := line[c]
			switch {
			case ch == '.':
			case ch >= '0' && ch <= '9':
				start, n := c, 0
				for c < len(line) && line[c] >= '0' && line[c] <= '9' {
					n = n*10 + int(line[c]-'0')
					c++
				}
				items = append(items, Item{Number: n, Line: l, Col: start, Len: c - start})
				c--
			default:
				items = append(items, Item{Symbol: ch, Line: l, Col: c, Len: 1})
			}
		}
	}
	return items
}

func split(items []Item) (numbers, symbols []Item) {
	for _, it := range items {
		if it.IsNumber() {
			numbers = append(numbers, it)
		} else {
			symbols = append(symbols, it)
		}
	}
	return numbers, symbols
}

// Part1 sums every number adjacent to at least one symbol.
func Part1(input string) (int, error) {
	numbers, symbols := split(Scan(input))
	sum := 0
	for _, n := range numbers {
		for _, s := range symbols {
			if touches(s, n) {
				sum += n.Number
				break
			}
		}
	}
	return sum, nil
}

// Part2 sums the gear ratios: the product of the two numbers next to a '*'
// that touches exactly two numbers.
func Part2(input string) (int, error) {
	numbers, symbols := split(Scan(input))
	sum := 0
	for _, s := range symbols {
		if s.Symbol != '*' {
			continue
		}
		var adj []int
		for _, n := range numbers {
			if touches(s, n) {
				adj = append(adj, n.Number)
			}
		}
		if len(adj) == 2 {
			sum += adj[0] * adj[1]
		}
	}
	return sum, nil
}
