// Package day04 solves "Scratchcards".
package day04

import (
	"strconv"
	"strings"

	"github.com/mesh-intelligence/aoc2023/internal/parse"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// Card is one scratchcard.
type Card struct {
	Num     int
	Winning []int
	Actual  []int
}

// ParseCard reads "Card 1: 41 48 83 | 83 86  6".
func ParseCard(line string) (Card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok || !strings.HasPrefix(head, "Card ") {
		return Card{}, puzzle.Invalid("not a card: %q", line)
	}
	num, err := strconv.Atoi(strings.TrimSpace(head[len("Card "):]))
	if err != nil {
		return Card{}, puzzle.Invalid("bad card number in %q", head)
	}
	win, have, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, puzzle.Invalid("missing '|' in %q", line)
	}
	c := Card{Num: num}
	if c.Winning, err = parse.Fields(win); err != nil {
		return Card{}, err
	}
	if c.Actual, err = parse.Fields(have); err != nil {
		return Card{}, err
	}
	return c, nil
}

// Matches counts the numbers on the card that are also winning numbers.
func (c Card) Matches() int {
	win := make(map[int]bool, len(c.Winning))
	for _, n := range c.Winning {
		win[n] = true
	}
	m := 0
	for _, n := range c.Actual {
		if win[n] {
			m++
		}
	}
	return m
}

func cards(input string) ([]Card, error) {
	var out []Card
	for i, line := range parse.Lines(input) {
		if line == "" {
			continue
		}
		c, err := ParseCard(line)
		if err != nil {
			return nil, puzzle.AtLine(i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Part1 scores each card 2^(matches-1) and sums the scores.
func Part1(input string) (int, error) {
	cs, err := cards(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range cs {
		if m := c.Matches(); m > 0 {
			total += 1 << (m - 1)
		}
	}
	return total, nil
}

// Part2 counts cards once every win has copied the following cards.
func Part2(input string) (int, error) {
	cs, err := cards(input)
	if err != nil {
		return 0, err
	}
	copies := make([]int, len(cs))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, c := range cs {
		total += copies[i]
		for j := i + 1; j <= i+c.Matches() && j < len(cs); j++ {
			copies[j] += copies[i]
		}
	}
	return total, nil
}
