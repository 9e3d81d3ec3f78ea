// Package day07 solves "Camel Cards".
package day07

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/aoc2023/internal/parse"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// Kind is a hand type, weakest first.
type Kind int

// Hand types.
const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

const (
	order      = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

// Bid is a hand and its bid amount.
type Bid struct {
	Hand  string
	Value int
}

// Classify returns the type of hand. With jokers, each J joins whichever
// group is already largest.
func Classify(hand string, jokers bool) Kind {
	counts := map[rune]int{}
	j := 0
	for _, c := range hand {
		if jokers && c == 'J' {
			j++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return b - a })
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += j

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	}
	return HighCard
}

// Compare orders two hands by type, then card by card.
func Compare(a, b string, jokers bool) int {
	if c := cmp.Compare(Classify(a, jokers), Classify(b, jokers)); c != 0 {
		return c
	}
	ranks := order
	if jokers {
		ranks = jokerOrder
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(strings.IndexByte(ranks, a[i]), strings.IndexByte(ranks, b[i])); c != 0 {
			return c
		}
	}
	return 0
}

// ParseBids reads "32T3K 765" lines.
func ParseBids(input string) ([]Bid, error) {
	var bids []Bid
	for i, line := range parse.Lines(input) {
		if line == "" {
			continue
		}
		hand, v, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok || len(hand) != 5 {
			return nil, puzzle.Errorf(i, "bad hand %q", line)
		}
		for _, c := range hand {
			if !strings.ContainsRune(order, c) {
				return nil, puzzle.Errorf(i, "bad card %q", c)
			}
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, puzzle.Errorf(i, "bad bid %q", v)
		}
		bids = append(bids, Bid{Hand: hand, Value: n})
	}
	return bids, nil
}

func winnings(input string, jokers bool) (int, error) {
	bids, err := ParseBids(input)
	if err != nil {
		return 0, err
	}
	slices.SortStableFunc(bids, func(a, b Bid) int { return Compare(a.Hand, b.Hand, jokers) })
	total := 0
	for rank, b := range bids {
		total += (rank + 1) * b.Value
	}
	return total, nil
}

// Part1 ranks hands with standard rules and sums rank*bid.
func Part1(input string) (int, error) {
	return winnings(input, false)
}

// Part2 treats J as a joker: wild for the type, weakest for tie breaks.
func Part2(input string) (int, error) {
	return winnings(input, true)
}
