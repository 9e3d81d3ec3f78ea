// Package day02 solves "Cube Conundrum".
package day02

import (
	"strconv"
	"strings"

	"github.com/mesh-intelligence/aoc2023/internal/parse"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// Cubes counts cubes by colour. It describes both a single reveal and the
// contents of a bag.
type Cubes struct {
	Red, Green, Blue int
}

// Covers reports whether the bag c holds enough cubes to show r.
func (c Cubes) Covers(r Cubes) bool {
	return c.Red >= r.Red && c.Green >= r.Green && c.Blue >= r.Blue
}

// Power is the product of the three counts.
func (c Cubes) Power() int {
	return c.Red * c.Green * c.Blue
}

// grow raises each count of c to at least that of r.
func (c *Cubes) grow(r Cubes) {
	c.Red = max(c.Red, r.Red)
	c.Green = max(c.Green, r.Green)
	c.Blue = max(c.Blue, r.Blue)
}

// ParseReveal reads "3 blue, 4 red".
func ParseReveal(s string) (Cubes, error) {
	var c Cubes
	for _, entry := range strings.Split(s, ",") {
		num, colour, ok := strings.Cut(strings.TrimSpace(entry), " ")
		if !ok {
			return Cubes{}, puzzle.Invalid("bad reveal entry %q", entry)
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return Cubes{}, puzzle.Invalid("bad count in %q", entry)
		}
		switch colour {
		case "red":
			c.Red = n
		case "green":
			c.Green = n
		case "blue":
			c.Blue = n
		default:
			return Cubes{}, puzzle.Invalid("bad colour %q", colour)
		}
	}
	return c, nil
}

// Game is one line of the record.
type Game struct {
	ID      int
	Reveals []Cubes
}

// ParseGame reads "Game 1: 3 blue, 4 red; 1 red, 2 green".
func ParseGame(line string) (Game, error) {
	head, rest, ok := strings.Cut(line, ":")
	if !ok || !strings.HasPrefix(head, "Game ") {
		return Game{}, puzzle.Invalid("not a game: %q", line)
	}
	id, err := strconv.Atoi(head[len("Game "):])
	if err != nil {
		return Game{}, puzzle.Invalid("bad game id in %q", head)
	}
	g := Game{ID: id}
	for _, r := range strings.Split(rest, ";") {
		if strings.TrimSpace(r) == "" {
			continue
		}
		c, err := ParseReveal(r)
		if err != nil {
			return Game{}, err
		}
		g.Reveals = append(g.Reveals, c)
	}
	return g, nil
}

// PossibleWith reports whether every reveal fits in bag.
func (g Game) PossibleWith(bag Cubes) bool {
	for _, r := range g.Reveals {
		if !bag.Covers(r) {
			return false
		}
	}
	return true
}

// MinBag is the smallest bag that allows every reveal.
func (g Game) MinBag() Cubes {
	var bag Cubes
	for _, r := range g.Reveals {
		bag.grow(r)
	}
	return bag
}

func games(input string) ([]Game, error) {
	var out []Game
	for i, line := range parse.Lines(input) {
		if line == "" {
			continue
		}
		g, err := ParseGame(line)
		if err != nil {
			return nil, puzzle.AtLine(i, err)
		}
		out = append(out, g)
	}
	return out, nil
}

// Part1 sums the ids of games possible with 12 red, 13 green and 14 blue cubes.
func Part1(input string) (int, error) {
	gs, err := games(input)
	if err != nil {
		return 0, err
	}
	bag := Cubes{Red: 12, Green: 13, Blue: 14}
	sum := 0
	for _, g := range gs {
		if g.PossibleWith(bag) {
			sum += g.ID
		}
	}
	return sum, nil
}

// Part2 sums the power of each game's minimum bag.
func Part2(input string) (int, error) {
	gs, err := games(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range gs {
		sum += g.MinBag().Power()
	}
	return sum, nil
}
