package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/aoc2023/internal/days/daytest"
)

const sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green`

func TestPart1(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 2286, got)
}

func TestParseReveal(t *testing.T) {
	tests := []struct {
		in   string
		want Cubes
	}{
		{"1 red, 2 green, 3 blue", Cubes{1, 2, 3}},
		{"1 red", Cubes{Red: 1}},
		{"100 green", Cubes{Green: 100}},
	}
	for _, tt := range tests {
		got, err := ParseReveal(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseReveal("3 purple")
	assert.Error(t, err)
}

func TestParseGame(t *testing.T) {
	_, err := ParseGame("Invalid")
	assert.Error(t, err)
	_, err = ParseGame("NotAGame 123: this is a test")
	assert.Error(t, err)

	g, err := ParseGame("Game 1:")
	require.NoError(t, err)
	assert.Equal(t, Game{ID: 1}, g)

	g, err = ParseGame("Game 1: 1 red; 1 red")
	require.NoError(t, err)
	assert.Equal(t, Game{ID: 1, Reveals: []Cubes{{Red: 1}, {Red: 1}}}, g)
}

func TestMinBag(t *testing.T) {
	g, err := ParseGame("Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red")
	require.NoError(t, err)
	bag := g.MinBag()
	assert.Equal(t, Cubes{Red: 14, Green: 3, Blue: 15}, bag)
	assert.Equal(t, 630, bag.Power())
	assert.False(t, g.PossibleWith(Cubes{12, 13, 14}))
}

func TestPart1_BadLine(t *testing.T) {
	_, err := Part1("Game 1: 3 blue\nGame x: 1 red")
	assert.ErrorContains(t, err, "line 2")
}

func BenchmarkPart1(b *testing.B) { daytest.Bench(b, 2, Part1) }
func BenchmarkPart2(b *testing.B) { daytest.Bench(b, 2, Part2) }
