package day16

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/aoc2023/internal/days/daytest"
	"github.com/mesh-intelligence/aoc2023/internal/grid"
)

const sample = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....`

func TestPart1(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 46, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 51, got)
}

func TestBounce(t *testing.T) {
	assert.Equal(t, []grid.Dir{grid.Up}, bounce('/', grid.Right))
	assert.Equal(t, []grid.Dir{grid.Down}, bounce('\\', grid.Right))
	assert.Equal(t, []grid.Dir{grid.Left}, bounce('\\', grid.Up))
	assert.Equal(t, []grid.Dir{grid.Up, grid.Down}, bounce('|', grid.Left))
	assert.Equal(t, []grid.Dir{grid.Up}, bounce('|', grid.Up))
	assert.Equal(t, []grid.Dir{grid.Left, grid.Right}, bounce('-', grid.Down))
}

func TestEnergizedLoop(t *testing.T) {
	g, err := grid.Parse("/.\\\n...\n\\./")
	require.NoError(t, err)
	assert.Equal(t, 8, Energized(g, grid.Point{R: 0, C: 1}, grid.Right))
}

func BenchmarkPart1(b *testing.B) { daytest.Bench(b, 16, Part1) }
func BenchmarkPart2(b *testing.B) { daytest.Bench(b, 16, Part2) }
