package day10

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/aoc2023/internal/days/daytest"
	"github.com/mesh-intelligence/aoc2023/internal/grid"
)

const square = `.....
.S-7.
.|.|.
.L-J.
.....`

const complex = `..F7.
.FJ|.
SJ.L7
|F--J
LJ...`

const enclosed = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........`

const squeezed = `..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........`

func TestPart1(t *testing.T) {
	got, err := Part1(square)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = Part1(complex)
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestPart2(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"square", square, 1},
		{"enclosed", enclosed, 4},
		{"squeezed", squeezed, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Part2(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoop(t *testing.T) {
	g, err := grid.Parse(square)
	require.NoError(t, err)
	loop, err := Loop(g)
	require.NoError(t, err)
	assert.Len(t, loop, 8)
	assert.Equal(t, grid.Point{R: 1, C: 1}, loop[0])
}

func TestLoop_Errors(t *testing.T) {
	_, err := Part1("...\n.|.\n...")
	assert.ErrorContains(t, err, "no start")

	_, err = Part1("...\n.S.\n...")
	assert.ErrorContains(t, err, "not on a loop")
}

func BenchmarkPart1(b *testing.B) { daytest.Bench(b, 10, Part1) }
func BenchmarkPart2(b *testing.B) { daytest.Bench(b, 10, Part2) }
