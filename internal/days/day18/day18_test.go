package day18

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/aoc2023/internal/days/daytest"
	"github.com/mesh-intelligence/aoc2023/internal/grid"
)

const sample = `R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)`

func TestPart1(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 62, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 952408144115, got)
}

func TestParsePlanFromColor(t *testing.T) {
	plan, err := ParsePlan("R 6 (#70c710)\nD 5 (#0dc571)", true)
	require.NoError(t, err)
	assert.Equal(t, []Step{{grid.Right, 461937}, {grid.Down, 56407}}, plan)
}

func TestVolumeSquare(t *testing.T) {
	plan := []Step{{grid.Right, 2}, {grid.Down, 2}, {grid.Left, 2}, {grid.Up, 2}}
	assert.Equal(t, 9, Volume(plan))
}

func TestParsePlanErrors(t *testing.T) {
	_, err := ParsePlan("X 6 (#70c710)", false)
	assert.ErrorContains(t, err, "bad direction")
	_, err = ParsePlan("R 6 (#70c714)", true)
	assert.ErrorContains(t, err, "bad colour")
	_, err = ParsePlan("R 6", false)
	assert.ErrorContains(t, err, "want 3 fields")
}

func TestParsePlanZeroDistance(t *testing.T) {
	_, err := ParsePlan("R 0 (#000010)", false)
	assert.ErrorContains(t, err, "bad distance")
	_, err = ParsePlan("R 1 (#000000)", true)
	assert.ErrorContains(t, err, "bad distance")
	_, err = Part2("R 0 (#000000)")
	assert.ErrorContains(t, err, "bad distance")
}

func BenchmarkPart1(b *testing.B) { daytest.Bench(b, 18, Part1) }
func BenchmarkPart2(b *testing.B) { daytest.Bench(b, 18, Part2) }
