package day17

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/aoc2023/internal/days/daytest"
)

const sample = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533`

const unfortunate = `111111111111
999999999991
999999999991
999999999991
999999999991`

func TestPart1(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 102, got)
}

func TestPart2(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"sample", sample, 94},
		{"long straight", unfortunate, 71},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Part2(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNoRoute(t *testing.T) {
	_, err := Part2("11\n11")
	assert.ErrorContains(t, err, "no route")
}

func TestParseCityRejectsZero(t *testing.T) {
	_, err := ParseCity("12\n30")
	assert.ErrorContains(t, err, "line 2")
}

func BenchmarkPart1(b *testing.B) { daytest.Bench(b, 17, Part1) }
func BenchmarkPart2(b *testing.B) { daytest.Bench(b, 17, Part2) }
