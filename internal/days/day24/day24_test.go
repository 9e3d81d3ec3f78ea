package day24

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/aoc2023/internal/days/daytest"
)

const sample = `19, 13, 30 @ -2,  1, -2
18, 19, 22 @ -1, -1, -2
20, 25, 34 @ -2, -2, -4
12, 31, 28 @ -1, -2, -1
20, 19, 15 @  1, -5, -3`

func TestCrossings(t *testing.T) {
	hail, err := ParseHail(sample)
	require.NoError(t, err)
	assert.Equal(t, 2, Crossings(hail, 7, 27))
}

func TestCrossXY(t *testing.T) {
	hail, err := ParseHail(sample)
	require.NoError(t, err)

	x, y, ok := crossXY(hail[0], hail[1])
	require.True(t, ok)
	assert.InDelta(t, 14.333, x, 0.001)
	assert.InDelta(t, 15.333, y, 0.001)

	// Parallel paths.
	_, _, ok = crossXY(hail[1], hail[2])
	assert.False(t, ok)

	// Crossed in the past for stone 0.
	_, _, ok = crossXY(hail[0], hail[4])
	assert.False(t, ok)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 47, got)
}

func TestThrowNeedsFiveStones(t *testing.T) {
	hail, err := ParseHail(sample)
	require.NoError(t, err)
	_, err = Throw(hail[:4])
	assert.ErrorContains(t, err, "at least 5")
}

func TestParseHailErrors(t *testing.T) {
	_, err := ParseHail("1, 2, 3 @ 4, 5")
	assert.ErrorContains(t, err, "want 6 numbers")
}

func BenchmarkPart1(b *testing.B) { daytest.Bench(b, 24, Part1) }
func BenchmarkPart2(b *testing.B) { daytest.Bench(b, 24, Part2) }
