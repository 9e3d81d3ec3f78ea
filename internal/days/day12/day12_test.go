package day12

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/aoc2023/internal/days/daytest"
)

const sample = `???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1`

func TestPart1(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 21, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 525152, got)
}

func TestArrangements(t *testing.T) {
	tests := []struct {
		line   string
		folded int
		five   int
	}{
		{"???.### 1,1,3", 1, 1},
		{".??..??...?##. 1,1,3", 4, 16384},
		{"?#?#?#?#?#?#?#? 1,3,1,6", 1, 1},
		{"????.#...#... 4,1,1", 1, 16},
		{"????.######..#####. 1,6,5", 4, 2500},
		{"?###???????? 3,2,1", 10, 506250},
		{"# 1", 1, 1},
		{"#.# 1", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			r, err := ParseRecord(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.folded, r.Arrangements())
			assert.Equal(t, tt.five, r.Unfold(5).Arrangements())
		})
	}
}

func TestUnfold(t *testing.T) {
	r := Record{Springs: ".#", Groups: []int{1}}
	assert.Equal(t, Record{Springs: ".#?.#?.#?.#?.#", Groups: []int{1, 1, 1, 1, 1}}, r.Unfold(5))
}

func TestParseRecord_Bad(t *testing.T) {
	_, err := ParseRecord("???")
	assert.Error(t, err)
	_, err = ParseRecord("?x? 1")
	assert.Error(t, err)
	_, err = ParseRecord("??? 1,a")
	assert.Error(t, err)
}

func BenchmarkPart1(b *testing.B) { daytest.Bench(b, 12, Part1) }
func BenchmarkPart2(b *testing.B) { daytest.Bench(b, 12, Part2) }
