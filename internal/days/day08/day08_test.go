package day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/aoc2023/internal/days/daytest"
)

const sample1 = `RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)`

const sample2 = `LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)`

const sample3 = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)`

func TestPart1(t *testing.T) {
	got, err := Part1(sample1)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = Part1(sample2)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample3)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestParseNetwork(t *testing.T) {
	n, err := ParseNetwork("RLR\nAAA = (BBB, CCC)\nBBB = (DDD, EEE)")
	require.NoError(t, err)
	assert.Equal(t, "RLR", n.Directions)
	assert.Equal(t, []string{"AAA", "BBB"}, n.Nodes)
	assert.Equal(t, "BBB", n.Left["AAA"])
	assert.Equal(t, "EEE", n.Right["BBB"])

	_, err = ParseNetwork("RXL\n")
	assert.Error(t, err)
}

func TestSteps_NoExit(t *testing.T) {
	_, err := Part1("L\n\nAAA = (AAA, AAA)\nZZZ = (ZZZ, ZZZ)")
	assert.Error(t, err)

	_, err = Part1("L\n\nAAA = (QQQ, QQQ)")
	assert.ErrorContains(t, err, "QQQ")
}

func BenchmarkPart1(b *testing.B) { daytest.Bench(b, 8, Part1) }
func BenchmarkPart2(b *testing.B) { daytest.Bench(b, 8, Part2) }
