package day25

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/aoc2023/internal/days/daytest"
)

const sample = `jqt: rhn xhk nvd
rsh: frs pzl lsr
xhk: hfx
cmg: qnr nvd lhk bvb
rhn: xhk bvb hfx
bvb: xhk hfx
pzl: lsr hfx nvd
qnr: nvd
ntq: jqt hfx bvb xhk
nvd: lhk
lsr: lhk
rzs: qnr cmg lsr rsh
frs: qnr lhk lsr`

func TestPart1(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 54, got)
}

func TestSplit(t *testing.T) {
	g, err := ParseGraph(sample)
	require.NoError(t, err)
	assert.Equal(t, 15, g.Len())
	a, b, err := g.Split()
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{6, 9}, []int{a, b})
}

func TestNoCut(t *testing.T) {
	// Every pair is joined by four disjoint paths.
	_, err := Part1("a: b c d e\nb: c d e\nc: d e\nd: e")
	assert.ErrorContains(t, err, "no 3-wire cut")
}

func BenchmarkPart1(b *testing.B) { daytest.Bench(b, 25, Part1) }
