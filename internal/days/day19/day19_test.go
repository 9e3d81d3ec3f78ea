package day19

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/aoc2023/internal/days/daytest"
)

const sample = `px{a<2006:qkq,m>2090:A,rfg}
pv{a>1716:R,A}
lnx{m>1548:A,A}
rfg{s<537:gd,x>2440:R,A}
qs{s>3448:A,lnx}
qkq{x<1416:A,crn}
crn{x>2662:A,R}
in{s<1351:px,qqz}
qqz{s>2770:qs,m<1801:hdj,R}
gd{a>3333:R,R}
hdj{m>838:A,pv}

{x=787,m=2655,a=1222,s=2876}
{x=1679,m=44,a=2067,s=496}
{x=2036,m=264,a=79,s=2244}
{x=2461,m=1339,a=466,s=291}
{x=2127,m=1623,a=2188,s=1013}`

func TestPart1(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 19114, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 167409079868000, got)
}

func TestRuleSplit(t *testing.T) {
	full := Span{1, 4000}
	b := Box{full, full, full, full}

	match, rest := Rule{Cat: 0, Op: '<', Value: 100}.split(b)
	require.NotNil(t, match)
	require.NotNil(t, rest)
	assert.Equal(t, Span{1, 99}, match[0])
	assert.Equal(t, Span{100, 4000}, rest[0])

	match, rest = Rule{Cat: 3, Op: '>', Value: 4000}.split(b)
	assert.Nil(t, match)
	require.NotNil(t, rest)
	assert.Equal(t, full, rest[3])

	match, rest = Rule{Target: Accepted}.split(b)
	assert.Equal(t, &b, match)
	assert.Nil(t, rest)
}

func TestParseSystemErrors(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"one block", "in{A}", "want workflows and parts"},
		{"no fallback", "in{x<5:A}\n\n{x=1,m=2,a=3,s=4}", "no fallback"},
		{"no start", "ab{A}\n\n{x=1,m=2,a=3,s=4}", `no "in" workflow`},
		{"bad category", "in{q<5:A,R}\n\n{x=1,m=2,a=3,s=4}", "bad rule"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSystem(tt.input)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestUnknownWorkflow(t *testing.T) {
	_, err := Part1("in{zz}\n\n{x=1,m=2,a=3,s=4}")
	assert.ErrorContains(t, err, "unknown workflow")
}

func BenchmarkPart1(b *testing.B) { daytest.Bench(b, 19, Part1) }
func BenchmarkPart2(b *testing.B) { daytest.Bench(b, 19, Part2) }
