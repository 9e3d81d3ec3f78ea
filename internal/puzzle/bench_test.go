package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBench(t *testing.T) {
	if testing.Short() {
		t.Skip("runs testing.Benchmark")
	}
	d := Day{Number: 1, Part1: lenSolver(3)}

	res, err := Bench(d, 1, "abc")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Day)
	assert.Equal(t, 1, res.Part)
	assert.Equal(t, 9, res.Answer)
	assert.Positive(t, res.Iterations)
}

func TestBench_Errors(t *testing.T) {
	d := Day{Number: 1, Part1: func(string) (int, error) { return 0, Invalid("nope") }}

	_, err := Bench(d, 1, "")
	assert.ErrorContains(t, err, "nope")

	_, err = Bench(d, 2, "")
	assert.ErrorIs(t, err, ErrUnknownPart)
}
