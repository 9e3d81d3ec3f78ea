package puzzle

import (
	"fmt"
	"testing"
	"time"
)

// BenchResult summarises a benchmark of one part.
type BenchResult struct {
	Day         int           `json:"day"`
	Part        int           `json:"part"`
	Answer      int           `json:"answer"`
	Iterations  int           `json:"iterations"`
	PerOp       time.Duration `json:"ns_per_op"`
	BytesPerOp  int64         `json:"bytes_per_op"`
	AllocsPerOp int64         `json:"allocs_per_op"`
}

// Bench runs one part repeatedly with testing.Benchmark and reports time
// and allocations per call. The part is solved once up front so that a
// failing solver is reported instead of benchmarked.
func Bench(day Day, part int, input string) (BenchResult, error) {
	solve, err := day.Solver(part)
	if err != nil {
		return BenchResult{}, err
	}
	answer, err := safeSolve(solve, input)
	if err != nil {
		return BenchResult{}, fmt.Errorf("day %d part %d: %w", day.Number, part, err)
	}

	res := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = solve(input)
		}
	})

	return BenchResult{
		Day:         day.Number,
		Part:        part,
		Answer:      answer,
		Iterations:  res.N,
		PerOp:       time.Duration(res.NsPerOp()),
		BytesPerOp:  res.AllocedBytesPerOp(),
		AllocsPerOp: res.AllocsPerOp(),
	}, nil
}
