package puzzle

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/aoc2023/pkg/types"
)

// Runner executes and times puzzle parts.
type Runner struct {
	logger  *zap.Logger
	workers int

	// Overridable in tests.
	now   func() time.Time
	newID func() string
}

// NewRunner returns a Runner that runs at most workers days at once in RunAll.
func NewRunner(logger *zap.Logger, workers int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = types.DefaultWorkers
	}
	return &Runner{
		logger:  logger,
		workers: workers,
		now:     time.Now,
		newID:   generateRunID,
	}
}

// generateRunID returns a UUID v7 so that ids sort by creation time.
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Run solves the requested parts of day against input, in order. A nil or
// empty parts slice runs every part the day has. Solver failures are
// reported in the Result; the returned error is reserved for unknown parts
// and cancellation.
func (r *Runner) Run(ctx context.Context, day Day, input string, parts []int) ([]types.Result, error) {
	if len(parts) == 0 {
		parts = day.Parts()
	}
	results := make([]types.Result, 0, len(parts))
	for _, part := range parts {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		solve, err := day.Solver(part)
		if err != nil {
			return results, err
		}

		started := r.now()
		answer, err := safeSolve(solve, input)
		elapsed := r.now().Sub(started)

		res := types.Result{
			RunID:     r.newID(),
			Day:       day.Number,
			Part:      part,
			Answer:    answer,
			Duration:  elapsed,
			StartedAt: started.UTC(),
		}
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) && pe.Day == 0 {
				pe.Day = day.Number
			}
			res.Err = err.Error()
			r.logger.Debug("solver failed",
				zap.Int("day", day.Number),
				zap.Int("part", part),
				zap.Error(err))
		} else {
			r.logger.Debug("solved",
				zap.Int("day", day.Number),
				zap.Int("part", part),
				zap.Int("answer", answer),
				zap.Duration("took", elapsed))
		}
		results = append(results, res)
	}
	return results, nil
}

// safeSolve turns a solver panic into an error so one broken day does not
// take the whole run down.
func safeSolve(solve SolveFunc, input string) (answer int, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("solver panicked: %v\n%s", p, debug.Stack())
		}
	}()
	return solve(input)
}

// RunAll runs days concurrently, at most r.workers at a time, loading each
// day's input with load. Days whose input is missing are skipped with a
// warning. Results are ordered by day, then part. parts restricts which
// parts run; nil means all.
func (r *Runner) RunAll(ctx context.Context, days []Day, load Loader, parts []int) ([]types.Result, error) {
	slots := make([][]types.Result, len(days))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, d := range days {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			want := filterParts(d, parts)
			if len(want) == 0 {
				return nil
			}
			input, err := load(d.Number)
			if err != nil {
				if errors.Is(err, ErrInputMissing) {
					r.logger.Warn("skipping day without input", zap.Int("day", d.Number), zap.Error(err))
					return nil
				}
				return fmt.Errorf("day %d: %w", d.Number, err)
			}
			res, err := r.Run(gctx, d, input, want)
			slots[i] = res
			return err
		})
	}
	err := g.Wait()

	var out []types.Result
	for _, s := range slots {
		out = append(out, s...)
	}
	slices.SortStableFunc(out, func(a, b types.Result) int {
		if a.Day != b.Day {
			return a.Day - b.Day
		}
		return a.Part - b.Part
	})
	return out, err
}

// filterParts keeps only the requested parts the day implements.
func filterParts(d Day, parts []int) []int {
	have := d.Parts()
	if len(parts) == 0 {
		return have
	}
	var out []int
	for _, p := range parts {
		if slices.Contains(have, p) {
			out = append(out, p)
		}
	}
	return out
}
