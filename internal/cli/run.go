// Run command for the aoc CLI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/aoc2023/internal/profile"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
	"github.com/mesh-intelligence/aoc2023/pkg/types"
)

// stdinInput is the --input value that reads the puzzle input from stdin.
const stdinInput = "-"

type runFlags struct {
	part       int
	input      string
	accept     bool
	profileDir string
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve days and print timed answers",
		Long: `Solve the given days, or every day with an input file when none are given.

Answers are checked against the answers file. --accept stores the answers of
this run as the known ones.`,
		Example: `  aoc run 5
  aoc run 7 --part 2
  aoc run 1 --input - < day01.txt
  aoc run --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDays(cmd, args, f)
		},
	}
	cmd.Flags().IntVarP(&f.part, "part", "p", 0, "run only this part (1 or 2)")
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "read the input from FILE, or stdin with -; needs exactly one day")
	cmd.Flags().BoolVar(&f.accept, "accept", false, "record this run's answers as correct")
	cmd.Flags().StringVar(&f.profileDir, "profile-dir", "", "write a heap profile here (heapprofile builds)")
	return cmd
}

// selectDays maps day arguments to registered days. No arguments selects
// every day.
func (a *app) selectDays(args []string) ([]puzzle.Day, error) {
	if len(args) == 0 {
		return a.registry.All(), nil
	}
	out := make([]puzzle.Day, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, userError(fmt.Errorf("day %q is not a number", arg))
		}
		d, err := a.registry.Get(n)
		if err != nil {
			return nil, userError(err)
		}
		out = append(out, d)
	}
	return out, nil
}

func partsFlag(part int) ([]int, error) {
	switch part {
	case 0:
		return nil, nil
	case 1, 2:
		return []int{part}, nil
	}
	return nil, userError(fmt.Errorf("part must be 1 or 2, got %d", part))
}

func (a *app) runDays(cmd *cobra.Command, args []string, f runFlags) (err error) {
	selected, err := a.selectDays(args)
	if err != nil {
		return err
	}
	parts, err := partsFlag(f.part)
	if err != nil {
		return err
	}

	if f.profileDir != "" {
		stopProfile, perr := profile.Start(f.profileDir)
		if perr != nil {
			return sysError(perr)
		}
		defer func() {
			stats, perr := stopProfile()
			if perr != nil && err == nil {
				err = sysError(perr)
			}
			if profile.Enabled {
				a.logger.Info("heap profile written",
					zap.String("dir", f.profileDir),
					zap.Uint64("total_alloc", stats.TotalAlloc),
					zap.Uint64("mallocs", stats.Mallocs))
			} else {
				a.logger.Warn("--profile-dir ignored: built without the heapprofile tag")
			}
		}()
	}

	results, err := a.solve(cmd.Context(), cmd, selected, parts, f.input)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return userError(fmt.Errorf("no inputs found in %s", a.cfg.InputDir))
	}

	answers, err := puzzle.LoadAnswers(a.cfg.AnswersFile)
	if err != nil {
		return userError(err)
	}
	p := newPrinter(cmd.OutOrStdout(), a.flags.jsonMode)
	var failed, wrong int
	for _, r := range results {
		v := answers.Check(r.Day, r.Part, r.Answer)
		if r.Failed() {
			failed++
			v = puzzle.Unknown
		} else if v == puzzle.Wrong {
			wrong++
		}
		if err := p.result(r, v); err != nil {
			return sysError(err)
		}
	}

	if f.accept {
		if err := a.accept(answers, results); err != nil {
			return err
		}
		p.message("answers saved to %s", a.cfg.AnswersFile)
		wrong = 0
	}
	if a.cfg.History {
		if err := a.record(results); err != nil {
			return err
		}
	}

	switch {
	case failed > 0:
		return userError(fmt.Errorf("%d part(s) failed", failed))
	case wrong > 0:
		return userError(fmt.Errorf("%d wrong answer(s)", wrong))
	}
	return nil
}

// solve runs one day against an explicit input, or the selected days
// against their files in the input directory.
func (a *app) solve(ctx context.Context, cmd *cobra.Command, selected []puzzle.Day, parts []int, input string) ([]types.Result, error) {
	runner := puzzle.NewRunner(a.logger, a.cfg.Workers)
	if input == "" {
		results, err := runner.RunAll(ctx, selected, puzzle.DirLoader(a.cfg.InputDir), parts)
		if err != nil {
			return nil, classify(err)
		}
		return results, nil
	}

	if len(selected) != 1 {
		return nil, userError(errors.New("--input needs exactly one day"))
	}
	text, err := a.readInput(cmd, input)
	if err != nil {
		return nil, err
	}
	results, err := runner.Run(ctx, selected[0], text, parts)
	if err != nil {
		return nil, classify(err)
	}
	return results, nil
}

func (a *app) readInput(cmd *cobra.Command, input string) (string, error) {
	if input == stdinInput {
		text, err := puzzle.ReadInput(cmd.InOrStdin())
		if err != nil {
			return "", sysError(err)
		}
		return text, nil
	}
	text, err := puzzle.ReadInputFile(input)
	if err != nil {
		return "", classify(err)
	}
	return text, nil
}

// classify maps runner and loader errors to exit codes.
func classify(err error) error {
	switch {
	case errors.Is(err, puzzle.ErrUnknownPart),
		errors.Is(err, puzzle.ErrUnknownDay),
		errors.Is(err, puzzle.ErrInputMissing),
		errors.Is(err, context.Canceled):
		return userError(err)
	}
	return sysError(err)
}

func (a *app) accept(answers puzzle.Answers, results []types.Result) error {
	for _, r := range results {
		if !r.Failed() {
			answers.Set(r.Day, r.Part, r.Answer)
		}
	}
	if err := answers.Save(a.cfg.AnswersFile); err != nil {
		return sysError(fmt.Errorf("save answers: %w", err))
	}
	return nil
}

// record appends results to the history store.
func (a *app) record(results []types.Result) error {
	store := a.newStore()
	if err := store.Attach(a.cfg); err != nil {
		return sysError(fmt.Errorf("attach history: %w", err))
	}
	defer store.Detach()

	if err := store.Record(results...); err != nil {
		return sysError(fmt.Errorf("record history: %w", err))
	}
	a.logger.Debug("history recorded", zap.Int("results", len(results)))
	return nil
}
