// Bench command for the aoc CLI.
package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

func newBenchCmd(a *app) *cobra.Command {
	var part int
	cmd := &cobra.Command{
		Use:   "bench [day...]",
		Short: "Benchmark solutions against their inputs",
		Long: `Run each part repeatedly and report time and allocations per solve.

Days without an input file are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := a.selectDays(args)
			if err != nil {
				return err
			}
			parts, err := partsFlag(part)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout(), a.flags.jsonMode)
			ran := 0
			for _, d := range selected {
				if err := cmd.Context().Err(); err != nil {
					return userError(err)
				}
				input, err := puzzle.LoadInput(a.cfg.InputDir, d.Number)
				if errors.Is(err, puzzle.ErrInputMissing) {
					a.logger.Debug("skipping day without input", zap.Int("day", d.Number))
					continue
				}
				if err != nil {
					return sysError(err)
				}
				want := parts
				if want == nil {
					want = d.Parts()
				}
				for _, pt := range want {
					res, err := puzzle.Bench(d, pt, input)
					if err != nil {
						return classify(err)
					}
					if err := p.bench(res); err != nil {
						return sysError(err)
					}
					ran++
				}
			}
			if ran == 0 {
				p.message("no inputs found in %s", a.cfg.InputDir)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&part, "part", "p", 0, "benchmark only this part (1 or 2)")
	return cmd
}
