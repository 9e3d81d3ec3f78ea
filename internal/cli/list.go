// List command for the aoc CLI.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List solved days and whether their inputs are present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd.OutOrStdout(), a.flags.jsonMode)
			for _, d := range a.registry.All() {
				_, err := os.Stat(puzzle.InputPath(a.cfg.InputDir, d.Number))
				if err := p.day(d, err == nil); err != nil {
					return sysError(err)
				}
			}
			return nil
		},
	}
}
