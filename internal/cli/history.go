// History command for the aoc CLI.
package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/aoc2023/pkg/types"
)

// jsonlStore is implemented by stores that can move their history to and
// from JSON lines files.
type jsonlStore interface {
	ExportJSONL(path string) (int, error)
	ImportJSONL(path string) (int, error)
}

type historyFlags struct {
	limit      int
	latest     bool
	exportPath string
	importPath string
}

func newHistoryCmd(a *app) *cobra.Command {
	var f historyFlags
	cmd := &cobra.Command{
		Use:   "history [day]",
		Short: "Show recorded runs",
		Long: `Show recorded runs, newest first. --latest shows the last run of every
day and part. --export and --import copy the history to and from a JSON
lines file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := 0
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return userError(fmt.Errorf("day %q is not a number", args[0]))
				}
				day = n
			}
			return a.showHistory(cmd, day, f)
		},
	}
	cmd.Flags().IntVarP(&f.limit, "limit", "n", 20, "maximum runs to show; 0 shows all")
	cmd.Flags().BoolVar(&f.latest, "latest", false, "show the latest run of each day and part")
	cmd.Flags().StringVar(&f.exportPath, "export", "", "write the history to a JSON lines file")
	cmd.Flags().StringVar(&f.importPath, "import", "", "merge runs from a JSON lines file")
	cmd.MarkFlagsMutuallyExclusive("export", "import", "latest")
	return cmd
}

func (a *app) showHistory(cmd *cobra.Command, day int, f historyFlags) error {
	store := a.newStore()
	if err := store.Attach(a.cfg); err != nil {
		return sysError(fmt.Errorf("attach history: %w", err))
	}
	defer store.Detach()

	p := newPrinter(cmd.OutOrStdout(), a.flags.jsonMode)
	if f.exportPath != "" || f.importPath != "" {
		js, ok := store.(jsonlStore)
		if !ok {
			return sysError(errors.New("history store cannot export or import"))
		}
		if f.exportPath != "" {
			n, err := js.ExportJSONL(f.exportPath)
			if err != nil {
				return sysError(err)
			}
			p.message("exported %d run(s) to %s", n, f.exportPath)
			return nil
		}
		n, err := js.ImportJSONL(f.importPath)
		if err != nil {
			return sysError(err)
		}
		p.message("imported %d run(s) from %s", n, f.importPath)
		return nil
	}

	var (
		results []types.Result
		err     error
	)
	if f.latest {
		results, err = store.Latest()
	} else {
		results, err = store.History(day, f.limit)
	}
	if err != nil {
		return sysError(fmt.Errorf("read history: %w", err))
	}
	for _, r := range results {
		if f.latest && day != 0 && r.Day != day {
			continue
		}
		if err := p.history(r); err != nil {
			return sysError(err)
		}
	}
	if len(results) == 0 {
		p.message("no runs recorded")
	}
	return nil
}
