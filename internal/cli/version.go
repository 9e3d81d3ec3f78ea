// Version command for the aoc CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/aoc2023/pkg/aoc"
)

const modulePath = "github.com/mesh-intelligence/aoc2023"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the aoc version",
		// Needs no configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "aoc v%s\nmodule: %s\n", aoc.Version, modulePath)
			return nil
		},
	}
}
