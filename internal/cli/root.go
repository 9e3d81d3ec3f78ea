// Package cli implements the aoc command-line interface: running, timing
// and benchmarking the puzzle solutions, and querying the run history.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/aoc2023/internal/days"
	"github.com/mesh-intelligence/aoc2023/internal/logging"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
	"github.com/mesh-intelligence/aoc2023/pkg/aoc"
	"github.com/mesh-intelligence/aoc2023/pkg/sqlite"
	"github.com/mesh-intelligence/aoc2023/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	inputDir  string
	workers   int
	jsonMode  bool
	verbose   bool
	logJSON   bool
}

// app is the state one invocation shares between its commands.
type app struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
	logger    *zap.Logger
	registry  *puzzle.Registry
	newStore  func() types.Store
}

func newApp() *app {
	return &app{
		logger:   zap.NewNop(),
		registry: days.Registry(),
		newStore: sqlite.NewStore,
	}
}

// NewRootCmd creates the top-level "aoc" command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2023 solutions",
		Long: `aoc runs, times and benchmarks the Advent of Code 2023 solutions.

Puzzle inputs are read from <input-dir>/dayNN.txt. Runs can be recorded in a
local history database and checked against an answers file.`,
		Version:      aoc.Version,
		SilenceUsage: true,
		// Errors are printed once by Execute.
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "history database directory (default: platform data dir)")
	pf.StringVar(&a.flags.inputDir, "input-dir", "", "puzzle input directory (default: ./inputs)")
	pf.IntVar(&a.flags.workers, "workers", 0, "days to run concurrently (default from config)")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output JSON lines")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&a.flags.logJSON, "log-json", false, "log as JSON")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newRunCmd(a))
	root.AddCommand(newBenchCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newHistoryCmd(a))
	root.AddCommand(newWatchCmd(a))

	return root
}

// setup builds the logger and loads the configuration before any command
// runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	opts := logging.Options{Verbose: a.flags.verbose, JSON: a.flags.logJSON}
	if w := cmd.ErrOrStderr(); w == io.Writer(os.Stderr) {
		logger, err := logging.New(opts)
		if err != nil {
			return sysError(err)
		}
		a.logger = logger
	} else {
		a.logger = logging.NewWriter(w, opts)
	}

	configDir, cfg, err := resolveConfig(a.flags)
	if err != nil {
		return err
	}
	a.configDir = configDir
	a.cfg = cfg
	a.logger.Debug("config loaded",
		zap.String("config_dir", configDir),
		zap.String("input_dir", cfg.InputDir),
		zap.String("data_dir", cfg.DataDir),
		zap.Bool("history", cfg.History),
		zap.Int("workers", cfg.Workers))
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "error:", err)
	}
	return exitCode(err)
}

// exitError carries the exit code a failure should produce.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// userError marks err as caused by the invocation or the puzzle input.
func userError(err error) error {
	return &exitError{code: exitUserError, err: err}
}

// sysError marks err as an environment failure: files, the store.
func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// exitCode maps an error to an exit code. Errors cobra raises itself (bad
// flags, wrong argument counts) are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
