// Watch command for the aoc CLI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// watchDebounce collapses the burst of events an editor save produces.
const watchDebounce = 200 * time.Millisecond

func newWatchCmd(a *app) *cobra.Command {
	var part int
	cmd := &cobra.Command{
		Use:   "watch <day>",
		Short: "Re-run a day whenever its input file changes",
		Long: `Solve a day, then solve it again every time <input-dir>/dayNN.txt is
written. Stop with Ctrl-C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := a.selectDays(args)
			if err != nil {
				return err
			}
			if _, err := partsFlag(part); err != nil {
				return err
			}
			d := selected[0]

			w, err := fsnotify.NewWatcher()
			if err != nil {
				return sysError(fmt.Errorf("create watcher: %w", err))
			}
			defer w.Close()
			// Editors often replace the file, so watch the directory.
			if err := w.Add(a.cfg.InputDir); err != nil {
				return sysError(fmt.Errorf("watch %s: %w", a.cfg.InputDir, err))
			}

			rerun := func() error {
				err := a.runDays(cmd, []string{args[0]}, runFlags{part: part})
				if err != nil && exitCode(err) == exitSysError {
					return err
				}
				if err != nil {
					a.logger.Warn("run failed", zap.Int("day", d.Number), zap.Error(err))
				}
				return nil
			}
			if err := rerun(); err != nil {
				return err
			}
			a.logger.Info("watching for changes",
				zap.String("file", puzzle.InputPath(a.cfg.InputDir, d.Number)))

			err = watchLoop(cmd.Context(), w.Events, w.Errors, puzzle.InputFile(d.Number), watchDebounce, rerun)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().IntVarP(&part, "part", "p", 0, "run only this part (1 or 2)")
	return cmd
}

// watchLoop calls rerun once the file named name has been quiet for
// debounce after a write or create. It returns when ctx is done, a channel
// closes, or rerun fails.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, name string, debounce time.Duration, rerun func() error) error {
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)

		case <-timer.C:
			if err := rerun(); err != nil {
				return err
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
