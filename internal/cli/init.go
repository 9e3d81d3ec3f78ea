// Init command for the aoc CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/aoc2023/pkg/types"
)

func newInitCmd(a *app) *cobra.Command {
	var history bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the configuration, input directory and history database",
		Long: `Write config.yaml with the resolved settings if it does not exist, create
the input directory and, when history is enabled, the history database.
Running init again leaves an existing config.yaml untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("history") {
				cfg.History = history
			}
			return a.initialize(cmd, cfg)
		},
	}
	cmd.Flags().BoolVar(&history, "history", false, "enable run history in the written config")
	return cmd
}

func (a *app) initialize(cmd *cobra.Command, cfg types.Config) error {
	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}
	path := filepath.Join(a.configDir, configFileExt)
	written, err := writeConfigIfMissing(path, cfg)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}
	if err := os.MkdirAll(cfg.InputDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create input directory: %w", err))
	}

	if cfg.History {
		store := a.newStore()
		if err := store.Attach(cfg); err != nil {
			return sysError(fmt.Errorf("initialize history: %w", err))
		}
		if err := store.Detach(); err != nil {
			return sysError(fmt.Errorf("finalize history: %w", err))
		}
	}

	p := newPrinter(cmd.OutOrStdout(), a.flags.jsonMode)
	if written {
		p.message("wrote %s", path)
	} else {
		p.message("%s already exists", path)
	}
	p.message("inputs go in %s", cfg.InputDir)
	return nil
}

// writeConfigIfMissing creates config.yaml from cfg if the file does not
// exist. It reports whether it wrote the file.
func writeConfigIfMissing(path string, cfg types.Config) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
