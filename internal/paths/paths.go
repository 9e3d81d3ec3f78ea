// Package paths resolves the configuration, data and puzzle input
// directories. Each follows the same precedence: command-line flag, then
// the config file value where one applies, then an AOC_* environment
// variable, then a default.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName is the directory created under the platform config and data roots.
const appName = "aoc2023"

// DefaultInputDirName is the CWD-relative directory holding dayNN.txt files.
const DefaultInputDirName = "inputs"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "AOC_CONFIG_DIR"
	EnvDataDir   = "AOC_DATA_DIR"
	EnvInputDir  = "AOC_INPUT_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/aoc2023 (fallback ~/.config/aoc2023)
// macOS:   ~/Library/Application Support/aoc2023
// Windows: %APPDATA%/aoc2023
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		return xdgDir("XDG_CONFIG_HOME", ".config")
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}

// DefaultDataDir returns the platform-specific default directory for the
// run history database.
//
// Linux:   $XDG_DATA_HOME/aoc2023 (fallback ~/.local/share/aoc2023)
// macOS and Windows: same as the config dir.
func DefaultDataDir() (string, error) {
	if runtime.GOOS == "linux" {
		return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}

func xdgDir(env, fallback string) (string, error) {
	if xdg := os.Getenv(env); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback, appName), nil
}

// ResolveConfigDir returns the configuration directory: flag >
// AOC_CONFIG_DIR > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	return resolve(flag, "", EnvConfigDir, DefaultConfigDir)
}

// ResolveDataDir returns the data directory: flag > config value >
// AOC_DATA_DIR > DefaultDataDir().
func ResolveDataDir(flag, configValue string) (string, error) {
	return resolve(flag, configValue, EnvDataDir, DefaultDataDir)
}

// ResolveInputDir returns the input directory: flag > config value >
// AOC_INPUT_DIR > $(CWD)/inputs.
func ResolveInputDir(flag, configValue string) (string, error) {
	return resolve(flag, configValue, EnvInputDir, func() (string, error) {
		return filepath.Abs(DefaultInputDirName)
	})
}

func resolve(flag, configValue, env string, fallback func() (string, error)) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if v := os.Getenv(env); v != "" {
		return filepath.Abs(v)
	}
	return fallback()
}
