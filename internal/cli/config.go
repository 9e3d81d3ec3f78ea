// Configuration loading for the aoc CLI: config.yaml, AOC_* env and flags.
package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/aoc2023/internal/paths"
	"github.com/mesh-intelligence/aoc2023/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "AOC"

	cfgKeyInputDir    = "input_dir"
	cfgKeyDataDir     = "data_dir"
	cfgKeyHistory     = "history"
	cfgKeyWorkers     = "workers"
	cfgKeyAnswersFile = "answers_file"

	// defaultAnswersFile lives next to the inputs unless configured.
	defaultAnswersFile = "answers.yaml"
)

// loadConfig reads config.yaml from configDir using Viper. A missing
// config.yaml is not an error. history, workers and answers_file can be
// overridden with AOC_HISTORY, AOC_WORKERS and AOC_ANSWERS_FILE; the
// directory keys are resolved by package paths.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyWorkers, types.DefaultWorkers)
	v.SetDefault(cfgKeyHistory, false)
	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyHistory, cfgKeyWorkers, cfgKeyAnswersFile} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// resolveConfig combines flags, config.yaml, the environment and defaults
// into a validated Config.
func resolveConfig(f rootFlags) (string, types.Config, error) {
	configDir, err := paths.ResolveConfigDir(f.configDir)
	if err != nil {
		return "", types.Config{}, sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return "", types.Config{}, userError(err)
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return "", types.Config{}, userError(fmt.Errorf("decode config: %w", err))
	}
	if cfg.InputDir, err = paths.ResolveInputDir(f.inputDir, v.GetString(cfgKeyInputDir)); err != nil {
		return "", types.Config{}, sysError(fmt.Errorf("resolve input dir: %w", err))
	}
	if cfg.DataDir, err = paths.ResolveDataDir(f.dataDir, v.GetString(cfgKeyDataDir)); err != nil {
		return "", types.Config{}, sysError(fmt.Errorf("resolve data dir: %w", err))
	}
	if cfg.AnswersFile == "" {
		cfg.AnswersFile = filepath.Join(cfg.InputDir, defaultAnswersFile)
	} else if !filepath.IsAbs(cfg.AnswersFile) {
		cfg.AnswersFile = filepath.Join(configDir, cfg.AnswersFile)
	}
	if f.workers > 0 {
		cfg.Workers = f.workers
	}
	if err := cfg.Validate(); err != nil {
		return "", types.Config{}, userError(fmt.Errorf("config: %w", err))
	}
	return configDir, cfg, nil
}
