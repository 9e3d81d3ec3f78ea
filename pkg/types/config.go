package types

import "errors"

// Config holds runner settings read from config.yaml, the environment and flags.
type Config struct {
	InputDir    string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`
	DataDir     string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
	AnswersFile string `json:"answers_file,omitempty" yaml:"answers_file,omitempty" mapstructure:"answers_file"`
	History     bool   `json:"history" yaml:"history" mapstructure:"history"`
	Workers     int    `json:"workers" yaml:"workers" mapstructure:"workers"`
}

// DefaultWorkers is the number of days run at once when no source sets it.
const DefaultWorkers = 4

// Config validation errors.
var (
	ErrInputDirEmpty  = errors.New("input directory must not be empty")
	ErrWorkersInvalid = errors.New("workers must be positive")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return ErrInputDirEmpty
	}
	if c.Workers <= 0 {
		return ErrWorkersInvalid
	}
	return nil
}
