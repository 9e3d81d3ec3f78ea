// Package logging builds the zap logger the CLI threads through commands.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select the logger's level and encoding.
type Options struct {
	Verbose bool // debug level instead of info
	JSON    bool // production JSON encoding instead of console
}

// New returns a logger writing to stderr.
func New(opts Options) (*zap.Logger, error) {
	var config zap.Config
	if opts.JSON {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	if opts.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// NewWriter returns a logger writing console output to w. Commands use it
// when their error stream is redirected, as in tests.
func NewWriter(w io.Writer, opts Options) *zap.Logger {
	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	var encoder zapcore.Encoder
	if opts.JSON {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(enc)
	}
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), level))
}
