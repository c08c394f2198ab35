// Package logging configures the process-wide logger. Diagnostics go to
// stderr so report output on stdout stays clean for piping.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop().Sugar()

// Setup initializes the global logger. Verbose enables debug level,
// jsonOutput switches from console to JSON encoding.
func Setup(verbose, jsonOutput bool) error {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if jsonOutput {
		config.Encoding = "json"
	}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	built, err := config.Build()
	if err != nil {
		return err
	}
	logger = built.Sugar()
	return nil
}

// S returns the process-wide sugared logger. Before Setup it is a no-op
// logger, which keeps library use of the internal packages quiet.
func S() *zap.SugaredLogger {
	return logger
}

// Sync flushes buffered log entries.
func Sync() {
	_ = logger.Sync()
}
