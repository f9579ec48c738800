// SPDX-License-Identifier: MIT

// Package logger holds the process-wide zap logger used by the shell and the
// CLI. Library code (package matrix) never reads the global; it receives a
// *zap.Logger through matrix.WithLogger instead.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger instance.
	Logger *zap.SugaredLogger
	// JSONOutput records whether Initialize selected the JSON encoder.
	JSONOutput bool
)

func init() {
	// Safe no-op until Initialize is called.
	Logger = nopLogger()
}

func nopLogger() *zap.SugaredLogger { return zap.NewNop().Sugar() }

// Initialize sets up the global logger writing to stderr.
// verbosity follows VerbosityToLevel.
func Initialize(jsonOutput bool, verbosity int) error {
	return InitializeTo(os.Stderr, jsonOutput, verbosity)
}

// InitializeTo is Initialize with an explicit sink. Logs never go to the
// shell's stdout, so matrix output stays machine-readable.
func InitializeTo(w io.Writer, jsonOutput bool, verbosity int) error {
	JSONOutput = jsonOutput

	var enc zapcore.Encoder
	if jsonOutput {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), VerbosityToLevel(verbosity))
	Logger = zap.New(core).Sugar()

	return nil
}

// Cleanup flushes any buffered log entries.
func Cleanup() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	sh := shell.New(cfg, shell.WithLogger(logger.ComponentLogger("shell")))
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// Debugw logs a debug message with structured fields
func Debugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Debugw(msg, keysAndValues...)
	}
}

// Infow logs an info message with structured fields
func Infow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Infow(msg, keysAndValues...)
	}
}

// Warnw logs a warning message with structured fields
func Warnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Warnw(msg, keysAndValues...)
	}
}

// Errorw logs an error message with structured fields
func Errorw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Errorw(msg, keysAndValues...)
	}
}
