// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logger holds the process-wide logger of the visitgen tool.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger. It is a no-op until Initialize runs, so
// library code may log unconditionally.
var Logger = zap.NewNop().Sugar()

// Initialize replaces Logger. JSON output uses the production encoder;
// otherwise a plain console encoder writes to stderr, keeping stdout free
// for generated source.
func Initialize(jsonOutput, verbose bool) error {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		z, err := config.Build()
		if err != nil {
			return err
		}
		Logger = z.Sugar()
		return nil
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	Logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(os.Stderr),
		level,
	)).Sugar()
	return nil
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync() {
	_ = Logger.Sync()
}
