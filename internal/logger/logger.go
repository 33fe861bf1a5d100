// Package logger holds the application-wide zap logger.
package logger

import (
	"go.uber.org/zap"
)

// DefaultLevel is used when no level is configured
const DefaultLevel = "info"

// Log is the shared logger. It is a no-op until Initialize is called, so
// packages and tests can log unconditionally.
var Log = zap.NewNop()

// Initialize builds a production logger at the given level ("debug", "info", ...)
func Initialize(level string) error {
	if level == "" {
		level = DefaultLevel
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = zl
	return nil
}

// Sync flushes buffered entries; errors from syncing a console are ignored
func Sync() {
	_ = Log.Sync()
}
