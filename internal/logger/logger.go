package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op until Init is called so that
// packages and tests can log unconditionally.
var Log = zap.NewNop()

// Options controls how Init builds the logger.
type Options struct {
	Level       string // debug, info, warn, error
	Development bool   // console encoder, caller and stack traces on warn
}

// Init builds the global logger from opts and replaces Log.
func Init(opts Options) error {
	var cfg zap.Config
	if opts.Development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if opts.Level != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(opts.Level)); err != nil {
			return fmt.Errorf("logger: invalid level %q: %w", opts.Level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("logger: build: %w", err)
	}
	Log = l
	return nil
}

// Sync flushes buffered entries. Errors from syncing stderr on some platforms
// are not interesting to callers, so they are dropped.
func Sync() {
	_ = Log.Sync()
}
