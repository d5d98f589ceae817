package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestDefaultLoggerIsUsable(t *testing.T) {
	if Log == nil {
		t.Fatal("Log should never be nil")
	}
	Log.Info("no-op logger accepts entries")
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	if err := Init(Options{Level: "chatty"}); err == nil {
		t.Error("expected an error for an unknown level")
	}
	if Log != prev {
		t.Error("Log should be untouched when Init fails")
	}
}

func TestInitDevelopment(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	if err := Init(Options{Level: "debug", Development: true}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if !Log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level should be enabled")
	}
}
