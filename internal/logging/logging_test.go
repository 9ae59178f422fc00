package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Disabled(t *testing.T) {
	logger, err := New(false, "debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("disabled logger should not log")
	}
}

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level      string
		enabled    zapcore.Level
		suppressed zapcore.Level
	}{
		{"debug", zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"info", zapcore.InfoLevel, zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := New(true, tt.level)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer func() { _ = logger.Sync() }()
			if !logger.Core().Enabled(tt.enabled) {
				t.Errorf("level %s should be enabled", tt.enabled)
			}
			if logger.Core().Enabled(tt.suppressed) {
				t.Errorf("level %s should be suppressed", tt.suppressed)
			}
		})
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New(true, "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
