package logging_test

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/Tiliavir/dial/internal/config"
	"github.com/Tiliavir/dial/internal/logging"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		cfg     config.LogConfig
		enabled zapcore.Level
		hidden  zapcore.Level
	}{
		{config.LogConfig{Level: "info"}, zapcore.InfoLevel, zapcore.DebugLevel},
		{config.LogConfig{Level: "debug", Development: true}, zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{config.LogConfig{Level: "error"}, zapcore.ErrorLevel, zapcore.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.cfg.Level, func(t *testing.T) {
			log, err := logging.New(tt.cfg)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if !log.Core().Enabled(tt.enabled) {
				t.Errorf("level %v should be enabled", tt.enabled)
			}
			if log.Core().Enabled(tt.hidden) {
				t.Errorf("level %v should be disabled", tt.hidden)
			}
		})
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := logging.New(config.LogConfig{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}
