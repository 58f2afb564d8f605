package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
	}
	for level, want := range cases {
		l := New(level, "json")
		assert.True(t, l.Core().Enabled(want), level)
		if want > zapcore.DebugLevel {
			assert.False(t, l.Core().Enabled(want-1), level)
		}
	}
}

func TestSlogSharesLevel(t *testing.T) {
	h := Slog(New("warn", "console"))
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
}
