package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		for _, level := range []string{"debug", "info", "warn", "error", "invalid"} {
			log, err := New(level, format)
			require.NoError(t, err, "%s/%s", format, level)
			assert.NotNil(t, log)
		}
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel(" warn "))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestLoggerLevelsAndFields(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.InfoLevel)
	log := NewFromZap(zap.New(core)).With("run", "aluno_202503071405")

	log.Debug(ctx, "hidden")
	log.Info(ctx, "stage %s done", "extracting")
	log.Warn(ctx, "rubric unavailable")
	log.Error(ctx, "failed: %v", "boom")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "stage extracting done", entries[0].Message)
	assert.Equal(t, "aluno_202503071405", entries[0].ContextMap()["run"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "failed: boom", entries[2].Message)
}

func TestNop(t *testing.T) {
	log := NewNop()
	log.Info(context.Background(), "nothing %d", 1)
	assert.NoError(t, log.Sync())
}
