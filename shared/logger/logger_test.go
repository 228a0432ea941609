package logger_test

import (
	"bytes"
	"testing"

	"github.com/on-the-ground/memo_ive_go/shared/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestZapLevel(t *testing.T) {
	tests := map[logger.LogLevel]zapcore.Level{
		logger.LogDebug: zap.DebugLevel,
		logger.LogInfo:  zap.InfoLevel,
		logger.LogWarn:  zap.WarnLevel,
		logger.LogError: zap.ErrorLevel,
	}
	for level, want := range tests {
		got, err := level.ZapLevel()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := logger.LogLevel("verbose").ZapLevel()
	assert.ErrorIs(t, err, logger.ErrUnknownLogLevel)
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewConsole(&buf, logger.LogInfo)
	require.NoError(t, err)

	log.Debug("cache hit")
	log.Info("cache ready", zap.Int("capacity", 2))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "cache hit")
	assert.Contains(t, out, "cache ready")
	assert.Contains(t, out, `{"capacity": 2}`)
}

func TestNewConsole_UnknownLevel(t *testing.T) {
	log, err := logger.NewConsole(&bytes.Buffer{}, "loud")
	assert.ErrorIs(t, err, logger.ErrUnknownLogLevel)
	assert.Nil(t, log)
}
