package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "server.log")

	logger, err := NewLogger(LoggerConfig{Level: "info", OutputPath: path, Format: "json"})
	require.NoError(t, err)

	logger.Info("service started")
	require.NoError(t, logger.Sync())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"service started"`)
	assert.Contains(t, string(content), `"timestamp"`)
}

func TestNewLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger, err := NewLogger(LoggerConfig{Level: "verbose", OutputPath: "stdout", Format: "json"})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNewLogger_RespectsConfiguredLevel(t *testing.T) {
	logger, err := NewLogger(LoggerConfig{Level: "error", OutputPath: "stderr", Format: "console"})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}
