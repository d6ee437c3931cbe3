package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/bookmgr/internal/config"
	"github.com/blackwell-systems/bookmgr/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bookmgr.log")
	logger, closeLog, err := logging.New(config.LogConfig{Level: "debug", File: path})
	require.NoError(t, err)

	logger.Debug("route changed", zap.String("to", "/review?id=5"))
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)
	assert.Contains(t, line, `"msg":"route changed"`)
	assert.Contains(t, line, `"to":"/review?id=5"`)
	assert.Contains(t, line, `"lvl":"debug"`)
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmgr.log")
	logger, closeLog, err := logging.New(config.LogConfig{Level: "warn", File: path})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "hidden"))
	assert.True(t, strings.Contains(string(data), "shown"))
}

func TestNew_NoFileIsNop(t *testing.T) {
	logger, closeLog, err := logging.New(config.LogConfig{})
	require.NoError(t, err)
	logger.Info("nowhere")
	assert.NoError(t, closeLog())
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := logging.New(config.LogConfig{Level: "chatty", File: filepath.Join(t.TempDir(), "x.log")})
	assert.Error(t, err)
}
