package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfmanager/internal/config"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, err := New(config.LogConfig{Level: "warn", Output: path})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("visible")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud", Output: "stderr"})
	assert.Error(t, err)
}

func TestNew_Development(t *testing.T) {
	logger, err := New(config.LogConfig{Development: true, Output: "stderr"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))
}
