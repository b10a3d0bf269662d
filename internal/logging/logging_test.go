package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRequiresFilePath(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gitgrab.log")

	logger, err := New(Config{FilePath: path, Level: "debug"})
	require.NoError(t, err)

	logger.Info("repository detected", zap.String("url", "https://github.com/a/b.git"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "repository detected")
	assert.Contains(t, string(data), "https://github.com/a/b.git")
}

func TestNewBadLevelDefaultsToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gitgrab.log")

	logger, err := New(Config{FilePath: path, Level: "shouting"})
	require.NoError(t, err)

	logger.Debug("suppressed")
	logger.Info("kept")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "suppressed")
	assert.Contains(t, string(data), "kept")
}
