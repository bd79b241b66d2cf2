package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Client.HTTPTimeoutSeconds)
	assert.False(t, cfg.Logging.Debug)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("client:\n  http_timeout_seconds: 5\nlogging:\n  debug: true\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Client.HTTPTimeoutSeconds)
	assert.True(t, cfg.Logging.Debug)
}

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()
	assert.Equal(t, 30, cfg.Client.HTTPTimeoutSeconds)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("READURL_LOG_DEBUG", "1")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.True(t, cfg.Logging.Debug)
}
