package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murajaa/murajaa/internal/config"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	cfg := &config.Config{Env: "production", Log: config.Log{File: path, Level: "info"}}

	log, err := New(cfg)
	require.NoError(t, err)
	log.Info("hello")
	log.Debug("hidden")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_DevelopmentDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.log")
	cfg := &config.Config{Env: "development", Log: config.Log{File: path, Level: "debug"}}

	log, err := New(cfg)
	require.NoError(t, err)
	log.Debug("visible")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
}

func TestNew_BadLevel(t *testing.T) {
	cfg := &config.Config{Log: config.Log{File: filepath.Join(t.TempDir(), "x.log"), Level: "chatty"}}
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestDefaultLogPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	p, err := DefaultLogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "murajaa", "murajaa.log"), p)
}
