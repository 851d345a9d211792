package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptionsDefaults(t *testing.T) {
	opts, err := LoadOptions("")
	require.NoError(t, err)

	assert.Equal(t, DefaultSnapshotPath, opts.Snapshot)
	assert.Equal(t, "warn", opts.LogLevel)
	assert.Equal(t, "console", opts.LogFormat)
	assert.Equal(t, "dark", opts.MarkdownStyle)
}

func TestLoadOptionsFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "diary.toml")

	content := `
snapshot = "/var/lib/diary/prefs.toml"
log_level = "debug"
editor = "nano"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	opts, err := LoadOptions(configPath)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/diary/prefs.toml", opts.Snapshot)
	assert.Equal(t, "debug", opts.LogLevel)
	assert.Equal(t, "nano", opts.Editor)
}

func TestLoadOptionsEnv(t *testing.T) {
	t.Setenv("DIARY_LOG_LEVEL", "error")
	opts, err := LoadOptions("")
	require.NoError(t, err)
	assert.Equal(t, "error", opts.LogLevel)
}

func TestLoadOptionsMissingExplicitFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
