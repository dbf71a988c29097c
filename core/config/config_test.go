package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 30, cfg.Database.TimeoutSeconds)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "lists", cfg.Storage.Bucket)
	assert.Equal(t, "lists/seed.json", cfg.Lists.SeedObject)
	assert.Equal(t, "table", cfg.Lists.Usage)
	assert.True(t, cfg.Feed.Enabled)
	assert.Equal(t, "stories", cfg.Feed.Table)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LISTS_USAGE", "collection")
	t.Setenv("STORAGE_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "collection", cfg.Lists.Usage)
	assert.True(t, cfg.Storage.Enabled)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FEED_TABLE=posts\nLOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("FEED_TABLE")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "posts", cfg.Feed.Table)
	assert.Equal(t, "debug", cfg.Log.Level)
}
