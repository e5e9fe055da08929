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

	assert.Equal(t, "mysql", cfg.Registry.Driver)
	assert.Equal(t, 3306, cfg.Registry.Port)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 75, cfg.Merge.TweetCap)
	assert.Equal(t, []string{"amazon", "trump", "morgage", "chuckit", "walmart"}, cfg.Merge.Options().Blacklist)
	assert.Equal(t, "cover/", cfg.Covers.Prefix)
	assert.Equal(t, "gameframe", cfg.Metrics.Namespace)
	assert.Equal(t, 1.0, cfg.Keys.Rate)
	assert.Equal(t, 10, cfg.Keys.TimeoutSeconds)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("REGISTRY_DRIVER", "sqlite")
	t.Setenv("REGISTRY_NAME", "registry.db")
	t.Setenv("MERGE_TRIM", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Registry.Driver)
	assert.Equal(t, "registry.db", cfg.Registry.Name)
	assert.True(t, cfg.Merge.Trim)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	// Registered so the value written by the .env overlay is restored.
	t.Setenv("MERGE_TWEET_CAP", "")
	t.Setenv("COVERS_CDN", "")

	dir := t.TempDir()
	env := "MERGE_TWEET_CAP=10\nCOVERS_CDN=https://cdn.example\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Merge.TweetCap)
	assert.Equal(t, "https://cdn.example", cfg.Covers.CDN)
}
