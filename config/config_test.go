package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/roadrush/config"
	"github.com/plus3/roadrush/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "Road Rush", cfg.Window.Title)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.True(t, cfg.Sound.Enabled)
	assert.Equal(t, 0.6, cfg.Sound.Volume)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "assets/images", cfg.AssetDir)

	gc, err := cfg.GameConfig()
	require.NoError(t, err)
	assert.Equal(t, game.DefaultConfig(), gc)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "roadrush.yaml", `
seed: 99
debug: true
log:
  level: debug
game:
  lanes: 4
  maxSpeed: 400
  spawnInterval: 2s
`)
		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, uint64(99), cfg.Seed)
		assert.True(t, cfg.Debug)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format, "unset keys keep defaults")

		gc, err := cfg.GameConfig()
		require.NoError(t, err)
		assert.Equal(t, 4, gc.Lanes)
		assert.Equal(t, 400.0, gc.MaxSpeed)
		assert.Equal(t, 2*time.Second, gc.SpawnInterval)
		assert.Equal(t, 500*time.Millisecond, gc.MinSpawnInterval)
	})

	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "roadrush.json", `{"window": {"width": 1024}, "sound": {"enabled": false}}`)
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 1024, cfg.Window.Width)
		assert.False(t, cfg.Sound.Enabled)
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ROADRUSH_SEED", "1234")
	t.Setenv("ROADRUSH_LOG_LEVEL", "warn")
	t.Setenv("ROADRUSH_GAME_LANES", "5")

	path := writeFile(t, "roadrush.yaml", "seed: 1\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(1234), cfg.Seed, "environment beats the file")
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Game.Lanes)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load("/nonexistent/roadrush.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidGameSection(t *testing.T) {
	path := writeFile(t, "roadrush.yaml", "game:\n  lanes: 0\n")
	_, err := config.Load(path)
	assert.ErrorIs(t, err, game.ErrInvalidConfig)
}
