package game_test

import (
	"testing"

	"github.com/plus3/roadrush/game"
	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, game.DefaultConfig().Validate())

	cases := map[string]func(*game.Config){
		"no lanes":           func(c *game.Config) { c.Lanes = 0 },
		"negative increment": func(c *game.Config) { c.MaxSpeedIncrement = -1 },
		"zero delta cap":     func(c *game.Config) { c.MaxDeltaTime = 0 },
		"delta cap too wide": func(c *game.Config) { c.MaxDeltaTime = 0.5 },
		"decay above one":    func(c *game.Config) { c.SpawnDecay = 1.2 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := game.DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), game.ErrInvalidConfig)
		})
	}

	t.Run("zero increment is allowed", func(t *testing.T) {
		cfg := game.DefaultConfig()
		cfg.MaxSpeedIncrement = 0
		assert.NoError(t, cfg.Validate())
	})
}
