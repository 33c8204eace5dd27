// Package config loads runtime settings from an optional file, ROADRUSH_*
// environment variables and built-in defaults, in that order of
// precedence after the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/plus3/roadrush/game"
)

// EnvPrefix is prepended to every environment override, e.g.
// ROADRUSH_GAME_MAXSPEED.
const EnvPrefix = "ROADRUSH"

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SoundConfig holds audio settings.
type SoundConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	Volume     float64 `mapstructure:"volume"`
	SampleRate int     `mapstructure:"sampleRate"`
}

// GameConfig mirrors game.Config with file-friendly types.
type GameConfig struct {
	Lanes              int           `mapstructure:"lanes"`
	Acceleration       float64       `mapstructure:"acceleration"`
	MaxSpeed           float64       `mapstructure:"maxSpeed"`
	MaxSpeedIncrement  float64       `mapstructure:"maxSpeedIncrement"`
	SpawnInterval      time.Duration `mapstructure:"spawnInterval"`
	MinSpawnInterval   time.Duration `mapstructure:"minSpawnInterval"`
	SpawnDecay         float64       `mapstructure:"spawnDecay"`
	DifficultyPeriod   time.Duration `mapstructure:"difficultyPeriod"`
	MaxDeltaTime       float64       `mapstructure:"maxDeltaTime"`
	ExplosionParticles int           `mapstructure:"explosionParticles"`
}

// Config is the full runtime configuration.
type Config struct {
	Window   WindowConfig `mapstructure:"window"`
	Log      LogConfig    `mapstructure:"log"`
	Sound    SoundConfig  `mapstructure:"sound"`
	Game     GameConfig   `mapstructure:"game"`
	Seed     uint64       `mapstructure:"seed"`
	Debug    bool         `mapstructure:"debug"`
	AssetDir string       `mapstructure:"assetDir"`
}

func setDefaults(v *viper.Viper) {
	def := game.DefaultConfig()

	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "Road Rush")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("sound.enabled", true)
	v.SetDefault("sound.volume", 0.6)
	v.SetDefault("sound.sampleRate", 44100)

	v.SetDefault("seed", 0)
	v.SetDefault("debug", false)
	v.SetDefault("assetDir", "assets/images")

	v.SetDefault("game.lanes", def.Lanes)
	v.SetDefault("game.acceleration", def.Acceleration)
	v.SetDefault("game.maxSpeed", def.MaxSpeed)
	v.SetDefault("game.maxSpeedIncrement", def.MaxSpeedIncrement)
	v.SetDefault("game.spawnInterval", def.SpawnInterval)
	v.SetDefault("game.minSpawnInterval", def.MinSpawnInterval)
	v.SetDefault("game.spawnDecay", def.SpawnDecay)
	v.SetDefault("game.difficultyPeriod", def.DifficultyPeriod)
	v.SetDefault("game.maxDeltaTime", def.MaxDeltaTime)
	v.SetDefault("game.explosionParticles", def.ExplosionParticles)
}

// Load reads the configuration. path may be empty, in which case only
// defaults and the environment apply; a non-empty path must exist. The file
// type follows its extension (json, yaml, toml).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if _, err := cfg.GameConfig(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GameConfig converts the game section, keeping built-in values for
// tunables that have no file representation, and validates the result.
func (c *Config) GameConfig() (game.Config, error) {
	gc := game.DefaultConfig()
	gc.Lanes = c.Game.Lanes
	gc.Acceleration = c.Game.Acceleration
	gc.MaxSpeed = c.Game.MaxSpeed
	gc.MaxSpeedIncrement = c.Game.MaxSpeedIncrement
	gc.SpawnInterval = c.Game.SpawnInterval
	gc.MinSpawnInterval = c.Game.MinSpawnInterval
	gc.SpawnDecay = c.Game.SpawnDecay
	gc.DifficultyPeriod = c.Game.DifficultyPeriod
	gc.MaxDeltaTime = c.Game.MaxDeltaTime
	gc.ExplosionParticles = c.Game.ExplosionParticles

	if err := gc.Validate(); err != nil {
		return game.Config{}, fmt.Errorf("game section: %w", err)
	}
	return gc, nil
}
