package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/plus3/roadrush/effect"
	"github.com/plus3/roadrush/road"
)

// ErrInvalidConfig is wrapped by Config.Validate.
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the session tunables.
type Config struct {
	Lanes int

	Acceleration      float64
	MaxSpeed          float64
	MaxSpeedIncrement float64
	BrakeFactor       float64
	BoostFactor       float64
	CrashDecay        float64

	SpawnInterval    time.Duration
	MinSpawnInterval time.Duration
	SpawnDecay       float64
	DifficultyPeriod time.Duration

	// MaxDeltaTime caps a single tick, in seconds.
	MaxDeltaTime float64

	ExplosionParticles int

	// PlayerAnchor is the player's y as a fraction of the viewport height.
	PlayerAnchor float64
}

// DefaultConfig returns the tuning the game ships with.
func DefaultConfig() Config {
	return Config{
		Lanes:              road.DefaultLanes,
		Acceleration:       20,
		MaxSpeed:           300,
		MaxSpeedIncrement:  10,
		BrakeFactor:        0.95,
		BoostFactor:        1.5,
		CrashDecay:         0.95,
		SpawnInterval:      1500 * time.Millisecond,
		MinSpawnInterval:   500 * time.Millisecond,
		SpawnDecay:         0.95,
		DifficultyPeriod:   10 * time.Second,
		MaxDeltaTime:       0.1,
		ExplosionParticles: effect.ExplosionParticles,
		PlayerAnchor:       0.8,
	}
}

// Validate reports the first out-of-range tunable.
func (c Config) Validate() error {
	switch {
	case c.Lanes < 1:
		return fmt.Errorf("%w: lanes must be positive, got %d", ErrInvalidConfig, c.Lanes)
	case c.MaxSpeed <= 0:
		return fmt.Errorf("%w: max speed must be positive, got %v", ErrInvalidConfig, c.MaxSpeed)
	case c.MaxSpeedIncrement < 0:
		return fmt.Errorf("%w: negative max speed increment %v", ErrInvalidConfig, c.MaxSpeedIncrement)
	case c.Acceleration < 0:
		return fmt.Errorf("%w: negative acceleration %v", ErrInvalidConfig, c.Acceleration)
	case c.SpawnInterval <= 0 || c.MinSpawnInterval <= 0:
		return fmt.Errorf("%w: spawn intervals must be positive", ErrInvalidConfig)
	case c.MinSpawnInterval > c.SpawnInterval:
		return fmt.Errorf("%w: spawn floor %v above start interval %v", ErrInvalidConfig, c.MinSpawnInterval, c.SpawnInterval)
	case c.SpawnDecay <= 0 || c.SpawnDecay > 1:
		return fmt.Errorf("%w: spawn decay must be in (0, 1], got %v", ErrInvalidConfig, c.SpawnDecay)
	case c.DifficultyPeriod <= 0:
		return fmt.Errorf("%w: difficulty period must be positive", ErrInvalidConfig)
	case c.MaxDeltaTime <= 0 || c.MaxDeltaTime > MaxDeltaTime:
		return fmt.Errorf("%w: max delta time must be in (0, %v], got %v", ErrInvalidConfig, MaxDeltaTime, c.MaxDeltaTime)
	case c.ExplosionParticles < 0:
		return fmt.Errorf("%w: negative particle count", ErrInvalidConfig)
	case c.PlayerAnchor < 0 || c.PlayerAnchor > 1:
		return fmt.Errorf("%w: player anchor must be in [0, 1], got %v", ErrInvalidConfig, c.PlayerAnchor)
	}
	return nil
}
