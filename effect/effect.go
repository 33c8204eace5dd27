// Package effect implements the short-lived visual effects spawned on
// explosions. Every effect expires on its own; the owner removes it from its
// live set once Active reports false.
package effect

import (
	"image/color"

	"github.com/plus3/roadrush/geom"
)

// Kind tags the concrete effect variant.
type Kind uint8

const (
	KindPointParticles Kind = iota
	KindGrowingSprite
)

func (k Kind) String() string {
	switch k {
	case KindPointParticles:
		return "point-particles"
	case KindGrowingSprite:
		return "growing-sprite"
	default:
		return "unknown"
	}
}

// Canvas is the drawing surface an effect renders onto.
type Canvas interface {
	FillCircle(x, y, radius float64, clr color.Color)
	// DrawSprite draws the named sprite centred on (x, y) and reports false
	// when the sprite has no ready image.
	DrawSprite(name string, x, y, size, alpha float64) bool
}

// Effect is the capability shared by all variants.
type Effect interface {
	Kind() Kind
	Update(dt float64)
	Draw(c Canvas)
	// Active is false once every part of the effect has expired. An inactive
	// effect never becomes active again.
	Active() bool
}

// ExplosionColor is the tint of explosion debris.
var ExplosionColor = color.RGBA{R: 0xff, G: 0x55, B: 0x00, A: 0xff}

// Default explosion parameters.
const (
	ExplosionParticles = 50
	ExplosionSpeed     = 200.0
	ExplosionLifetime  = 1.0
	ExplosionSize      = 5.0
)

// New builds a single effect of the given kind at (x, y) with the explosion
// defaults.
func New(kind Kind, r geom.Rand, x, y float64) Effect {
	switch kind {
	case KindPointParticles:
		return NewPointParticles(r, x, y, BurstSpec{
			Count:    ExplosionParticles,
			Color:    ExplosionColor,
			Speed:    ExplosionSpeed,
			Lifetime: ExplosionLifetime,
			Size:     ExplosionSize,
		})
	case KindGrowingSprite:
		return NewGrowingSprite(x, y, ExplosionSprite)
	default:
		panic("effect: unknown kind " + kind.String())
	}
}

// Explosion returns the debris burst and the fireball sprite for a crash at
// (x, y). particles overrides the debris count when positive.
func Explosion(r geom.Rand, x, y float64, particles int) []Effect {
	burst := New(KindPointParticles, r, x, y)
	if particles > 0 {
		burst = NewPointParticles(r, x, y, BurstSpec{
			Count:    particles,
			Color:    ExplosionColor,
			Speed:    ExplosionSpeed,
			Lifetime: ExplosionLifetime,
			Size:     ExplosionSize,
		})
	}
	return []Effect{burst, New(KindGrowingSprite, r, x, y)}
}
