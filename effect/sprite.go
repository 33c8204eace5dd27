package effect

import (
	"image/color"
	"time"

	"github.com/plus3/roadrush/geom"
)

// ExplosionSprite is the asset name of the fireball image.
const ExplosionSprite = "explosion"

var fireballFallback = color.RGBA{R: 0xff, G: 0xaa, B: 0x22, A: 0xff}

// GrowingSprite is a single image that expands and fades over its lifetime.
type GrowingSprite struct {
	Sprite     string
	X, Y       float64
	Size       float64
	GrowthRate float64 // px/s
	Age        time.Duration
	Lifetime   time.Duration
}

// NewGrowingSprite starts a 100px sprite that grows 100px/s for one second.
func NewGrowingSprite(x, y float64, sprite string) *GrowingSprite {
	return &GrowingSprite{
		Sprite:     sprite,
		X:          x,
		Y:          y,
		Size:       100,
		GrowthRate: 100,
		Lifetime:   time.Second,
	}
}

func (s *GrowingSprite) Kind() Kind { return KindGrowingSprite }

func (s *GrowingSprite) Active() bool { return s.Age < s.Lifetime }

func (s *GrowingSprite) Update(dt float64) {
	if !s.Active() {
		return
	}
	s.Age += geom.Seconds(dt)
	s.Size += dt * s.GrowthRate
}

// Draw renders the sprite, or a translucent disc when the image is not ready.
func (s *GrowingSprite) Draw(c Canvas) {
	if !s.Active() {
		return
	}
	alpha := 1 - float64(s.Age)/float64(s.Lifetime)
	if c.DrawSprite(s.Sprite, s.X, s.Y, s.Size, alpha) {
		return
	}
	c.FillCircle(s.X, s.Y, s.Size/2, fade(fireballFallback, alpha*0.6))
}
