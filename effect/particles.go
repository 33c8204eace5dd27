package effect

import (
	"image/color"
	"time"

	"github.com/plus3/roadrush/geom"
)

// Particle is a single point of a burst.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Size     float64
	Lifetime time.Duration
	Age      time.Duration
}

// Alive reports whether the particle is still rendered.
func (p *Particle) Alive() bool {
	return p.Age < p.Lifetime
}

// BurstSpec parameterises NewPointParticles.
type BurstSpec struct {
	Count    int
	Color    color.RGBA
	Speed    float64 // spread of each velocity component, px/s
	Lifetime float64 // nominal lifetime in seconds
	Size     float64 // maximum extra radius in px
}

// PointParticles is a set of particles flying out from one point.
type PointParticles struct {
	Particles []Particle
	Color     color.RGBA

	expired bool
}

// NewPointParticles scatters spec.Count particles around (x, y). Each
// particle lives between half and one and a half times spec.Lifetime.
func NewPointParticles(r geom.Rand, x, y float64, spec BurstSpec) *PointParticles {
	ps := &PointParticles{
		Particles: make([]Particle, spec.Count),
		Color:     spec.Color,
	}
	for i := range ps.Particles {
		ps.Particles[i] = Particle{
			X:        x,
			Y:        y,
			VX:       geom.RandomSpread(r, spec.Speed),
			VY:       geom.RandomSpread(r, spec.Speed),
			Size:     r.Float64()*spec.Size + 1,
			Lifetime: geom.Seconds(r.Float64()*spec.Lifetime + spec.Lifetime/2),
		}
	}
	ps.expired = spec.Count == 0
	return ps
}

func (ps *PointParticles) Kind() Kind { return KindPointParticles }

func (ps *PointParticles) Active() bool { return !ps.expired }

// Update ages every particle and moves the living ones.
func (ps *PointParticles) Update(dt float64) {
	if ps.expired {
		return
	}

	step := geom.Seconds(dt)
	alive := false
	for i := range ps.Particles {
		p := &ps.Particles[i]
		p.Age += step
		if !p.Alive() {
			continue
		}
		alive = true
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Size *= 0.99
	}
	ps.expired = !alive
}

// Draw renders living particles, fading them out with age.
func (ps *PointParticles) Draw(c Canvas) {
	for i := range ps.Particles {
		p := &ps.Particles[i]
		if !p.Alive() {
			continue
		}
		alpha := 1 - float64(p.Age)/float64(p.Lifetime)
		c.FillCircle(p.X, p.Y, p.Size, fade(ps.Color, alpha))
	}
}

func fade(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(geom.Clamp(alpha, 0, 1) * 255)}
}
