package game

import (
	"math"

	"github.com/plus3/roadrush/effect"
	"github.com/plus3/roadrush/geom"
	"github.com/plus3/roadrush/road"
	"github.com/plus3/roadrush/vehicle"
)

// InputSource is sampled once per active tick.
type InputSource interface {
	// Steering is in [-1, 1]; values outside are clamped.
	Steering() float64
	Brake() bool
	Accelerate() bool
}

// FixedInput is an InputSource that always reports the same values.
type FixedInput struct {
	Steer        float64
	Braking      bool
	Accelerating bool
}

func (f FixedInput) Steering() float64 { return f.Steer }
func (f FixedInput) Brake() bool       { return f.Braking }
func (f FixedInput) Accelerate() bool  { return f.Accelerating }

// PresentationSink receives the scene in draw order: road, enemies, player,
// effects.
type PresentationSink interface {
	DrawRoad(rd *road.Road)
	DrawVehicle(v *vehicle.Vehicle)
	DrawEffect(e effect.Effect)
}

// EventSink is notified of gameplay events. Calls happen on the tick
// goroutine and must not block.
type EventSink interface {
	OnExplosion(x, y float64)
	OnGameOver(score int)
	OnScoreChanged(score int)
	OnSpeedChanged(speed, maxSpeed float64)
	OnStateChanged(from, to State)
}

// NopSink ignores every event. Embed it to implement a subset of EventSink.
type NopSink struct{}

func (NopSink) OnExplosion(x, y float64)               {}
func (NopSink) OnGameOver(score int)                   {}
func (NopSink) OnScoreChanged(score int)               {}
func (NopSink) OnSpeedChanged(speed, maxSpeed float64) {}
func (NopSink) OnStateChanged(from, to State)          {}

// MultiSink fans every event out to each sink in order.
type MultiSink []EventSink

func (m MultiSink) OnExplosion(x, y float64) {
	for _, s := range m {
		s.OnExplosion(x, y)
	}
}

func (m MultiSink) OnGameOver(score int) {
	for _, s := range m {
		s.OnGameOver(score)
	}
}

func (m MultiSink) OnScoreChanged(score int) {
	for _, s := range m {
		s.OnScoreChanged(score)
	}
}

func (m MultiSink) OnSpeedChanged(speed, maxSpeed float64) {
	for _, s := range m {
		s.OnSpeedChanged(speed, maxSpeed)
	}
}

func (m MultiSink) OnStateChanged(from, to State) {
	for _, s := range m {
		s.OnStateChanged(from, to)
	}
}

func sampleSteering(in InputSource) float64 {
	steer := in.Steering()
	if math.IsNaN(steer) {
		return 0
	}
	return geom.Clamp(steer, -1, 1)
}
