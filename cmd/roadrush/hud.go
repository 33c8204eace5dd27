package main

import (
	"math"

	"github.com/plus3/roadrush/geom"
)

// hudLayout places the on-screen controls for a viewport.
type hudLayout struct {
	SpeedBar   geom.Rect
	Brake      geom.Rect
	Accelerate geom.Rect

	WheelX, WheelY float64
	WheelRadius    float64
}

const (
	hudMargin   = 16.0
	pedalWidth  = 80.0
	pedalHeight = 110.0
	wheelRadius = 70.0
)

func layoutHUD(width, height float64) hudLayout {
	pedalY := height - hudMargin - pedalHeight
	return hudLayout{
		SpeedBar:    geom.Rect{X: hudMargin, Y: 48, W: 160, H: 12},
		Brake:       geom.Rect{X: width - 2*(hudMargin+pedalWidth), Y: pedalY, W: pedalWidth, H: pedalHeight},
		Accelerate:  geom.Rect{X: width - hudMargin - pedalWidth, Y: pedalY, W: pedalWidth, H: pedalHeight},
		WheelX:      hudMargin + wheelRadius,
		WheelY:      height - hudMargin - wheelRadius,
		WheelRadius: wheelRadius,
	}
}

func (h hudLayout) onWheel(x, y float64) bool {
	return math.Hypot(x-h.WheelX, y-h.WheelY) <= h.WheelRadius
}

func contains(r geom.Rect, x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// speedFraction is the filled share of the speed bar.
func speedFraction(speed, maxSpeed float64) float64 {
	if maxSpeed <= 0 {
		return 0
	}
	return geom.Clamp(speed/maxSpeed, 0, 1)
}

// controlsView is the control state the HUD reflects.
type controlsView struct {
	wheelAngle   float64
	braking      bool
	accelerating bool
}
