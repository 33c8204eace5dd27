// Package control turns raw key and pointer state into the normalized
// steering and pedal input a session samples each tick.
package control

import (
	"math"
	"time"

	"github.com/plus3/roadrush/geom"
)

// Wheel defaults.
const (
	MaxWheelAngle     = 60.0
	DragRatio         = 0.5
	RecentreStep      = 50 * time.Millisecond
	RecentreFactor    = 0.8
	RecentreSnapBelow = 2.0
)

// Wheel models an on-screen steering wheel. While it is dragged the wheel
// angle decides the steering; otherwise the left and right keys do, and the
// wheel springs back to centre.
type Wheel struct {
	MaxAngle float64

	left, right bool
	dragging    bool
	startX      float64
	angle       float64
	recentre    time.Duration
}

// NewWheel returns a centred wheel.
func NewWheel() *Wheel {
	return &Wheel{MaxAngle: MaxWheelAngle}
}

// SetKeys records the held state of the steering keys.
func (w *Wheel) SetKeys(left, right bool) {
	w.left = left
	w.right = right
}

// BeginDrag grabs the wheel at pointer position x.
func (w *Wheel) BeginDrag(x float64) {
	w.dragging = true
	w.startX = x
	w.recentre = 0
}

// DragTo turns the wheel by half the horizontal pointer travel, in degrees.
func (w *Wheel) DragTo(x float64) {
	if !w.dragging {
		return
	}
	w.angle = geom.Clamp((x-w.startX)*DragRatio, -w.MaxAngle, w.MaxAngle)
}

// EndDrag releases the wheel.
func (w *Wheel) EndDrag() {
	w.dragging = false
	w.recentre = 0
}

// Update springs a released wheel back to centre: every RecentreStep the
// angle shrinks by RecentreFactor until it snaps to zero.
func (w *Wheel) Update(dt float64) {
	if w.dragging || w.angle == 0 {
		return
	}
	w.recentre += geom.Seconds(dt)
	for w.recentre >= RecentreStep && w.angle != 0 {
		w.recentre -= RecentreStep
		if math.Abs(w.angle) < RecentreSnapBelow {
			w.angle = 0
		} else {
			w.angle *= RecentreFactor
		}
	}
	if w.angle == 0 {
		w.recentre = 0
	}
}

// Angle is the displayed wheel rotation in degrees.
func (w *Wheel) Angle() float64 { return w.angle }

// Dragging reports whether the pointer holds the wheel.
func (w *Wheel) Dragging() bool { return w.dragging }

// Steering returns the combined input in [-1, 1].
func (w *Wheel) Steering() float64 {
	if w.dragging {
		return geom.Clamp(w.angle/w.MaxAngle, -1, 1)
	}
	steer := 0.0
	if w.left {
		steer--
	}
	if w.right {
		steer++
	}
	return steer
}
