// Package vehicle implements the player car and traffic as one type.
package vehicle

import (
	"image/color"
	"math"

	"github.com/plus3/roadrush/geom"
)

// Kind selects the behaviour of a Vehicle.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
)

func (k Kind) String() string {
	if k == KindPlayer {
		return "player"
	}
	return "enemy"
}

// Handling defaults.
const (
	CollisionMargin  = 5.0
	TurnAcceleration = 300.0
	MaxTurnSpeed     = 150.0
	TurnFriction     = 0.9
	MaxWheelAngle    = 30.0
	PlayerMaxSpeed   = 300.0
	EnemyMinSpeed    = 150
	EnemyMaxSpeed    = 220
)

// Viewport is the area a vehicle moves in.
type Viewport struct {
	Width, Height float64
}

// ExplosionSink receives the explosion a collision produces.
type ExplosionSink interface {
	Explode(x, y float64)
}

// Vehicle is a car on the road. X and Y are the centre of the body.
type Vehicle struct {
	Kind  Kind
	Model Model
	Color color.RGBA

	X, Y          float64
	Width, Height float64

	Speed        float64
	MaxSpeed     float64
	Acceleration float64

	TurnSpeed        float64
	TurnAcceleration float64
	MaxTurnSpeed     float64
	TurnFriction     float64
	WheelAngle       float64
	MaxWheelAngle    float64

	Lane     int
	Collided bool
}

// NewPlayer places the player car with its centre at (x, y).
func NewPlayer(x, y float64) *Vehicle {
	w, h := ModelPlayer.Size()
	return &Vehicle{
		Kind:             KindPlayer,
		Model:            ModelPlayer,
		Color:            PlayerColor,
		X:                x,
		Y:                y,
		Width:            w,
		Height:           h,
		MaxSpeed:         PlayerMaxSpeed,
		TurnAcceleration: TurnAcceleration,
		MaxTurnSpeed:     MaxTurnSpeed,
		TurnFriction:     TurnFriction,
		MaxWheelAngle:    MaxWheelAngle,
	}
}

// NewEnemy creates traffic of the given model centred on x, just above the
// top of the viewport. Its cruising speed is drawn once here.
func NewEnemy(r geom.Rand, x float64, lane int, model Model) *Vehicle {
	w, h := model.Size()
	maxSpeed := float64(geom.RandomInt(r, EnemyMinSpeed, EnemyMaxSpeed))
	return &Vehicle{
		Kind:     KindEnemy,
		Model:    model,
		Color:    geom.RandomChoice(r, EnemyColors),
		X:        x,
		Y:        -h,
		Width:    w,
		Height:   h,
		Speed:    maxSpeed,
		MaxSpeed: maxSpeed,
		Lane:     lane,
	}
}

// Update integrates one step. steering is only read by the player and must
// already be within [-1, 1]. For traffic the return value reports that the
// car has left the bottom of the viewport; the owner is expected to drop it.
func (v *Vehicle) Update(dt, steering float64, view Viewport) (expired bool) {
	switch v.Kind {
	case KindPlayer:
		if v.Collided {
			return false
		}
		v.Speed = math.Min(v.Speed+v.Acceleration*dt, v.MaxSpeed)

		v.TurnSpeed += steering * v.TurnAcceleration * dt
		v.TurnSpeed = geom.Clamp(v.TurnSpeed, -v.MaxTurnSpeed, v.MaxTurnSpeed)
		v.WheelAngle = steering * v.MaxWheelAngle

		v.X += v.TurnSpeed * dt
		v.TurnSpeed *= math.Pow(v.TurnFriction, dt*60)

		v.ClampTo(view.Width)
		return false

	case KindEnemy:
		v.Y += v.Speed * dt
		return v.Y > view.Height+v.Height
	}
	return false
}

// ClampTo keeps the body inside a road of the given width.
func (v *Vehicle) ClampTo(roadWidth float64) {
	margin := v.Width / 2
	v.X = geom.Clamp(v.X, margin, math.Max(margin, roadWidth-margin))
}

// Bounds is the collision box: the body shrunk by CollisionMargin per side.
func (v *Vehicle) Bounds() geom.Rect {
	return geom.Rect{
		X: v.X - v.Width/2 + CollisionMargin,
		Y: v.Y - v.Height/2 + CollisionMargin,
		W: v.Width - CollisionMargin*2,
		H: v.Height - CollisionMargin*2,
	}
}

// ResolveCollisionWith tests v against other and, on contact, marks v as
// collided and reports one explosion at v's position. A vehicle collides at
// most once; later calls return false without side effects.
func (v *Vehicle) ResolveCollisionWith(other *Vehicle, sink ExplosionSink) bool {
	if v.Collided {
		return false
	}
	if !geom.Overlaps(v.Bounds(), other.Bounds()) {
		return false
	}

	v.Collided = true
	if sink != nil {
		sink.Explode(v.X, v.Y)
	}
	return true
}
