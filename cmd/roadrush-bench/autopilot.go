package main

import (
	"math"

	"github.com/plus3/roadrush/game"
	"github.com/plus3/roadrush/geom"
)

// Autopilot tuning.
const (
	lookahead     = 400.0
	brakeDistance = 140.0
	steerGain     = 1.0 / 40
)

// autopilot is a game.InputSource that picks the lane with the most room
// ahead and steers into it.
type autopilot struct {
	session *game.Session

	steer float64
	brake bool
}

func newAutopilot() *autopilot {
	return &autopilot{}
}

// attach binds the pilot to a session. The session takes the pilot as its
// input source, so the two are built in two steps.
func (a *autopilot) attach(s *game.Session) {
	a.session = s
}

// gapAhead returns the distance from the player's nose to the nearest car
// ahead whose centre lies within halfWidth of x, or +Inf when there is none
// within the lookahead.
func gapAhead(s *game.Session, x, halfWidth float64) float64 {
	p := s.Player()
	nose := p.Y - p.Height/2
	gap := math.Inf(1)
	for _, e := range s.Storage().Enemies() {
		tail := e.Y + e.Height/2
		if tail > p.Y+p.Height/2 || math.Abs(e.X-x) > halfWidth+e.Width/2 {
			continue
		}
		d := nose - tail
		if d < lookahead {
			gap = min(gap, max(d, 0))
		}
	}
	return gap
}

// plan picks a target lane and the pedal state for the current tick.
func (a *autopilot) plan() {
	s := a.session
	p := s.Player()
	rd := s.Road()

	best, bestGap := -1, -1.0
	for lane := 0; lane < rd.Lanes; lane++ {
		gap := gapAhead(s, rd.LaneCenter(lane), rd.LaneWidth/2)
		// prefer the nearer lane on ties
		if gap > bestGap || (gap == bestGap && math.Abs(rd.LaneCenter(lane)-p.X) < math.Abs(rd.LaneCenter(best)-p.X)) {
			best, bestGap = lane, gap
		}
	}

	a.steer = geom.Clamp((rd.LaneCenter(best)-p.X)*steerGain, -1, 1)
	a.brake = gapAhead(s, p.X, p.Width/2) < brakeDistance
}

// Steering plans the tick. Sessions sample Steering before the pedals.
func (a *autopilot) Steering() float64 {
	if a.session == nil {
		return 0
	}
	a.plan()
	return a.steer
}

func (a *autopilot) Brake() bool { return a.brake }

func (a *autopilot) Accelerate() bool { return !a.brake }

var _ game.InputSource = (*autopilot)(nil)
