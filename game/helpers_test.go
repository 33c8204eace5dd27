package game_test

import (
	"testing"

	"github.com/plus3/roadrush/effect"
	"github.com/plus3/roadrush/game"
	"github.com/plus3/roadrush/geom"
	"github.com/plus3/roadrush/road"
	"github.com/plus3/roadrush/vehicle"
	"github.com/stretchr/testify/require"
)

type recordedEvents struct {
	game.NopSink
	explosions int
	gameOvers  []int
	scores     []int
	states     [][2]game.State
}

func (r *recordedEvents) OnExplosion(x, y float64) { r.explosions++ }
func (r *recordedEvents) OnGameOver(score int)     { r.gameOvers = append(r.gameOvers, score) }
func (r *recordedEvents) OnScoreChanged(score int) { r.scores = append(r.scores, score) }
func (r *recordedEvents) OnStateChanged(from, to game.State) {
	r.states = append(r.states, [2]game.State{from, to})
}

type recordingSink struct {
	calls []string
}

func (r *recordingSink) DrawRoad(*road.Road) { r.calls = append(r.calls, "road") }
func (r *recordingSink) DrawVehicle(v *vehicle.Vehicle) {
	r.calls = append(r.calls, v.Kind.String())
}
func (r *recordingSink) DrawEffect(e effect.Effect) { r.calls = append(r.calls, e.Kind().String()) }

func newSession(t *testing.T, opts ...game.Option) (*game.Session, *recordedEvents) {
	t.Helper()
	events := &recordedEvents{}
	opts = append([]game.Option{game.WithRand(geom.NewRand(7)), game.WithEvents(events)}, opts...)
	s, err := game.New(game.DefaultConfig(), 800, 600, opts...)
	require.NoError(t, err)
	return s, events
}

func startedSession(t *testing.T, opts ...game.Option) (*game.Session, *recordedEvents) {
	t.Helper()
	s, events := newSession(t, opts...)
	require.NoError(t, s.Start())
	return s, events
}

func advance(s *game.Session, ticks int, dt float64) {
	for range ticks {
		s.Update(dt)
	}
}

// crash drops an enemy directly onto the player and runs one tick.
func crash(s *game.Session) *vehicle.Vehicle {
	p := s.Player()
	v := vehicle.NewEnemy(geom.NewRand(1), p.X, 0, vehicle.ModelTaxi)
	v.Y = p.Y
	v.Speed = 0
	s.Storage().SpawnEnemy(v)
	s.Update(0.1)
	return v
}
