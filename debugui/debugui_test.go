package debugui_test

import (
	"testing"

	"github.com/plus3/roadrush/debugui"
	"github.com/plus3/roadrush/game"
	"github.com/plus3/roadrush/geom"
	"github.com/plus3/roadrush/vehicle"
	"github.com/plus3/roadrush/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameHistory(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		h := debugui.NewFrameHistory(4)
		assert.Zero(t, h.Average())
		assert.Zero(t, h.FPS())
		assert.Empty(t, h.Ordered())
		lo, hi := h.Extremes()
		assert.Zero(t, lo)
		assert.Zero(t, hi)
	})

	t.Run("partial fill averages recorded samples only", func(t *testing.T) {
		h := debugui.NewFrameHistory(4)
		h.Push(0.010)
		h.Push(0.020)
		assert.Equal(t, 2, h.Len())
		assert.InDelta(t, 15.0, h.Average(), 1e-4)
		assert.InDeltaSlice(t, []float32{10, 20}, h.Ordered(), 1e-4)
	})

	t.Run("wraps oldest first", func(t *testing.T) {
		h := debugui.NewFrameHistory(3)
		for _, dt := range []float64{0.001, 0.002, 0.003, 0.004, 0.005} {
			h.Push(dt)
		}
		assert.Equal(t, 3, h.Len())
		assert.Equal(t, 2, h.Offset())
		assert.InDeltaSlice(t, []float32{3, 4, 5}, h.Ordered(), 1e-4)
		assert.InDelta(t, 4.0, h.Average(), 1e-4)
		assert.InDelta(t, 250.0, h.FPS(), 1e-2)

		lo, hi := h.Extremes()
		assert.InDelta(t, 3.0, lo, 1e-4)
		assert.InDelta(t, 5.0, hi, 1e-4)
	})

	t.Run("size is at least one", func(t *testing.T) {
		h := debugui.NewFrameHistory(0)
		h.Push(0.5)
		assert.Len(t, h.Samples(), 1)
	})
}

func TestOverlay(t *testing.T) {
	o := debugui.NewOverlay()
	calls := 0
	o.Add("counter", func() { calls++ })

	require.Len(t, o.Items(), 1)
	assert.Equal(t, "counter", o.Items()[0].Name)

	o.Input.WantCaptureMouse = true
	o.Render()
	assert.Zero(t, calls, "hidden overlay renders nothing")
	assert.False(t, o.Input.WantCaptureMouse)

	assert.True(t, o.Toggle())
	assert.False(t, o.Toggle())
}

func TestFields(t *testing.T) {
	p := vehicle.NewPlayer(100, 200)

	names := make([]string, 0)
	for _, f := range debugui.Fields(p) {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "TurnFriction")
	assert.Contains(t, names, "Collided")
	assert.Nil(t, debugui.Fields(nil))
}

func TestSetField(t *testing.T) {
	p := vehicle.NewPlayer(100, 200)

	assert.True(t, debugui.SetNumber(p, "MaxSpeed", 420))
	assert.Equal(t, 420.0, p.MaxSpeed)

	assert.True(t, debugui.SetNumber(p, "Lane", 2.7))
	assert.Equal(t, 2, p.Lane)

	assert.True(t, debugui.SetBool(p, "Collided", true))
	assert.True(t, p.Collided)

	assert.False(t, debugui.SetNumber(p, "Model", 1), "strings are not numbers")
	assert.False(t, debugui.SetNumber(p, "Missing", 1))
	assert.False(t, debugui.SetBool(p, "Speed", true))
	assert.False(t, debugui.SetNumber(*p, "Speed", 1), "values cannot be set")
	assert.False(t, debugui.SetNumber(p, "Kind", -1), "negative into unsigned")
}

func TestSessionSummary(t *testing.T) {
	s, err := game.New(game.DefaultConfig(), 800, 600, game.WithRand(geom.NewRand(3)))
	require.NoError(t, err)
	require.NoError(t, s.Start())
	s.Update(0.1)

	stats := debugui.SessionSummary(s)
	values := make(map[string]string, len(stats))
	for _, st := range stats {
		values[st.Label] = st.Value
	}

	assert.Equal(t, "State", stats[0].Label)
	assert.Equal(t, "active", values["State"])
	assert.Equal(t, s.RunID().String(), values["Run"])
	assert.Equal(t, "2.0 / 300", values["Speed"])
	assert.Equal(t, "1.5s", values["Spawn Interval"])
	assert.Equal(t, "100ms", values["Elapsed"])
	assert.Equal(t, "0", values["Enemies"])
}

func TestSystemRows(t *testing.T) {
	assert.Nil(t, debugui.SystemRows(nil))

	s, err := game.New(game.DefaultConfig(), 800, 600, game.WithRand(geom.NewRand(3)))
	require.NoError(t, err)
	require.NoError(t, s.Start())
	for range 3 {
		s.Update(0.016)
	}

	active, windDown := s.Stats()
	rows := debugui.SystemRows(active)
	require.Len(t, rows, active.SystemCount)
	assert.Equal(t, "speed", rows[0][0])
	assert.Equal(t, "3", rows[0][1])
	assert.Contains(t, rows[0][2], " us")

	rows = debugui.SystemRows(windDown)
	require.Len(t, rows, 3)
	assert.Equal(t, "0", rows[2][1])
	assert.Equal(t, "0.0 us", rows[2][3])

	assert.Equal(t, [][4]string{}, debugui.SystemRows(&world.SchedulerStats{}))
}
