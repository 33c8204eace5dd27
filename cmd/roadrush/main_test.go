package main

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/roadrush/debugui"
	"github.com/plus3/roadrush/game"
	"github.com/plus3/roadrush/geom"
)

func TestLayoutHUD(t *testing.T) {
	hud := layoutHUD(800, 600)

	assert.Equal(t, geom.Rect{X: 704, Y: 474, W: 80, H: 110}, hud.Accelerate)
	assert.Equal(t, geom.Rect{X: 608, Y: 474, W: 80, H: 110}, hud.Brake)
	assert.False(t, geom.Overlaps(hud.Brake, hud.Accelerate))

	assert.True(t, hud.onWheel(hud.WheelX, hud.WheelY))
	assert.True(t, hud.onWheel(hud.WheelX+hud.WheelRadius, hud.WheelY))
	assert.False(t, hud.onWheel(hud.WheelX+hud.WheelRadius, hud.WheelY+1))

	assert.True(t, contains(hud.Brake, 610, 500))
	assert.False(t, contains(hud.Brake, 700, 500))
}

func TestSpeedFraction(t *testing.T) {
	assert.Equal(t, 0.5, speedFraction(150, 300))
	assert.Equal(t, 1.0, speedFraction(400, 300))
	assert.Equal(t, 0.0, speedFraction(10, 0))
}

func TestGreyed(t *testing.T) {
	c := greyed(color.RGBA{0xe7, 0x4c, 0x3c, 0xff})
	assert.Equal(t, c.R, c.G)
	assert.Equal(t, c.G, c.B)
	assert.Equal(t, uint8(0xff), c.A)
	assert.Less(t, c.R, uint8(0xe7))
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	s, err := game.New(game.DefaultConfig(), 800, 600, game.WithRand(geom.NewRand(5)))
	require.NoError(t, err)
	return &App{session: s, log: zerolog.Nop()}
}

func TestApply(t *testing.T) {
	t.Run("confirm starts and restarts", func(t *testing.T) {
		a := newTestApp(t)
		require.NoError(t, a.apply(actionConfirm))
		assert.Equal(t, game.StateActive, a.session.State())

		require.NoError(t, a.apply(actionConfirm), "confirm while active is ignored")
		assert.Equal(t, game.StateActive, a.session.State())
	})

	t.Run("pause toggles only while playing", func(t *testing.T) {
		a := newTestApp(t)
		require.NoError(t, a.apply(actionPause))
		assert.Equal(t, game.StateIdle, a.session.State())

		require.NoError(t, a.session.Start())
		require.NoError(t, a.apply(actionPause))
		assert.Equal(t, game.StatePaused, a.session.State())
		require.NoError(t, a.apply(actionPause))
		assert.Equal(t, game.StateActive, a.session.State())
	})

	t.Run("restart from pause gets a new run", func(t *testing.T) {
		a := newTestApp(t)
		require.NoError(t, a.session.Start())
		run := a.session.RunID()

		require.NoError(t, a.apply(actionRestart))
		assert.Equal(t, run, a.session.RunID(), "restart while active is ignored")

		require.NoError(t, a.session.Pause())
		require.NoError(t, a.apply(actionRestart))
		assert.Equal(t, game.StateActive, a.session.State())
		assert.NotEqual(t, run, a.session.RunID())
	})

	t.Run("sound actions without audio are no-ops", func(t *testing.T) {
		a := newTestApp(t)
		assert.NoError(t, a.apply(actionHorn))
		assert.NoError(t, a.apply(actionMute))
	})

	t.Run("overlay toggles", func(t *testing.T) {
		a := newTestApp(t)
		a.overlay = debugui.NewOverlay()
		require.NoError(t, a.apply(actionOverlay))
		assert.True(t, a.overlay.Visible)
	})

	t.Run("quit terminates", func(t *testing.T) {
		a := newTestApp(t)
		assert.ErrorIs(t, a.apply(actionQuit), ebiten.Termination)
	})
}
