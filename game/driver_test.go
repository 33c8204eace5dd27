package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/roadrush/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameClock(t *testing.T) {
	clock := game.NewFrameClock(0.1)

	assert.Equal(t, 0.0, clock.Tick(5*time.Second), "first tick")
	assert.InDelta(t, 0.016, clock.Tick(5*time.Second+16*time.Millisecond), 1e-12)
	assert.Equal(t, 0.1, clock.Tick(9*time.Second), "capped")
	assert.Equal(t, 0.0, clock.Tick(8*time.Second), "backwards")

	clock.Reset()
	assert.Equal(t, 0.0, clock.Tick(20*time.Second))
	assert.InDelta(t, 0.05, clock.Tick(20*time.Second+50*time.Millisecond), 1e-12)

	assert.Equal(t, game.MaxDeltaTime, game.NewFrameClock(0).MaxDelta)
}

func TestDriverFrame(t *testing.T) {
	t.Run("updates and draws", func(t *testing.T) {
		s, _ := startedSession(t)
		sink := &recordingSink{}
		d := game.NewDriver(s, sink)

		d.Frame(0)
		assert.Equal(t, 0.0, s.Speed(), "first frame has no delta")
		d.Frame(100 * time.Millisecond)
		assert.InDelta(t, 2.0, s.Speed(), 1e-9)

		assert.Equal(t, []string{"road", "player", "road", "player"}, sink.calls)
	})

	t.Run("pause is not integrated", func(t *testing.T) {
		s, _ := startedSession(t)
		d := game.NewDriver(s, nil)

		d.Frame(0)
		d.Frame(50 * time.Millisecond)
		require.NoError(t, s.Pause())
		d.Frame(time.Minute)
		require.NoError(t, s.Resume())
		d.Frame(2 * time.Minute)
		speed := s.Speed()
		d.Frame(2*time.Minute + 50*time.Millisecond)

		assert.InDelta(t, 1.0, speed, 1e-9)
		assert.InDelta(t, 2.0, s.Speed(), 1e-9)
	})

	t.Run("run stops on cancel", func(t *testing.T) {
		s, _ := startedSession(t)
		d := game.NewDriver(s, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := d.Run(ctx, time.Millisecond)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Positive(t, s.Speed())
	})

	t.Run("run calls hooks around frames", func(t *testing.T) {
		s, _ := startedSession(t)
		sink := &recordingSink{}
		d := game.NewDriver(s, sink)

		var trace []string
		var last time.Duration
		d.BeforeFrame = func(ts time.Duration) {
			assert.GreaterOrEqual(t, ts, last)
			last = ts
			trace = append(trace, "before")
		}
		d.AfterFrame = func(time.Duration) { trace = append(trace, "after") }

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()
		require.ErrorIs(t, d.Run(ctx, time.Millisecond), context.DeadlineExceeded)

		require.NotEmpty(t, trace)
		assert.Equal(t, "before", trace[0])
		assert.Equal(t, len(trace)/2, len(sink.calls)/2, "one draw per frame")
	})

	t.Run("do runs on the frame goroutine", func(t *testing.T) {
		s, _ := startedSession(t)
		d := game.NewDriver(s, nil)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan error, 1)
		go func() { done <- d.Run(ctx, time.Hour) }()

		require.True(t, d.Do(ctx, func() {
			assert.NoError(t, s.Pause())
			cancel()
		}))

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("driver did not stop")
		}
		assert.Equal(t, game.StatePaused, s.State())
		assert.False(t, d.Do(ctx, func() {}), "cancelled context")
	})
}

func TestMultiSink(t *testing.T) {
	a, b := &recordedEvents{}, &recordedEvents{}
	sink := game.MultiSink{a, b}

	sink.OnExplosion(1, 2)
	sink.OnGameOver(42)
	sink.OnScoreChanged(7)
	sink.OnSpeedChanged(10, 300)
	sink.OnStateChanged(game.StateActive, game.StateOver)

	for _, r := range []*recordedEvents{a, b} {
		assert.Equal(t, 1, r.explosions)
		assert.Equal(t, []int{42}, r.gameOvers)
		assert.Equal(t, []int{7}, r.scores)
		assert.Len(t, r.states, 1)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", game.StateIdle.String())
	assert.Equal(t, "paused", game.StatePaused.String())
	assert.Equal(t, "state(9)", game.State(9).String())
}
