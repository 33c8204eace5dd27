package main

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/roadrush/game"
	"github.com/plus3/roadrush/geom"
	"github.com/plus3/roadrush/vehicle"
	"github.com/plus3/roadrush/world"
)

func pilotedSession(t *testing.T) (*game.Session, *autopilot) {
	t.Helper()
	pilot := newAutopilot()
	s, err := game.New(game.DefaultConfig(), 800, 600, game.WithRand(geom.NewRand(4)), game.WithInput(pilot))
	require.NoError(t, err)
	pilot.attach(s)
	require.NoError(t, s.Start())
	return s, pilot
}

func TestAutopilot(t *testing.T) {
	t.Run("detached pilot is neutral", func(t *testing.T) {
		p := newAutopilot()
		assert.Zero(t, p.Steering())
		assert.False(t, p.Brake())
		assert.True(t, p.Accelerate())
	})

	t.Run("open road holds the nearest lane", func(t *testing.T) {
		s, p := pilotedSession(t)
		s.Player().X = s.Road().LaneCenter(1)

		assert.Zero(t, p.Steering())
		assert.False(t, p.Brake())
		assert.True(t, p.Accelerate())
	})

	t.Run("swerves and brakes for a car ahead", func(t *testing.T) {
		s, p := pilotedSession(t)
		rd := s.Road()
		player := s.Player()
		player.X = rd.LaneCenter(1)

		blocker := vehicle.NewEnemy(geom.NewRand(1), rd.LaneCenter(1), 1, vehicle.ModelTaxi)
		blocker.Y = player.Y - 180
		s.Storage().SpawnEnemy(blocker)

		assert.NotZero(t, p.Steering())
		assert.True(t, p.Brake())
		assert.False(t, p.Accelerate())
	})

	t.Run("cars behind are ignored", func(t *testing.T) {
		s, p := pilotedSession(t)
		player := s.Player()
		player.X = s.Road().LaneCenter(1)

		behind := vehicle.NewEnemy(geom.NewRand(1), player.X, 1, vehicle.ModelTaxi)
		behind.Y = player.Y + 200
		s.Storage().SpawnEnemy(behind)

		assert.Zero(t, p.Steering())
		assert.False(t, p.Brake())
	})
}

func TestGapAhead(t *testing.T) {
	s, _ := pilotedSession(t)
	player := s.Player()
	assert.True(t, gapAhead(s, player.X, player.Width/2) > lookahead)

	e := vehicle.NewEnemy(geom.NewRand(1), player.X, 1, vehicle.ModelTaxi)
	e.Y = player.Y - 200
	s.Storage().SpawnEnemy(e)

	// nose at Y-45, enemy tail at Y-150
	assert.InDelta(t, 105.0, gapAhead(s, player.X, player.Width/2), 1e-9)
}

func TestScoreStats(t *testing.T) {
	var empty ScoreStats
	empty.Finalize()
	assert.Zero(t, empty.Avg)

	s := ScoreStats{Samples: []int{10, 40, 25}}
	s.Finalize()
	assert.Equal(t, 10, s.Min)
	assert.Equal(t, 40, s.Max)
	assert.InDelta(t, 25.0, s.Avg, 1e-9)
}

func TestMergeSystems(t *testing.T) {
	a := &world.SchedulerStats{Systems: []world.SystemStats{
		{Name: "speed", ExecutionCount: 2, MinDuration: 3, MaxDuration: 9, TotalDuration: 12},
		{Name: "road", ExecutionCount: 0},
	}}
	b := &world.SchedulerStats{Systems: []world.SystemStats{
		{Name: "road", ExecutionCount: 1, MinDuration: 5, MaxDuration: 5, TotalDuration: 5},
		{Name: "speed", ExecutionCount: 2, MinDuration: 1, MaxDuration: 4, TotalDuration: 4},
	}}

	merged := mergeSystems(a, nil, b)
	require.Len(t, merged, 2)

	assert.Equal(t, "speed", merged[0].Name)
	assert.Equal(t, int64(4), merged[0].ExecutionCount)
	assert.Equal(t, time.Duration(1), merged[0].MinDuration)
	assert.Equal(t, time.Duration(9), merged[0].MaxDuration)
	assert.Equal(t, time.Duration(4), merged[0].AvgDuration)

	assert.Equal(t, "road", merged[1].Name)
	assert.Equal(t, time.Duration(5), merged[1].MinDuration, "empty stats do not pin the minimum")
}

func TestRunWorker(t *testing.T) {
	opts := benchOptions{
		Step:        time.Second / 30,
		Games:       2,
		MaxGameTime: 3 * time.Second,
		Seed:        11,
		Width:       800,
		Height:      600,
	}
	var started atomic.Int64

	res, err := runWorker(context.Background(), 0, game.DefaultConfig(), opts, &started, zerolog.Nop())
	require.NoError(t, err)

	assert.Len(t, res.Scores, 2)
	assert.Positive(t, res.Ticks)
	assert.Len(t, res.Samples, int(res.Ticks))
	assert.LessOrEqual(t, res.Sim, 2*(opts.MaxGameTime+opts.Step))
	require.NotNil(t, res.Active)
	assert.Equal(t, 10, res.Active.SystemCount)
	assert.Equal(t, "trafficSampler", res.Active.Systems[9].Name)
	assert.Equal(t, res.Active.Systems[9].ExecutionCount, res.Traffic.samples)
	assert.Positive(t, res.Traffic.peak)
	assert.Positive(t, res.Active.Commands)
}

func TestTrafficSampler(t *testing.T) {
	var sampler trafficSampler
	assert.Equal(t, 0.0, sampler.average())

	storage := world.NewStorage()
	scheduler := world.NewScheduler(storage)
	scheduler.Register(&sampler)

	scheduler.Once(0.1)
	storage.SpawnEnemy(vehicle.NewEnemy(geom.NewRand(1), 100, 0, vehicle.ModelTaxi))
	storage.SpawnEnemy(vehicle.NewEnemy(geom.NewRand(2), 300, 1, vehicle.ModelTruck))
	scheduler.Once(0.1)

	assert.Equal(t, 2, sampler.peak)
	assert.Equal(t, int64(2), sampler.samples)
	assert.InDelta(t, 1.0, sampler.average(), 1e-9)
	assert.Equal(t, "trafficSampler", scheduler.GetStats().Systems[0].Name)
}

func TestRunAllStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := benchOptions{Step: time.Second / 60, MaxGameTime: time.Minute, Seed: 1, Width: 800, Height: 600}
	results, err := runAll(ctx, game.DefaultConfig(), opts, 3, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, res := range results {
		assert.Empty(t, res.Scores)
	}
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration: time.Second,
		Step:     time.Second / 60,
		Workers:  1,
		Games:    1,
		Scores:   ScoreStats{Min: 3, Max: 3, Avg: 3},
		Systems:  []world.SystemStats{{Name: "collisions", ExecutionCount: 7}},
		Commands: 12,

		PeakTraffic: 4,
		AvgTraffic:  2.5,
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Road Rush Bench Report")
	assert.Contains(t, out, "**Game Limit:** none")
	assert.Contains(t, out, "avg 3.0, min 3, max 3")
	assert.Contains(t, out, "| collisions | 7 |")
	assert.Contains(t, out, "**Commands Applied:** 12")
	assert.Contains(t, out, "peak 4, avg 2.5 cars")
	assert.NotContains(t, out, "GC Pause")
}
