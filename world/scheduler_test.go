package world_test

import (
	"testing"
	"time"

	"github.com/plus3/roadrush/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordSystem struct {
	name  string
	trace *[]string
	dt    float64
}

func (s *recordSystem) Execute(frame *world.UpdateFrame) {
	*s.trace = append(*s.trace, s.name)
	s.dt = frame.DeltaTime
}

type spawnSystem struct{}

func (spawnSystem) Execute(frame *world.UpdateFrame) {
	frame.Commands.SpawnEnemy(enemyAt(0))
}

func TestScheduler(t *testing.T) {
	t.Run("registration order", func(t *testing.T) {
		var trace []string
		scheduler := world.NewScheduler(world.NewStorage())
		a := &recordSystem{name: "a", trace: &trace}
		scheduler.Register(a)
		scheduler.Register(&recordSystem{name: "b", trace: &trace})
		scheduler.RegisterNamed("c", &recordSystem{name: "c", trace: &trace})

		scheduler.Once(0.25)
		scheduler.Once(0.25)

		assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, trace)
		assert.Equal(t, 0.25, a.dt)
	})

	t.Run("stats", func(t *testing.T) {
		var trace []string
		scheduler := world.NewScheduler(world.NewStorage())
		scheduler.Register(&recordSystem{name: "a", trace: &trace})
		scheduler.RegisterNamed("spawn", spawnSystem{})

		stats := scheduler.GetStats()
		require.Len(t, stats.Systems, 2)
		assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration)

		for range 3 {
			scheduler.Once(0.1)
		}

		stats = scheduler.GetStats()
		assert.Equal(t, 2, stats.SystemCount)
		assert.Equal(t, int64(6), stats.TotalExecutions)
		assert.Equal(t, int64(3), stats.Frames)
		assert.Equal(t, int64(3), stats.Commands, "one spawn per frame")
		assert.Equal(t, "recordSystem", stats.Systems[0].Name)
		assert.Equal(t, "spawn", stats.Systems[1].Name)
		for _, sys := range stats.Systems {
			assert.Equal(t, int64(3), sys.ExecutionCount)
			assert.LessOrEqual(t, sys.MinDuration, sys.MaxDuration)
			assert.Equal(t, sys.TotalDuration/3, sys.AvgDuration)
		}

		scheduler.ResetStats()
		stats = scheduler.GetStats()
		assert.Equal(t, int64(0), stats.TotalExecutions)
		assert.Equal(t, int64(0), stats.Frames)
		assert.Equal(t, int64(0), stats.Commands)
	})

	t.Run("commands flushed after frame", func(t *testing.T) {
		storage := world.NewStorage()
		scheduler := world.NewScheduler(storage)
		scheduler.Register(spawnSystem{})

		scheduler.Once(0.1)
		scheduler.Once(0.1)

		assert.Equal(t, 2, storage.EnemyCount())
		assert.Same(t, storage, scheduler.Storage())
	})
}
