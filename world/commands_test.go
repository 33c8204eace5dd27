package world_test

import (
	"testing"

	"github.com/plus3/roadrush/effect"
	"github.com/plus3/roadrush/world"
	"github.com/stretchr/testify/assert"
)

type cullSystem struct {
	seen int
}

func (s *cullSystem) Execute(frame *world.UpdateFrame) {
	for id := range frame.Storage.Enemies() {
		s.seen++
		frame.Commands.Delete(id)
		frame.Commands.Delete(id)
	}
}

func TestCommands(t *testing.T) {
	t.Run("spawns are invisible until flush", func(t *testing.T) {
		storage := world.NewStorage()
		commands := world.NewCommands()

		commands.SpawnEnemy(enemyAt(1))
		commands.SpawnEffect(effect.NewGrowingSprite(0, 0, effect.ExplosionSprite))
		assert.Equal(t, 2, commands.Pending())
		assert.Equal(t, 0, storage.EnemyCount())

		commands.Flush(storage)

		assert.Equal(t, 1, storage.EnemyCount())
		assert.Equal(t, 1, storage.EffectCount())
		assert.Equal(t, 0, commands.Pending())
	})

	t.Run("deletes while iterating", func(t *testing.T) {
		storage := world.NewStorage()
		for i := range 4 {
			storage.SpawnEnemy(enemyAt(float64(i)))
		}

		scheduler := world.NewScheduler(storage)
		cull := &cullSystem{}
		scheduler.Register(cull)
		scheduler.Once(0.1)

		assert.Equal(t, 4, cull.seen, "every enemy observed before removal")
		assert.Equal(t, 0, storage.EnemyCount())
		assert.Equal(t, int64(4), storage.CollectStats().TotalDeleted, "duplicates applied once")
	})

	t.Run("defers run after structural changes", func(t *testing.T) {
		storage := world.NewStorage()
		id := storage.SpawnEnemy(enemyAt(1))
		commands := world.NewCommands()

		var countAtDefer int
		commands.Defer(func() { countAtDefer = storage.EnemyCount() })
		commands.Delete(id)
		commands.SpawnEnemy(enemyAt(2))
		commands.SpawnEnemy(enemyAt(3))
		commands.Flush(storage)

		assert.Equal(t, 2, countAtDefer)
	})
}
