package world

import (
	"github.com/plus3/roadrush/effect"
	"github.com/plus3/roadrush/vehicle"
)

// Commands provides a buffer for deferred storage operations that are
// executed at the end of a frame, so no system observes a half-mutated
// live set.
type Commands struct {
	enemies []*vehicle.Vehicle
	effects []effect.Effect
	deletes []EntityId
	defers  []func()
}

// NewCommands creates an empty buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// SpawnEnemy queues a vehicle to join the live enemy set.
func (c *Commands) SpawnEnemy(v *vehicle.Vehicle) {
	c.enemies = append(c.enemies, v)
}

// SpawnEffect queues an effect to join the live effect set.
func (c *Commands) SpawnEffect(e effect.Effect) {
	c.effects = append(c.effects, e)
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Defer queues a function to run after all structural changes.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending reports the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.enemies) + len(c.effects) + len(c.deletes) + len(c.defers)
}

// Flush applies deletes, then spawns, then deferred functions, and resets
// the buffer. Duplicate deletes are applied once.
func (c *Commands) Flush(storage *Storage) {
	deleted := make(map[EntityId]bool, len(c.deletes))
	for _, id := range c.deletes {
		if deleted[id] {
			continue
		}
		storage.Delete(id)
		deleted[id] = true
	}

	for _, v := range c.enemies {
		storage.SpawnEnemy(v)
	}
	for _, e := range c.effects {
		storage.SpawnEffect(e)
	}

	for _, fn := range c.defers {
		fn()
	}

	clear(c.enemies)
	clear(c.effects)
	c.enemies = c.enemies[:0]
	c.effects = c.effects[:0]
	c.deletes = c.deletes[:0]
	c.defers = c.defers[:0]
}
