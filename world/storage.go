// Package world is the runtime a session ticks: a live set of enemies and
// effects, a deferred command buffer and an ordered scheduler of systems.
package world

import (
	"iter"

	"github.com/plus3/roadrush/effect"
	"github.com/plus3/roadrush/vehicle"
)

// StorageStats describes the live set.
type StorageStats struct {
	EnemyCount   int
	EffectCount  int
	TotalSpawned int64
	TotalDeleted int64
}

// Storage holds the live enemies and effects of a session.
type Storage struct {
	enemies *table[*vehicle.Vehicle]
	effects *table[effect.Effect]

	serial  uint32
	spawned int64
	deleted int64
}

// NewStorage creates an empty storage
func NewStorage() *Storage {
	return &Storage{
		enemies: newTable[*vehicle.Vehicle](32),
		effects: newTable[effect.Effect](16),
	}
}

func (s *Storage) nextId(kind Kind) EntityId {
	s.serial++
	s.spawned++
	return NewEntityId(kind, s.serial)
}

// SpawnEnemy adds a vehicle to the live enemy set immediately. Systems
// should use Commands.SpawnEnemy instead.
func (s *Storage) SpawnEnemy(v *vehicle.Vehicle) EntityId {
	id := s.nextId(KindEnemy)
	s.enemies.insert(id, v)
	return id
}

// SpawnEffect adds an effect to the live effect set immediately.
func (s *Storage) SpawnEffect(e effect.Effect) EntityId {
	id := s.nextId(KindEffect)
	s.effects.insert(id, e)
	return id
}

// Delete removes an entity. Deleting an unknown id is a no-op that returns
// false; an id of an unknown kind panics.
func (s *Storage) Delete(id EntityId) bool {
	var ok bool
	switch id.Kind() {
	case KindEnemy:
		ok = s.enemies.remove(id)
	case KindEffect:
		ok = s.effects.remove(id)
	default:
		panic("world: delete of unknown entity kind " + id.Kind().String())
	}
	if ok {
		s.deleted++
	}
	return ok
}

// Enemy looks up a live enemy.
func (s *Storage) Enemy(id EntityId) (*vehicle.Vehicle, bool) {
	return s.enemies.get(id)
}

// Effect looks up a live effect.
func (s *Storage) Effect(id EntityId) (effect.Effect, bool) {
	return s.effects.get(id)
}

// Enemies iterates over live enemies in spawn order.
func (s *Storage) Enemies() iter.Seq2[EntityId, *vehicle.Vehicle] {
	return s.enemies.all()
}

// Effects iterates over live effects in spawn order.
func (s *Storage) Effects() iter.Seq2[EntityId, effect.Effect] {
	return s.effects.all()
}

func (s *Storage) EnemyCount() int {
	return s.enemies.len()
}

func (s *Storage) EffectCount() int {
	return s.effects.len()
}

// Clear drops every entity. Serials keep counting so stale ids never
// resolve to a new entity.
func (s *Storage) Clear() {
	s.deleted += int64(s.enemies.len() + s.effects.len())
	s.enemies.clear()
	s.effects.clear()
}

// CollectStats returns a snapshot of the live set.
func (s *Storage) CollectStats() StorageStats {
	return StorageStats{
		EnemyCount:   s.enemies.len(),
		EffectCount:  s.effects.len(),
		TotalSpawned: s.spawned,
		TotalDeleted: s.deleted,
	}
}
