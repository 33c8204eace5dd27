package world

import (
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
)

// table keeps entities of one kind in insertion order with an id index.
type table[T any] struct {
	ids   []EntityId
	items []T
	index *intmap.Map[EntityId, int]
}

func newTable[T any](capacity int) *table[T] {
	return &table[T]{
		ids:   make([]EntityId, 0, capacity),
		items: make([]T, 0, capacity),
		index: intmap.New[EntityId, int](capacity),
	}
}

func (t *table[T]) insert(id EntityId, item T) {
	t.index.Put(id, len(t.items))
	t.ids = append(t.ids, id)
	t.items = append(t.items, item)
}

func (t *table[T]) get(id EntityId) (T, bool) {
	pos, ok := t.index.Get(id)
	if !ok {
		var zero T
		return zero, false
	}
	return t.items[pos], true
}

func (t *table[T]) remove(id EntityId) bool {
	pos, ok := t.index.Get(id)
	if !ok {
		return false
	}
	t.index.Del(id)

	t.ids = slices.Delete(t.ids, pos, pos+1)
	t.items = slices.Delete(t.items, pos, pos+1)
	for i := pos; i < len(t.ids); i++ {
		t.index.Put(t.ids[i], i)
	}
	return true
}

func (t *table[T]) len() int {
	return len(t.items)
}

func (t *table[T]) clear() {
	clear(t.items)
	t.ids = t.ids[:0]
	t.items = t.items[:0]
	t.index.Clear()
}

// all ranges over the live slices. Structural changes while ranging must
// go through Commands.
func (t *table[T]) all() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for i := 0; i < len(t.items); i++ {
			if !yield(t.ids[i], t.items[i]) {
				return
			}
		}
	}
}
