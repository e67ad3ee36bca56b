package store

import (
	"sync"
)

// Record is any entity value that carries its own id.
type Record interface {
	RecordID() int
}

// Collection is a thread-safe ordered collection of records of one kind.
// Records keep insertion order; lookups are linear scans, which is fine at
// this store's intended scale.
type Collection[T Record] struct {
	mu     sync.RWMutex
	items  []T
	nextID int
}

// NewCollection creates a Collection seeded with the given records. The id
// counter starts above the highest seed id, so seed ids are never reissued.
func NewCollection[T Record](seed []T) *Collection[T] {
	c := &Collection[T]{nextID: 1}
	for _, item := range seed {
		c.items = append(c.items, item)
		if id := item.RecordID(); id >= c.nextID {
			c.nextID = id + 1
		}
	}
	return c
}

// List returns a snapshot of all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the first record with the given id. The second return value
// reports whether a record was found; a miss is not an error.
func (c *Collection[T]) Find(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindAll returns all records matching pred, in insertion order.
func (c *Collection[T]) FindAll(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Add allocates the next id, builds the record with it, and appends it to
// the collection. Allocation and insertion happen under one lock so ids are
// strictly increasing even under concurrent adds. The counter never depends
// on the current length, so deleted ids (including after Clear) are not
// reused.
func (c *Collection[T]) Add(build func(id int) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	item := build(c.nextID)
	c.nextID++
	c.items = append(c.items, item)
	return item
}

// Update replaces the record with the given id by merge(current), keeping
// its position in the collection. It returns the merged record, or false if
// no record matched; nothing is written on a miss.
func (c *Collection[T]) Update(id int, merge func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.RecordID() == id {
			merged := merge(item)
			c.items[i] = merged
			return merged, true
		}
	}
	var zero T
	return zero, false
}

// Remove deletes the first record with the given id and returns it, or
// false if no record matched.
func (c *Collection[T]) Remove(id int) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.RecordID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Clear empties the collection and returns the number of records removed.
// The id counter is left alone: ids stay monotonic across a full clear.
func (c *Collection[T]) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.items)
	c.items = nil
	return n
}

// Count returns the number of records in the collection.
func (c *Collection[T]) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
