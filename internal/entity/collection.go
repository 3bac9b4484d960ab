// Package entity holds the owning, order-preserving collections the game session
// stores its missiles and explosions in.
package entity

import (
	"fmt"

	"github.com/vovakirdan/planetary/internal/core"
)

// Entity is the capability set every simulated object provides.
type Entity interface {
	// Advance moves the entity forward one tick and reports whether it reached
	// its terminal state during this tick.
	Advance() bool

	// Render draws the entity's current state.
	Render(dst core.Canvas)

	// Terminal reports whether the entity has finished and should be removed.
	Terminal() bool
}

// Collection is an ordered sequence of entities that owns its elements.
// Insertion order is preserved; Erase shifts later elements left and drops the
// collection's reference, so a removed entity is reclaimed with nothing else to do.
type Collection[T any] struct {
	items []T
}

// New returns an empty collection with room for capacity elements.
func New[T any](capacity int) *Collection[T] {
	return &Collection[T]{items: make([]T, 0, capacity)}
}

// PushBack appends v in amortized constant time.
func (c *Collection[T]) PushBack(v T) {
	c.items = append(c.items, v)
}

// Len returns the number of elements.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// At returns the element at index i. An out-of-range index is a programming
// defect and panics.
func (c *Collection[T]) At(i int) T {
	if i < 0 || i >= len(c.items) {
		panic(fmt.Sprintf("entity: index %d out of range [0, %d)", i, len(c.items)))
	}
	return c.items[i]
}

// Erase removes the element at index i, shifting the following elements left.
// After Erase(i) during a forward scan the caller must revisit i.
func (c *Collection[T]) Erase(i int) {
	if i < 0 || i >= len(c.items) {
		panic(fmt.Sprintf("entity: erase index %d out of range [0, %d)", i, len(c.items)))
	}
	copy(c.items[i:], c.items[i+1:])
	var zero T
	c.items[len(c.items)-1] = zero
	c.items = c.items[:len(c.items)-1]
}

// Each calls fn for every element in order.
func (c *Collection[T]) Each(fn func(i int, v T)) {
	for i, v := range c.items {
		fn(i, v)
	}
}

// Sweep scans the collection forward, calling fn once per element, and erases
// every element for which fn returns true. Each element present when Sweep starts
// is visited exactly once; elements appended by fn are not visited.
func (c *Collection[T]) Sweep(fn func(v T) bool) {
	end := len(c.items)
	for i := 0; i < end; {
		if fn(c.items[i]) {
			c.Erase(i)
			end--
			continue // the next element now sits at i
		}
		i++
	}
}

// Clear drops every element.
func (c *Collection[T]) Clear() {
	clear(c.items)
	c.items = c.items[:0]
}
