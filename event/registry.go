package event

import (
	"sync"

	"github.com/google/uuid"
)

// Handle identifies a registered observer.
type Handle string

// registry is an insertion-ordered observer list. Dispatch iterates over a
// snapshot, so observers may remove themselves (or each other) from inside
// a notification callback without corrupting the pass in flight.
type registry[T any] struct {
	mu      sync.Mutex
	entries []registryEntry[T]
}

type registryEntry[T any] struct {
	id Handle
	fn T
}

// add registers an observer and returns its handle.
func (r *registry[T]) add(fn T) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := Handle(uuid.NewString())
	r.entries = append(r.entries, registryEntry[T]{id: id, fn: fn})
	return id
}

// remove unregisters the observer with the given handle.
// Returns false if the handle is not registered.
func (r *registry[T]) remove(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.id == h {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// snapshot returns a copy of the registered observers in insertion order.
func (r *registry[T]) snapshot() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) == 0 {
		return nil
	}
	fns := make([]T, len(r.entries))
	for i, e := range r.entries {
		fns[i] = e.fn
	}
	return fns
}

// count returns the number of registered observers.
func (r *registry[T]) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
