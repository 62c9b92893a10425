// Package fanout is the naive baseline: a slice of handlers copied on
// every emit. It exists as the comparison point for cmd/benchmark and
// for hosts that only ever append handlers. Unlike package slot it has
// no reentrancy guarantees beyond the snapshot copy.
package fanout

import "sync"

// Emitter fans an event out to registered handlers.
type Emitter[E any] struct {
	handlers []func(E)
	mu       sync.RWMutex
}

// On registers a handler and returns a function that removes it.
func (e *Emitter[E]) On(handler func(E)) (off func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, handler)
	i := len(e.handlers) - 1
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if i < len(e.handlers) && e.handlers[i] != nil {
			e.handlers[i] = nil
		}
	}
}

// Emit calls every registered handler with event. The handler slice is
// snapshotted first so handlers registered during the emit are not
// called by it.
func (e *Emitter[E]) Emit(event E) {
	e.mu.RLock()
	handlers := make([]func(E), len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.RUnlock()

	for _, h := range handlers {
		if h != nil {
			h(event)
		}
	}
}

// Len returns the number of live handlers.
func (e *Emitter[E]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	n := 0
	for _, h := range e.handlers {
		if h != nil {
			n++
		}
	}
	return n
}
