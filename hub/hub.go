// Package hub routes emissions through signals looked up by name, for
// hosts that want one shared dispatch point instead of wiring signal
// values between packages. It follows the same single-threaded,
// reentrancy-safe rules as package slot; a listener may add or remove
// listeners, or remove whole named signals, while an emit is running.
package hub

import (
	"errors"

	"github.com/cespare/xxhash/v2"

	"github.com/slotparty/slotparty/slot"
)

var ErrEmptyName = errors.New("signal name can't be empty")

// Hub is a lazily populated collection of named signals. Names are
// stored by 64-bit hash; emitting to a name nobody listens on is a
// cheap no-op.
type Hub struct {
	signals map[uint64]*slot.Signal[any]
}

func New() *Hub {
	return &Hub{signals: map[uint64]*slot.Signal[any]{}}
}

func (h *Hub) signalFor(key uint64) *slot.Signal[any] {
	s, ok := h.signals[key]
	if !ok {
		s = slot.New[any]()
		h.signals[key] = s
	}
	return s
}

// Listen registers fn for the given signal name and returns the
// connection that owns the registration. Disconnecting it is the only
// way to unregister a single listener.
func (h *Hub) Listen(name string, fn func(any)) (*slot.Connection[any], error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return h.signalFor(xxhash.Sum64String(name)).Connect(fn), nil
}

// MustListen works like Listen, but panics if there's an error.
func (h *Hub) MustListen(name string, fn func(any)) *slot.Connection[any] {
	c, err := h.Listen(name, fn)
	if err != nil {
		panic(err)
	}
	return c
}

// Emit calls all the listeners for the given signal name with v, in
// registration order.
func (h *Hub) Emit(name string, v any) {
	if s, ok := h.signals[xxhash.Sum64String(name)]; ok {
		s.Emit(v)
	}
}

// Remove drops the named signal, disconnecting all its listeners and
// cancelling any emit of it that is in flight.
func (h *Hub) Remove(name string) {
	key := xxhash.Sum64String(name)
	if s, ok := h.signals[key]; ok {
		s.Close()
		delete(h.signals, key)
	}
}

// Close removes every named signal.
func (h *Hub) Close() {
	for key, s := range h.signals {
		s.Close()
		delete(h.signals, key)
	}
}

// Len returns the number of listeners currently registered for name.
func (h *Hub) Len(name string) int {
	if s, ok := h.signals[xxhash.Sum64String(name)]; ok {
		return s.Len()
	}
	return 0
}

var defaultHub = New()

// Listen registers a listener on the default hub.
func Listen(name string, fn func(any)) (*slot.Connection[any], error) {
	return defaultHub.Listen(name, fn)
}

// MustListen registers a listener on the default hub, panicking on
// error.
func MustListen(name string, fn func(any)) *slot.Connection[any] {
	return defaultHub.MustListen(name, fn)
}

// Emit emits on the default hub.
func Emit(name string, v any) {
	defaultHub.Emit(name, v)
}
