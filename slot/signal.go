// Package slot is a single-threaded signal/slot dispatcher built on an
// embedded linked list. Handlers connect to a Signal and are invoked in
// connection order on every emit. Dispatch is fully reentrant: a
// handler may disconnect itself, disconnect any other connection, emit
// the same signal again, or close the signal outright, all while an
// emit over that signal is in flight.
//
// Reentrancy is handled by a stack of cursors. Every emit registers a
// cursor with its signal; mutations that would invalidate an in-flight
// traversal (disconnects, closes, moves) find the live cursors through
// that stack and patch or cancel them before touching the list.
package slot

import "github.com/slotparty/slotparty/ilist"

// Signal invokes connected handlers with a payload of type T. The zero
// value is an empty, usable signal. Signals are not safe for use from
// multiple goroutines; reentrant use from handlers on one goroutine is
// the supported form of concurrency.
type Signal[T any] struct {
	conns ilist.List[Connection[T]]
	// tail is the newest cursor of the in-flight emits over this
	// signal, chained newest to oldest. Strict LIFO matching call
	// nesting.
	tail *cursor[T]
}

// cursor is one in-flight traversal of a signal's connection list.
type cursor[T any] struct {
	prev *cursor[T]
	pos  *ilist.Node[Connection[T]]
	// sig is cleared exactly when the signal is closed while this
	// cursor is alive; the emit loop treats that as a stop sign and
	// never touches the signal again.
	sig *Signal[T]
}

func (c *cursor[T]) open(s *Signal[T]) {
	c.prev = s.tail
	c.pos = s.conns.Front()
	c.sig = s
	s.tail = c
}

func (c *cursor[T]) close() {
	if c.sig != nil {
		c.sig.tail = c.prev
		c.sig = nil
	}
}

// New returns an empty signal.
func New[T any]() *Signal[T] {
	return &Signal[T]{}
}

// Connect registers fn and returns the connection that owns its
// membership. The handler stays connected until the returned connection
// is disconnected or the signal is closed. Handlers are called in
// connection order.
func (s *Signal[T]) Connect(fn func(T)) *Connection[T] {
	c := &Connection[T]{fn: fn, sig: s}
	s.conns.PushBack(&c.node, c)
	return c
}

// Emit calls every currently connected handler with v, front to back.
// Connections removed during the emit are skipped; connections appended
// during it are reached by the same pass unless the cursor is already
// past them. A handler panic unwinds the cursor stack correctly and
// skips the rest of the pass.
func (s *Signal[T]) Emit(v T) {
	var cur cursor[T]
	cur.open(s)
	defer cur.close()

	for {
		// Read the signal through the cursor: a nested handler may
		// have closed it (sig is nil) or moved it elsewhere (sig is
		// the destination).
		sig := cur.sig
		if sig == nil {
			return
		}
		if cur.pos == sig.conns.End() {
			return
		}
		c := cur.pos.Elem()
		// Advance before invoking so the handler sees a cursor it
		// is allowed to repoint, never one parked on itself.
		cur.pos = cur.pos.Next()
		c.fn(v)
	}
}

// Close disconnects everything and cancels all in-flight emits of this
// signal, including emits paused deeper in the call stack. It may be
// called from inside one of this signal's own handlers. The signal is
// left empty and usable. Close is idempotent.
func (s *Signal[T]) Close() {
	for cur := s.tail; cur != nil; {
		prev := cur.prev
		cur.sig = nil
		cur = prev
	}
	s.tail = nil

	// Orphan the connections first so their owners' later
	// Disconnect calls are no-ops against a torn-down list.
	for n := s.conns.Front(); n != s.conns.End(); n = n.Next() {
		n.Elem().sig = nil
	}
	s.conns.Clear()
}

// Len returns the number of live connections.
func (s *Signal[T]) Len() int {
	return s.conns.Len()
}

// Empty reports whether the signal has no connections.
func (s *Signal[T]) Empty() bool {
	return s.conns.Empty()
}

// MoveTo transfers s's connections and in-flight cursors to dst, whose
// own state is closed out first. Connections and cursors are retargeted
// so that no live reference is left pointing at s; s is left empty and
// usable. Handlers keep their relative order.
func (s *Signal[T]) MoveTo(dst *Signal[T]) {
	if dst == s {
		return
	}
	dst.Close()
	oldEnd := s.conns.End()
	dst.conns.TakeFrom(&s.conns)
	dst.tail, s.tail = s.tail, nil
	dst.retarget(oldEnd)
}

// Swap exchanges the connections and in-flight cursors of two signals.
func (s *Signal[T]) Swap(other *Signal[T]) {
	if other == s {
		return
	}
	sEnd, oEnd := s.conns.End(), other.conns.End()
	s.conns.Swap(&other.conns)
	s.tail, other.tail = other.tail, s.tail
	// Cursors now on s arrived from other and vice versa, so each
	// side patches against the other's old sentinel.
	s.retarget(oEnd)
	other.retarget(sEnd)
}

// swapCursors repoints every cursor parked on a at b and vice versa,
// keeping in-flight passes anchored to their list slots while two
// connections trade positions.
func (s *Signal[T]) swapCursors(a, b *ilist.Node[Connection[T]]) {
	for cur := s.tail; cur != nil; cur = cur.prev {
		switch cur.pos {
		case a:
			cur.pos = b
		case b:
			cur.pos = a
		}
	}
}

// retarget points every adopted connection and cursor at s. A cursor
// that had reached the end of the old list is parked on the old
// sentinel and must be moved to the new one.
func (s *Signal[T]) retarget(oldEnd *ilist.Node[Connection[T]]) {
	for n := s.conns.Front(); n != s.conns.End(); n = n.Next() {
		n.Elem().sig = s
	}
	for cur := s.tail; cur != nil; cur = cur.prev {
		cur.sig = s
		if cur.pos == oldEnd {
			cur.pos = s.conns.End()
		}
	}
}
