package slot

import "github.com/slotparty/slotparty/ilist"

// Connection owns one handler's membership in a signal. It is created
// by Signal.Connect and stays live until Disconnect or the signal's
// Close. The zero value is a valid unbound connection.
//
// A connection belongs to at most one signal at a time; there is no way
// to reparent a bound connection onto a different signal other than
// moving it, which keeps the binding unique throughout.
type Connection[T any] struct {
	node ilist.Node[Connection[T]]
	fn   func(T)
	sig  *Signal[T]
}

// Connected reports whether the connection is currently bound to a
// signal.
func (c *Connection[T]) Connected() bool {
	return c.sig != nil
}

// Disconnect removes the handler from its signal. Safe to call from
// any handler during an emit of the same signal, including from the
// handler being disconnected. Disconnecting an unbound connection is a
// no-op.
func (c *Connection[T]) Disconnect() {
	if c.sig == nil {
		return
	}
	// Advance every cursor parked on this connection before
	// unlinking it. This is the ordering that keeps reentrant
	// dispatch safe: no live cursor is ever left pointing at a
	// connection about to be removed.
	for cur := c.sig.tail; cur != nil; cur = cur.prev {
		if cur.pos == &c.node {
			cur.pos = cur.pos.Next()
		}
	}
	c.node.Unlink()
	c.sig = nil
}

// MoveTo transfers the handler and binding to dst. dst gives up any
// membership of its own, then takes over c's position in the list, so
// relative call order is preserved. Cursors parked on c resume at dst.
// c is left unbound but valid.
func (c *Connection[T]) MoveTo(dst *Connection[T]) {
	if dst == c {
		return
	}
	dst.Disconnect()
	dst.fn = c.fn
	dst.sig = c.sig
	if c.sig != nil {
		// Splice dst in right behind c, then let Disconnect advance
		// any cursor parked on c onto dst.
		c.sig.conns.InsertAfter(&dst.node, dst, &c.node)
	}
	c.Disconnect()
	c.fn = nil
}

// Swap exchanges the two connections' handlers, bindings, and list
// positions. Handlers travel with their positions, so dispatch order is
// unchanged; what swaps is which handle owns which registration.
func (c *Connection[T]) Swap(other *Connection[T]) {
	if other == c {
		return
	}
	c.node.Bind(c)
	other.node.Bind(other)
	// A cursor parked on either node must not travel with it to its
	// new slot (or into another signal's list). Repoint it at the node
	// moving in, which carries the handler that will occupy the slot
	// the cursor is parked on.
	if c.sig != nil {
		c.sig.swapCursors(&c.node, &other.node)
	}
	if other.sig != nil && other.sig != c.sig {
		other.sig.swapCursors(&c.node, &other.node)
	}
	c.node.Swap(&other.node)
	c.fn, other.fn = other.fn, c.fn
	c.sig, other.sig = other.sig, c.sig
}
