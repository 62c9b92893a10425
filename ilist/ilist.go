// Package ilist implements a doubly linked list whose links live inside
// the elements themselves. A Node[T] is embedded in a larger type T, so
// membership changes are O(1) pointer splices with no per-element
// allocation. The list owns linkage only; element lifetime belongs to
// the caller.
package ilist

// Node is a pair of neighbor pointers embedded in a value of type T,
// plus a back-pointer to that value. The zero value is unlinked and is
// lazily initialized to a self-loop, which is how an unlinked node is
// represented: no separate membership flag is needed.
type Node[T any] struct {
	prev, next *Node[T]
	elem       *T
}

func (n *Node[T]) lazyInit() {
	if n.prev == nil && n.next == nil {
		n.prev = n
		n.next = n
	}
}

// Linked reports whether n is currently a member of a list.
func (n *Node[T]) Linked() bool {
	return n.next != nil && n.next != n
}

// Elem returns the value this node is embedded in, or nil for a node
// that was never inserted (such as a list sentinel).
func (n *Node[T]) Elem() *T {
	return n.elem
}

// Bind associates the node with the value it is embedded in without
// changing linkage. Insertion does this automatically; a node that
// enters a list through Swap or TakeFrom must be bound first.
func (n *Node[T]) Bind(elem *T) {
	n.elem = elem
}

// Next returns the node after n, which is the list sentinel when n is
// the last element.
func (n *Node[T]) Next() *Node[T] {
	n.lazyInit()
	return n.next
}

// Prev returns the node before n, which is the list sentinel when n is
// the first element.
func (n *Node[T]) Prev() *Node[T] {
	n.lazyInit()
	return n.prev
}

// reset restores the unlinked self-loop without touching neighbors.
func (n *Node[T]) reset() {
	n.prev = n
	n.next = n
}

// update points both neighbors back at n after n's own pointers were
// assigned.
func (n *Node[T]) update() {
	n.next.prev = n
	n.prev.next = n
}

// Unlink removes n from whatever list it is in. Unlinking an already
// unlinked node is a no-op, so a node may always be unlinked before
// being discarded or reinserted.
func (n *Node[T]) Unlink() {
	n.lazyInit()
	if n.Linked() {
		n.next.prev = n.prev
		n.prev.next = n.next
	}
	n.reset()
}

// linkAfter splices other in immediately after n.
func (n *Node[T]) linkAfter(other *Node[T]) {
	n.lazyInit()
	other.prev = n
	other.next = n.next
	other.update()
}

// linkBefore splices other in immediately before n.
func (n *Node[T]) linkBefore(other *Node[T]) {
	n.lazyInit()
	other.prev = n.prev
	other.next = n
	other.update()
}

// Swap exchanges the list memberships of n and other. An unlinked node
// cannot trade raw neighbor pointers (it would corrupt its own
// self-loop), and adjacent nodes share a pointer, so both get their own
// cases.
func (n *Node[T]) Swap(other *Node[T]) {
	if n == other {
		return
	}
	n.lazyInit()
	other.lazyInit()

	switch {
	case !n.Linked() && !other.Linked():
	case !n.Linked():
		n.prev, n.next = other.prev, other.next
		n.update()
		other.reset()
	case !other.Linked():
		other.prev, other.next = n.prev, n.next
		other.update()
		n.reset()
	case n.next == other:
		n.Unlink()
		other.linkAfter(n)
	case other.next == n:
		other.Unlink()
		n.linkAfter(other)
	default:
		n.prev, other.prev = other.prev, n.prev
		n.next, other.next = other.next, n.next
		n.update()
		other.update()
	}
}

// TakeFrom transfers other's membership to n: n occupies other's former
// position and other becomes unlinked. Any membership n had is dropped
// first. Copying pointers instead of transferring would leave two nodes
// claiming the same neighbors.
func (n *Node[T]) TakeFrom(other *Node[T]) {
	if n == other {
		return
	}
	n.Unlink()
	other.lazyInit()
	if !other.Linked() {
		return
	}
	n.prev, n.next = other.prev, other.next
	n.update()
	other.reset()
}

// List is a circular doubly linked list of values of type T threaded
// through their embedded Node[T]. The zero value is an empty list.
//
// The sentinel returned by End is both the begin and end boundary:
// iteration runs from Front until the sentinel is reached again.
type List[T any] struct {
	root Node[T]
}

// End returns the list's sentinel node.
func (l *List[T]) End() *Node[T] {
	l.root.lazyInit()
	return &l.root
}

// Front returns the first node, or the sentinel when the list is empty.
func (l *List[T]) Front() *Node[T] {
	l.root.lazyInit()
	return l.root.next
}

// Back returns the last node, or the sentinel when the list is empty.
func (l *List[T]) Back() *Node[T] {
	l.root.lazyInit()
	return l.root.prev
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return !l.root.Linked()
}

// Len counts the elements of the list.
func (l *List[T]) Len() int {
	c := 0
	for n := l.Front(); n != l.End(); n = n.next {
		c++
	}
	return c
}

// InsertBefore splices elem's node in immediately before at. The node
// is unlinked from wherever it currently sits first, so the same call
// moves an element within a list or across two lists.
func (l *List[T]) InsertBefore(n *Node[T], elem *T, at *Node[T]) {
	n.Unlink()
	n.elem = elem
	at.linkBefore(n)
}

// InsertAfter splices elem's node in immediately after at.
func (l *List[T]) InsertAfter(n *Node[T], elem *T, at *Node[T]) {
	n.Unlink()
	n.elem = elem
	at.linkAfter(n)
}

// PushBack appends elem to the end of the list.
func (l *List[T]) PushBack(n *Node[T], elem *T) {
	l.InsertBefore(n, elem, l.End())
}

// PushFront prepends elem to the start of the list.
func (l *List[T]) PushFront(n *Node[T], elem *T) {
	l.InsertAfter(n, elem, l.End())
}

// Remove unlinks n and returns the node that followed it. The removed
// node is left unlinked and may be reinserted later.
func (l *List[T]) Remove(n *Node[T]) *Node[T] {
	n.lazyInit()
	next := n.next
	n.Unlink()
	return next
}

// Clear unlinks every element front to back. Elements themselves are
// untouched; their lifetime is owned by the caller.
func (l *List[T]) Clear() {
	for !l.Empty() {
		l.Remove(l.Front())
	}
}

// Swap exchanges the full contents of the two lists.
func (l *List[T]) Swap(other *List[T]) {
	l.root.Swap(&other.root)
}

// TakeFrom moves other's entire contents into l, dropping whatever l
// held. other is left empty but usable.
func (l *List[T]) TakeFrom(other *List[T]) {
	l.Clear()
	l.root.TakeFrom(&other.root)
}
