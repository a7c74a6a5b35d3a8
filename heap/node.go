package heap

import (
	"github.com/ScottSallinen/fibheap/utils"
)

// Node is a vertex of one tree in the forest. The heap owns the structure;
// the caller owns the payload and may hold the *Node as a stable handle for
// DecreaseKey / IncreaseKey / Delete.
type Node[T any] struct {
	key  uint64
	data T

	parent     *Node[T]
	firstChild *Node[T]
	next, prev *Node[T] // sibling ring under parent

	slot *utils.Element[*Node[T]] // position in a rank bucket; non-nil iff currently a root

	rank   int  // number of direct children
	marked bool // lost a child since last becoming a root (or unmarked)
}

// Key returns the node's current key.
func (n *Node[T]) Key() uint64 { return n.key }

// Value returns the node's payload.
func (n *Node[T]) Value() T { return n.data }

// detached reports whether n is held by no heap (e.g. already extracted).
// Every live node is either a root (has a slot) or a child (has a parent).
func (n *Node[T]) detached() bool { return n.parent == nil && n.slot == nil }

// reset clears every structural field: no parent, no children, no siblings,
// no forest handle, mark cleared, rank zero. Key and payload are untouched.
func (n *Node[T]) reset() {
	n.parent = nil
	n.firstChild = nil
	n.next = nil
	n.prev = nil
	n.slot = nil
	n.rank = 0
	n.marked = false
}

// unlink removes n from its parent's child ring, decrementing the parent's
// rank, and returns the former parent. n must have a parent.
func (n *Node[T]) unlink() *Node[T] {
	p := n.parent
	if p.firstChild == n {
		p.firstChild = n.next
	}
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.parent = nil
	n.next = nil
	n.prev = nil
	p.rank--
	return p
}

// adopt splices c in as n's first child. c must be fully unlinked.
func (n *Node[T]) adopt(c *Node[T]) {
	c.parent = n
	c.prev = nil
	c.next = n.firstChild
	if n.firstChild != nil {
		n.firstChild.prev = c
	}
	n.firstChild = c
	n.rank++
}
