package heap

import (
	"math"
)

// DeleteMin extracts the minimum-key node. The returned node is fully reset
// (no links, no mark, rank zero) with its key and payload intact; payload
// ownership passes to the caller. O(log n) amortized.
func (h *Heap[T]) DeleteMin() (*Node[T], error) {
	if h.min == nil {
		return nil, ErrEmptyHeap
	}
	m := h.min
	h.unfileRoot(m)
	h.extract(m)
	return m, nil
}

// Delete removes exactly n, regardless of key. A non-root is detached with
// the same cut-and-mark walk as DecreaseKey; a root is unfiled directly.
// Deletion never routes through the global minimum, so nodes sharing a key
// (including several key-0 nodes) are never confused. The key is preserved
// on the returned node.
func (h *Heap[T]) Delete(n *Node[T]) (*Node[T], error) {
	if n == nil {
		return nil, ErrNilNode
	}
	if n.detached() {
		return nil, ErrDetachedNode
	}
	if n.parent != nil {
		p := n.unlink()
		h.propagateLoss(p)
	} else {
		h.unfileRoot(n)
	}
	h.extract(n)
	return n, nil
}

// extract promotes n's children to independent roots, consolidates, and
// leaves n fully reset. n must already be unfiled and unlinked.
func (h *Heap[T]) extract(n *Node[T]) {
	for c := n.firstChild; c != nil; {
		next := c.next
		c.parent = nil
		c.next = nil
		c.prev = nil
		c.marked = false // roots never carry a mark
		h.fileRoot(c)
		c = next
	}
	h.consolidate()
	h.count--
	n.reset()
}

// IncreaseKey adds inc to n's key, implemented as Delete followed by
// re-insertion: O(log n) rather than a re-cut scheme, a deliberate
// simplicity-over-optimality trade. Overflow is rejected with ErrKeyOverflow
// before anything is touched.
func (h *Heap[T]) IncreaseKey(n *Node[T], inc uint64) (*Node[T], error) {
	if n == nil {
		return nil, ErrNilNode
	}
	if inc > math.MaxUint64-n.key {
		return nil, ErrKeyOverflow
	}
	if _, err := h.Delete(n); err != nil {
		return nil, err
	}
	n.key += inc
	h.insertNode(n)
	return n, nil
}
