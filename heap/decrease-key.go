package heap

// DecreaseKey subtracts dec from n's key, cutting n loose if the new key
// violates heap order against its parent. O(1) amortized.
// An amount larger than the current key is rejected with ErrKeyUnderflow and
// the heap is left untouched; keys never wrap.
func (h *Heap[T]) DecreaseKey(n *Node[T], dec uint64) error {
	if n == nil {
		return ErrNilNode
	}
	if n.detached() {
		return ErrDetachedNode
	}
	if dec > n.key {
		return ErrKeyUnderflow
	}
	n.key -= dec
	if n.parent != nil && n.key < n.parent.key {
		h.cut(n)
	}
	if n.parent == nil {
		// n is a root (it either was one, or the cut just made it one); a
		// single comparison keeps the cached minimum correct.
		h.updateMinFast(n)
	}
	return nil
}

// cut detaches n from its parent, files it as a root of its own (unchanged)
// rank, and walks the loss up the former parent's chain.
func (h *Heap[T]) cut(n *Node[T]) {
	p := n.unlink()
	n.marked = false // becoming a root clears the mark
	h.fileRoot(n)
	h.propagateLoss(p)
}

// propagateLoss applies the one-lost-child rule iteratively rather than by
// recursion, so tree height cannot exhaust the stack. A root just moves down
// one bucket; an unmarked ancestor takes the mark and the walk stops; a
// marked ancestor is cut as well and the walk continues above it.
func (h *Heap[T]) propagateLoss(p *Node[T]) {
	for {
		if p.parent == nil {
			h.refileRootDown(p)
			return
		}
		if !p.marked {
			p.marked = true
			return
		}
		next := p.unlink()
		p.marked = false
		h.fileRoot(p)
		p = next
	}
}
