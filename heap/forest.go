package heap

import (
	"github.com/ScottSallinen/fibheap/utils"
)

// Rank-bucket bookkeeping. A root's bucket index always equals its rank
// (its number of direct children); the node's slot is its handle there.

// fileRoot places n into the bucket matching its rank, growing the forest if
// that rank has no bucket yet.
func (h *Heap[T]) fileRoot(n *Node[T]) {
	h.growTo(n.rank + 1)
	n.slot = h.forest[n.rank].PushBack(n)
}

// unfileRoot removes n from its bucket.
func (h *Heap[T]) unfileRoot(n *Node[T]) {
	h.forest[n.rank].Remove(n.slot)
	n.slot = nil
}

// refileRootDown moves a root that just lost a child out of its old bucket.
// The rank field is already decremented, so the old bucket is rank+1.
func (h *Heap[T]) refileRootDown(n *Node[T]) {
	h.forest[n.rank+1].Remove(n.slot)
	n.slot = h.forest[n.rank].PushBack(n)
}

// growTo extends the forest to at least ranks buckets. It never shrinks.
func (h *Heap[T]) growTo(ranks int) {
	for len(h.forest) < ranks {
		h.forest = append(h.forest, &utils.List[*Node[T]]{})
	}
}

// updateMinFast is the O(1) path: n just became (or changed as) a root, so
// only a single comparison against the cached minimum is needed.
func (h *Heap[T]) updateMinFast(n *Node[T]) {
	if h.min == nil || n.key < h.min.key {
		h.min = n
	}
}

// rescanMin recomputes the cached minimum from every root. After
// consolidation each bucket holds at most one tree, so this is O(log n).
func (h *Heap[T]) rescanMin() {
	h.min = nil
	for _, bucket := range h.forest {
		for e := bucket.Front(); e != nil; e = e.Next() {
			if h.min == nil || e.Value.key < h.min.key {
				h.min = e.Value
			}
		}
	}
}

// consolidate merges equal-rank trees until every bucket holds at most one,
// then rescans for the minimum (the fast path cannot identify it after bulk
// restructuring). Each merge files the result one bucket up, so newly
// created buckets are visited as the loop reaches them.
func (h *Heap[T]) consolidate() {
	for r := 0; r < len(h.forest); r++ {
		bucket := h.forest[r]
		for bucket.Len() > 1 {
			a, _ := bucket.PopFront()
			b, _ := bucket.PopBack()
			a.slot = nil
			b.slot = nil
			winner := merge(a, b)
			h.growTo(r + 2)
			winner.slot = h.forest[r+1].PushBack(winner)
		}
	}
	h.rescanMin()
}

// merge links the larger-key root under the smaller; on a tie the
// first-taken root stays the parent. Both must be unfiled roots.
func merge[T any](a, b *Node[T]) *Node[T] {
	if a.key <= b.key {
		a.adopt(b)
		return a
	}
	b.adopt(a)
	return b
}
