// Package heap implements a Fibonacci heap keyed by uint64 (0 is the
// smallest possible key), generic over the payload type.
// Insert, FindMin and DecreaseKey are O(1) amortized; DeleteMin and Delete
// are O(log n) amortized. IncreaseKey is deliberately composed from Delete
// plus re-insertion, so it is O(log n) too.
//
// The forest is kept as rank buckets: bucket r holds every current root
// whose node has exactly r children. Not safe for concurrent use; callers
// sharing a heap across goroutines must serialize externally.
package heap

import (
	"errors"
	"math"

	"github.com/ScottSallinen/fibheap/utils"
)

// Every public operation is total: bad input yields one of these, never a crash.
var (
	ErrBadCapacity  = errors.New("initial rank capacity must be at least 1")
	ErrEmptyHeap    = errors.New("heap is empty")
	ErrHeapFull     = errors.New("node count at maximum")
	ErrNilNode      = errors.New("nil node")
	ErrDetachedNode = errors.New("node is not held by a heap")
	ErrKeyUnderflow = errors.New("decrease amount exceeds current key")
	ErrKeyOverflow  = errors.New("increase amount overflows the key")
)

type Heap[T any] struct {
	forest []*utils.List[*Node[T]] // rank buckets; grows upward, never shrinks
	min    *Node[T]                // cached global minimum; nil iff the heap is empty
	count  uint64
}

// New creates a heap with room for trees up to the given rank before the
// forest has to grow.
func New[T any](initialRanks int) (*Heap[T], error) {
	if initialRanks < 1 {
		return nil, ErrBadCapacity
	}
	h := &Heap[T]{forest: make([]*utils.List[*Node[T]], initialRanks)}
	for i := range h.forest {
		h.forest[i] = &utils.List[*Node[T]]{}
	}
	return h, nil
}

func (h *Heap[T]) IsEmpty() bool { return h.count == 0 }

// Len returns the number of live nodes.
func (h *Heap[T]) Len() uint64 { return h.count }

// FindMin returns the payload of the minimum-key node in O(1).
func (h *Heap[T]) FindMin() (data T, ok bool) {
	if h.min == nil {
		return data, false
	}
	return h.min.data, true
}

// Insert adds data under the given key as a new singleton tree and returns
// its node handle.
func (h *Heap[T]) Insert(data T, key uint64) (*Node[T], error) {
	if h.count == math.MaxUint64 {
		return nil, ErrHeapFull
	}
	n := &Node[T]{key: key, data: data}
	h.insertNode(n)
	return n, nil
}

// insertNode files a fully reset node as a rank-0 root. Shared with the
// re-insertion half of IncreaseKey.
func (h *Heap[T]) insertNode(n *Node[T]) {
	h.fileRoot(n)
	h.updateMinFast(n)
	h.count++
}

// ClearPolicy selects what Clear does with payloads: teardown is the only
// point where the heap may take over payload destruction.
type ClearPolicy uint8

const (
	LeavePayloads   ClearPolicy = iota // payloads stay with the caller
	ReleasePayloads                    // run the release hook on every payload
)

// Clear tears down every tree, optionally releasing payloads. Safe on an
// empty heap. Rank capacity is retained, so the heap is immediately reusable.
func (h *Heap[T]) Clear(policy ClearPolicy, release func(T)) {
	for _, bucket := range h.forest {
		for {
			root, ok := bucket.PopFront()
			if !ok {
				break
			}
			root.slot = nil
			h.drainTree(root, policy, release)
		}
	}
	h.min = nil
	h.count = 0
}

// drainTree resets every node of the tree rooted at n. Iterative, so a
// pathologically tall tree cannot exhaust the stack.
func (h *Heap[T]) drainTree(n *Node[T], policy ClearPolicy, release func(T)) {
	var zero T
	stack := []*Node[T]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for c := cur.firstChild; c != nil; c = c.next {
			stack = append(stack, c)
		}
		if policy == ReleasePayloads && release != nil {
			release(cur.data)
		}
		cur.data = zero // drop the payload reference even if the caller keeps the Node
		cur.reset()
	}
}
