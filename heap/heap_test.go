package heap

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ScottSallinen/fibheap/utils"
)

func TestNewBadCapacity(t *testing.T) {
	_, err := New[int](0)
	require.ErrorIs(t, err, ErrBadCapacity)
	_, err = New[int](-3)
	require.ErrorIs(t, err, ErrBadCapacity)

	h, err := New[int](1)
	require.NoError(t, err)
	require.True(t, h.IsEmpty())
}

func TestEmptyHeapOps(t *testing.T) {
	h, _ := New[string](4)

	_, ok := h.FindMin()
	require.False(t, ok)

	_, err := h.DeleteMin()
	require.ErrorIs(t, err, ErrEmptyHeap)

	require.ErrorIs(t, h.DecreaseKey(nil, 1), ErrNilNode)
	_, err = h.Delete(nil)
	require.ErrorIs(t, err, ErrNilNode)
	_, err = h.IncreaseKey(nil, 1)
	require.ErrorIs(t, err, ErrNilNode)

	// Clear on an empty heap is a no-op, not a crash.
	h.Clear(ReleasePayloads, func(string) { t.Fatal("nothing to release") })
	require.True(t, h.IsEmpty())
}

// Insert keys [10,3,7,1]: min is 1, then 3 after one DeleteMin.
func TestExtractOrder(t *testing.T) {
	h, _ := New[string](4)
	for _, k := range []uint64{10, 3, 7, 1} {
		_, err := h.Insert(utils.V(k), k)
		require.NoError(t, err)
	}
	require.EqualValues(t, 4, h.Len())

	data, ok := h.FindMin()
	require.True(t, ok)
	require.Equal(t, "1", data)

	n, err := h.DeleteMin()
	require.NoError(t, err)
	require.EqualValues(t, 1, n.Key())
	require.Equal(t, "1", n.Value())

	data, ok = h.FindMin()
	require.True(t, ok)
	require.Equal(t, "3", data)

	n, err = h.DeleteMin()
	require.NoError(t, err)
	require.EqualValues(t, 3, n.Key())
	require.EqualValues(t, 2, h.Len())
}

// A zero key must be reported as the minimum immediately (fast path only).
func TestInsertZeroKey(t *testing.T) {
	h, _ := New[string](2)
	h.Insert("later", 42)
	h.Insert("first", 0)

	data, ok := h.FindMin()
	require.True(t, ok)
	require.Equal(t, "first", data)
	checkInvariants(t, h)
}

// Five singletons, one DeleteMin: consolidation must leave at most one tree
// per rank bucket, and exactly one node is gone.
func TestConsolidationLeavesUniqueRanks(t *testing.T) {
	h, _ := New[int](1)
	for i := 0; i < 5; i++ {
		h.Insert(i, uint64(i+1))
	}
	require.EqualValues(t, 5, h.Len())

	n, err := h.DeleteMin()
	require.NoError(t, err)
	require.EqualValues(t, 1, n.Key())
	require.EqualValues(t, 4, h.Len())

	for r, bucket := range h.forest {
		require.LessOrEqual(t, bucket.Len(), 1, "bucket %v holds %v trees", r, bucket.Len())
	}
	checkInvariants(t, h)
}

// Returned nodes are fully reset and no longer accepted by the heap.
func TestDeleteMinResetsNode(t *testing.T) {
	h, _ := New[int](2)
	a, _ := h.Insert(1, 5)
	h.Insert(2, 9)

	n, err := h.DeleteMin()
	require.NoError(t, err)
	require.Same(t, a, n)
	require.Nil(t, n.parent)
	require.Nil(t, n.firstChild)
	require.Nil(t, n.next)
	require.Nil(t, n.prev)
	require.Nil(t, n.slot)
	require.Zero(t, n.rank)
	require.False(t, n.marked)

	require.ErrorIs(t, h.DecreaseKey(n, 1), ErrDetachedNode)
	_, err = h.Delete(n)
	require.ErrorIs(t, err, ErrDetachedNode)
}

func TestDecreaseKey(t *testing.T) {
	h, _ := New[string](4)
	n, _ := h.Insert("x", 5)
	h.Insert("y", 4)

	data, _ := h.FindMin()
	require.Equal(t, "y", data)

	require.NoError(t, h.DecreaseKey(n, 2))
	require.EqualValues(t, 3, n.Key())
	data, ok := h.FindMin()
	require.True(t, ok)
	require.Equal(t, "x", data)
	checkInvariants(t, h)
}

// Underflow contract: decreasing below zero is rejected, keys never wrap.
func TestDecreaseKeyUnderflow(t *testing.T) {
	h, _ := New[string](2)
	n, _ := h.Insert("x", 3)

	require.ErrorIs(t, h.DecreaseKey(n, 5), ErrKeyUnderflow)
	require.EqualValues(t, 3, n.Key(), "a rejected decrease must not touch the key")

	require.NoError(t, h.DecreaseKey(n, 3))
	require.EqualValues(t, 0, n.Key())
	checkInvariants(t, h)
}

// Delete must extract exactly the requested node even when several live
// nodes share key 0.
func TestDeleteExactNodeAmongEqualKeys(t *testing.T) {
	h, _ := New[int](2)
	var nodes []*Node[int]
	for i := 0; i < 4; i++ {
		n, _ := h.Insert(i, 0)
		nodes = append(nodes, n)
	}

	n, err := h.Delete(nodes[2])
	require.NoError(t, err)
	require.Same(t, nodes[2], n)
	require.Equal(t, 2, n.Value())
	require.EqualValues(t, 0, n.Key(), "the key survives deletion")
	require.EqualValues(t, 3, h.Len())

	// The remaining zero-key nodes are all still present.
	seen := map[int]bool{}
	for !h.IsEmpty() {
		m, err := h.DeleteMin()
		require.NoError(t, err)
		seen[m.Value()] = true
	}
	require.Equal(t, map[int]bool{0: true, 1: true, 3: true}, seen)
}

// Delete of a non-root uses the cut machinery; force a structure first.
func TestDeleteNonRoot(t *testing.T) {
	h, _ := New[int](1)
	nodes := make([]*Node[int], 0, 16)
	for i := 1; i <= 16; i++ {
		n, _ := h.Insert(i, uint64(i))
		nodes = append(nodes, n)
	}
	_, err := h.DeleteMin() // consolidates, creating multi-level trees
	require.NoError(t, err)
	checkInvariants(t, h)

	// nodes[0] (key 1) is gone; delete a few of the survivors directly.
	for _, n := range []*Node[int]{nodes[7], nodes[12], nodes[3]} {
		got, err := h.Delete(n)
		require.NoError(t, err)
		require.Same(t, n, got)
		checkInvariants(t, h)
	}
	require.EqualValues(t, 12, h.Len())
}

func TestIncreaseKey(t *testing.T) {
	h, _ := New[string](2)
	a, _ := h.Insert("a", 2)
	h.Insert("b", 5)

	n, err := h.IncreaseKey(a, 10)
	require.NoError(t, err)
	require.Same(t, a, n)
	require.EqualValues(t, 12, n.Key())

	data, _ := h.FindMin()
	require.Equal(t, "b", data)
	require.EqualValues(t, 2, h.Len())
	checkInvariants(t, h)

	// Overflow is rejected up front, heap untouched.
	_, err = h.IncreaseKey(n, math.MaxUint64)
	require.ErrorIs(t, err, ErrKeyOverflow)
	require.EqualValues(t, 2, h.Len())
	checkInvariants(t, h)
}

// Cascading cuts: carve up a consolidated tree with targeted decreases and
// make sure the structure stays sound throughout.
func TestDecreaseKeyCascade(t *testing.T) {
	h, _ := New[int](1)
	nodes := make([]*Node[int], 0, 32)
	for i := 0; i < 32; i++ {
		n, _ := h.Insert(i, uint64(100+i))
		nodes = append(nodes, n)
	}
	_, err := h.DeleteMin()
	require.NoError(t, err)
	checkInvariants(t, h)

	// Repeatedly pull deep nodes to the front; every second one should
	// eventually trip a cascading cut on its marked ancestors.
	for i := 31; i >= 16; i-- {
		require.NoError(t, h.DecreaseKey(nodes[i], nodes[i].Key()-uint64(i)))
		checkInvariants(t, h)
	}
	data, ok := h.FindMin()
	require.True(t, ok)
	require.Equal(t, 16, data)
}

// Heapsort property: any multiset of keys comes back out in non-decreasing order.
func TestHeapsort(t *testing.T) {
	keys := make([]uint64, 500)
	for i := range keys {
		keys[i] = uint64(i % 97) // plenty of duplicates
	}
	utils.Shuffle(keys)

	h, _ := New[uint64](4)
	for _, k := range keys {
		_, err := h.Insert(k, k)
		require.NoError(t, err)
	}
	checkInvariants(t, h)

	sorted := make([]uint64, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	for i, want := range sorted {
		n, err := h.DeleteMin()
		require.NoError(t, err)
		require.EqualValues(t, want, n.Key(), "extraction %v", i)
	}
	require.True(t, h.IsEmpty())
	_, err := h.DeleteMin()
	require.ErrorIs(t, err, ErrEmptyHeap)
}

func TestClear(t *testing.T) {
	h, _ := New[int](2)
	for i := 0; i < 20; i++ {
		h.Insert(i, uint64(i))
	}
	h.DeleteMin() // give Clear some real trees to walk

	released := 0
	h.Clear(ReleasePayloads, func(int) { released++ })
	require.Equal(t, 19, released)
	require.True(t, h.IsEmpty())
	_, ok := h.FindMin()
	require.False(t, ok)

	// Reusable afterward.
	h.Insert(7, 7)
	data, ok := h.FindMin()
	require.True(t, ok)
	require.Equal(t, 7, data)
	checkInvariants(t, h)

	h.Clear(LeavePayloads, nil)
	require.True(t, h.IsEmpty())
}
