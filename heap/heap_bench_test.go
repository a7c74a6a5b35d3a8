package heap

import (
	"math/rand"
	"testing"
)

const bench_size = 1 << 14

func benchKeys() []uint64 {
	keys := make([]uint64, bench_size)
	for i := range keys {
		keys[i] = rand.Uint64() >> 1
	}
	return keys
}

func Benchmark_InsertDeleteMin(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h, _ := New[int](4)
		for j, k := range keys {
			h.Insert(j, k)
		}
		for !h.IsEmpty() {
			h.DeleteMin()
		}
	}
}

func Benchmark_DecreaseKey(b *testing.B) {
	keys := benchKeys()
	h, _ := New[int](4)
	nodes := make([]*Node[int], len(keys))
	for j, k := range keys {
		nodes[j], _ = h.Insert(j, k|1) // keep a bit of headroom to decrease
	}
	h.DeleteMin() // force some structure first
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n := nodes[i%len(nodes)]
		if n.detached() || n.Key() == 0 {
			continue
		}
		h.DecreaseKey(n, 1)
	}
}

func Benchmark_Mixed(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h, _ := New[int](4)
		nodes := make([]*Node[int], 0, len(keys))
		for j, k := range keys {
			n, _ := h.Insert(j, k)
			nodes = append(nodes, n)
		}
		for j := 0; j < len(nodes); j += 3 {
			if k := nodes[j].Key(); k > 0 {
				h.DecreaseKey(nodes[j], k/2)
			}
		}
		for !h.IsEmpty() {
			h.DeleteMin()
		}
	}
}
