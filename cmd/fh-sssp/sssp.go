package main

import (
	"math"

	"github.com/ScottSallinen/fibheap/enforce"
	"github.com/ScottSallinen/fibheap/heap"
)

// Unreached marks a vertex no path has relaxed yet.
const Unreached = math.MaxUint64

type Edge struct {
	To     uint32
	Weight uint64
}

type Graph struct {
	Out [][]Edge
}

func (g *Graph) NumVertices() int { return len(g.Out) }

// Dijkstra computes single-source shortest paths. Vertex selection is the
// heap's DeleteMin; every edge relaxation is a DecreaseKey, which is the
// whole reason a Fibonacci heap earns its keep here.
func Dijkstra(g *Graph, src uint32) []uint64 {
	n := g.NumVertices()
	dist := make([]uint64, n)
	handles := make([]*heap.Node[uint32], n)

	h, err := heap.New[uint32](8)
	enforce.ENFORCE(err)

	for v := range dist {
		dist[v] = Unreached
	}
	dist[src] = 0
	for v := 0; v < n; v++ {
		handles[v], err = h.Insert(uint32(v), dist[v])
		enforce.ENFORCE(err)
	}

	for !h.IsEmpty() {
		node, err := h.DeleteMin()
		enforce.ENFORCE(err)
		u := node.Value()
		du := node.Key()
		handles[u] = nil
		if du == Unreached {
			break // everything left is unreachable
		}
		for _, e := range g.Out[u] {
			nd := du + e.Weight
			if nd < du {
				continue // distance overflow; cannot improve anything
			}
			if nd < dist[e.To] {
				enforce.ENFORCE(h.DecreaseKey(handles[e.To], dist[e.To]-nd))
				dist[e.To] = nd
			}
		}
	}
	return dist
}
