package main

import (
	"math/rand"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// GenerateRandomGraph creates a random weighted digraph with n vertices and
// (up to) m distinct edges, built in both our adjacency form and gonum's, so
// the gonum copy can serve as the correctness oracle.
func GenerateRandomGraph(n, m int, maxWeight uint64, rng *rand.Rand) (*Graph, *simple.WeightedDirectedGraph) {
	g := &Graph{Out: make([][]Edge, n)}
	wg := simple.NewWeightedDirectedGraph(0, 0)
	for i := 0; i < n; i++ {
		wg.AddNode(simple.Node(int64(i)))
	}

	for i := 0; i < m; i++ {
		src := rng.Intn(n)
		dst := rng.Intn(n)
		if src == dst || wg.HasEdgeFromTo(int64(src), int64(dst)) {
			continue // skip rather than retry; edge count is best-effort
		}
		w := uint64(rng.Int63n(int64(maxWeight))) + 1
		g.Out[src] = append(g.Out[src], Edge{To: uint32(dst), Weight: w})
		wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(int64(src)), simple.Node(int64(dst)), float64(w)))
	}
	return g, wg
}

// OracleDistances runs gonum's Dijkstra over the same graph. Unreachable
// vertices come back as +Inf.
func OracleDistances(wg *simple.WeightedDirectedGraph, n int, src uint32) []float64 {
	shortest := path.DijkstraFrom(wg.Node(int64(src)), wg)
	dists := make([]float64, n)
	for v := 0; v < n; v++ {
		dists[v] = shortest.WeightTo(int64(v))
	}
	return dists
}
