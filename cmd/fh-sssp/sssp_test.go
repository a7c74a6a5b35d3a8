package main

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ScottSallinen/fibheap/utils"
)

// Small fixed digraph with known distances from vertex 1.
//
//	1 -> 4 (1), 4 -> 2 (1), 4 -> 3 (1), 4 -> 5 (1),
//	2 -> 0 (1), 2 -> 1 (1), 3 -> 0 (2), 6 -> 2 (1)
func testGraph() *Graph {
	g := &Graph{Out: make([][]Edge, 7)}
	add := func(s, d uint32, w uint64) { g.Out[s] = append(g.Out[s], Edge{To: d, Weight: w}) }
	add(1, 4, 1)
	add(4, 2, 1)
	add(4, 3, 1)
	add(4, 5, 1)
	add(2, 0, 1)
	add(2, 1, 1)
	add(3, 0, 2)
	add(6, 2, 1)
	return g
}

func TestDijkstraFixed(t *testing.T) {
	dist := Dijkstra(testGraph(), 1)
	expectations := []uint64{3, 0, 2, 2, 1, 2, Unreached}
	for v := range expectations {
		if dist[v] != expectations[v] {
			t.Fatalf("vertex %v: distance %v, expected %v", v, dist[v], expectations[v])
		}
	}
}

func TestDijkstraVsOracle(t *testing.T) {
	for tCount := 0; tCount < 10; tCount++ {
		rng := rand.New(rand.NewSource(int64(tCount)))
		n := rng.Intn(200) + 2
		m := rng.Intn(4*n) + 1
		g, wg := GenerateRandomGraph(n, m, 50, rng)
		src := uint32(rng.Intn(n))

		dist := Dijkstra(g, src)
		oracle := OracleDistances(wg, n, src)

		for v := range dist {
			if dist[v] == Unreached {
				if !math.IsInf(oracle[v], 1) {
					t.Fatalf("run %v vertex %v: unreached by us, oracle says %v", tCount, v, oracle[v])
				}
			} else if !utils.FloatEquals(float64(dist[v]), oracle[v]) {
				t.Fatalf("run %v vertex %v: distance %v, oracle %v", tCount, v, dist[v], oracle[v])
			}
		}
	}
}
