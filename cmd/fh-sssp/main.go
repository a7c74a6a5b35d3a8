package main

import (
	"flag"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/fibheap/enforce"
	"github.com/ScottSallinen/fibheap/utils"
)

// CheckAgainstOracle compares our distances against gonum's Dijkstra.
func CheckAgainstOracle(dist []uint64, oracle []float64) {
	enforce.ENFORCE(len(dist) == len(oracle), "result size mismatch")
	for v := range dist {
		if dist[v] == Unreached {
			enforce.ENFORCE(math.IsInf(oracle[v], 1), "vertex ", v, " unreached by us but oracle found ", oracle[v])
		} else {
			enforce.ENFORCE(utils.FloatEquals(float64(dist[v]), oracle[v]), "vertex ", v, " distance ", dist[v], " oracle ", oracle[v])
		}
	}
}

func main() {
	nptr := flag.Int("n", 10000, "Number of vertices")
	mptr := flag.Int("m", 80000, "Number of edges (best-effort)")
	wptr := flag.Uint64("w", 100, "Maximum edge weight")
	sptr := flag.Uint("src", 0, "Source vertex")
	optr := flag.Bool("o", true, "Compare against the gonum oracle")
	vptr := flag.Int("v", 0, "Log verbosity (0=info 1=debug 2=trace)")
	flag.Parse()
	utils.SetLevel(*vptr)

	src := uint32(*sptr)
	enforce.ENFORCE(int(src) < *nptr, "source vertex out of range")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g, wg := GenerateRandomGraph(*nptr, *mptr, *wptr, rng)
	edges := 0
	for v := range g.Out {
		edges += len(g.Out[v])
	}
	log.Info().Msg("Graph: " + utils.V(*nptr) + " vertices, " + utils.V(edges) + " edges")

	watch := utils.Watch{}
	watch.Start()
	dist := Dijkstra(g, src)
	log.Info().Msg("Dijkstra (fibonacci heap): " + utils.V(watch.Elapsed()))

	reached := 0
	furthest := uint64(0)
	for v := range dist {
		if dist[v] != Unreached {
			reached++
			furthest = utils.Max(furthest, dist[v])
		}
	}
	log.Info().Msg("Reached " + utils.V(reached) + " vertices, furthest at distance " + utils.V(furthest))

	if *optr {
		watch.Start()
		oracle := OracleDistances(wg, *nptr, src)
		log.Info().Msg("Dijkstra (gonum oracle): " + utils.V(watch.Elapsed()))
		CheckAgainstOracle(dist, oracle)
		log.Info().Msg("Oracle comparison passed")
	}
}
