package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/fibheap/enforce"
	"github.com/ScottSallinen/fibheap/heap"
	"github.com/ScottSallinen/fibheap/utils"
)

// u64 adapts a raw key to the binary-heap baseline's interface.
type u64 uint64

func (a u64) Less(b u64) bool { return a < b }

func randomKeys(n int, rng *rand.Rand) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = rng.Uint64() >> 1
	}
	utils.Shuffle(keys)
	return keys
}

// heapsortFib times insert-all / delete-min-all, recording per-extraction latency.
func heapsortFib(keys []uint64) (total time.Duration, lat []int64) {
	h, err := heap.New[int](4)
	enforce.ENFORCE(err)
	lat = make([]int64, 0, len(keys))

	watch := utils.Watch{}
	watch.Start()
	for i, k := range keys {
		_, err := h.Insert(i, k)
		enforce.ENFORCE(err)
	}
	last := uint64(0)
	for !h.IsEmpty() {
		opStart := time.Now()
		n, err := h.DeleteMin()
		lat = append(lat, time.Since(opStart).Nanoseconds())
		enforce.ENFORCE(err)
		enforce.ENFORCE(n.Key() >= last, "extraction out of order")
		last = n.Key()
	}
	return watch.Elapsed(), lat
}

// heapsortBaseline is the same workload on the slice-backed binary heap.
func heapsortBaseline(keys []uint64) time.Duration {
	watch := utils.Watch{}
	watch.Start()
	pq := make(utils.PQ[u64], 0, len(keys))
	for _, k := range keys {
		pq.Push(u64(k))
	}
	last := u64(0)
	for len(pq) > 0 {
		v := pq.Pop()
		enforce.ENFORCE(v >= last, "extraction out of order")
		last = v
	}
	return watch.Elapsed()
}

// decreaseWorkload measures the fibonacci heap's signature operation: build,
// consolidate once, then hammer DecreaseKey.
func decreaseWorkload(keys []uint64, rng *rand.Rand) time.Duration {
	h, err := heap.New[int](4)
	enforce.ENFORCE(err)
	nodes := make([]*heap.Node[int], len(keys))
	for i, k := range keys {
		nodes[i], err = h.Insert(i, k|1)
		enforce.ENFORCE(err)
	}
	first, err := h.DeleteMin()
	enforce.ENFORCE(err)

	watch := utils.Watch{}
	watch.Start()
	for i := 0; i < len(keys); i++ {
		n := nodes[rng.Intn(len(nodes))]
		if n == first || n.Key() == 0 {
			continue
		}
		enforce.ENFORCE(h.DecreaseKey(n, 1+n.Key()/2))
	}
	return watch.Elapsed()
}

func main() {
	nptr := flag.Int("n", 1<<20, "Number of keys")
	tptr := flag.Int("t", 3, "Trials")
	vptr := flag.Int("v", 0, "Log verbosity (0=info 1=debug 2=trace)")
	flag.Parse()
	utils.SetLevel(*vptr)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for trial := 0; trial < *tptr; trial++ {
		keys := randomKeys(*nptr, rng)

		fibTime, lat := heapsortFib(keys)
		baseTime := heapsortBaseline(keys)
		decTime := decreaseWorkload(keys, rng)

		log.Info().Msg("Trial " + utils.V(trial) + ": " + utils.V(*nptr) + " keys")
		log.Info().Msg("  heapsort fib: " + utils.V(fibTime) + " baseline: " + utils.V(baseTime))
		log.Info().Msg("  delete-min latency (ns) p50: " + utils.V(utils.Median(lat)) +
			" p95: " + utils.V(utils.Percentile(lat, 95)) +
			" p99: " + utils.V(utils.Percentile(lat, 99)))
		log.Info().Msg("  decrease-key x" + utils.V(*nptr) + ": " + utils.V(decTime))
	}
	utils.MemoryStats()
}
