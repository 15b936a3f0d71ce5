package optimizer

import (
	"math/rand"

	"github.com/hatsuyuki/daymatch/internal/infra/anneal"
	"github.com/hatsuyuki/daymatch/internal/infra/estimate"
	"github.com/hatsuyuki/daymatch/internal/infra/telemetry"
)

// pairCost is est[t][w], or 0 if either side is a hole.
func pairCost(tis, ris []int, est *estimate.Matrix, pos int) int64 {
	t, w := tis[pos], ris[pos]
	if t == Hole || w == Hole {
		return 0
	}
	return est.At(t, w)
}

// swapDelta computes the exact change in Σ est[tis[p]][ris[p]] that
// swapping ris[fm] with ris[to] would cause, without touching any
// position but fm and to — O(1) per call.
func swapDelta(tis, ris []int, est *estimate.Matrix, fm, to int) int64 {
	oldCost := pairCost(tis, ris, est, fm) + pairCost(tis, ris, est, to)
	ris[fm], ris[to] = ris[to], ris[fm]
	newCost := pairCost(tis, ris, est, fm) + pairCost(tis, ris, est, to)
	ris[fm], ris[to] = ris[to], ris[fm] // restore; caller applies the swap itself
	return newCost - oldCost
}

// anneal1 runs the annealed swap search of §4.5 and returns the best
// matching seen, paired positionally with tis.
func anneal1(tis, ris []int, est *estimate.Matrix, params Params, rng *rand.Rand) []int {
	n := len(tis)
	if n < 2 {
		return ris
	}

	var cur int64
	for p := range tis {
		cur += pairCost(tis, ris, est, p)
	}
	best := cur
	bestRis := append([]int(nil), ris...)

	a := anneal.New(params.T0, params.T1, rng)
	iterations := params.Iterations

	for i := 0; i < iterations; i++ {
		tau := float64(i) / float64(iterations)
		a.SetProgress(tau)
		telemetry.OptimizerIterations.Inc()

		fm := rng.Intn(n)
		to := rng.Intn(n)
		if fm == to {
			continue
		}

		delta := swapDelta(tis, ris, est, fm, to)
		ris[fm], ris[to] = ris[to], ris[fm]
		cur += delta

		if cur < best {
			best = cur
			bestRis = append(bestRis[:0], ris...)
		}

		if a.Accept(-float64(delta)) {
			telemetry.OptimizerAccepts.Inc()
			telemetry.SwapDelta.Observe(float64(delta))
		} else {
			ris[fm], ris[to] = ris[to], ris[fm]
			cur -= delta
		}
	}

	return bestRis
}
