// Package rng provides the solver's seedable pseudo-random streams.
//
// §4.2 calls for distinct logical streams: one per worker, seeded
// deterministically from the worker's id, and one fixed-seed stream for
// the global planner (shared by both annealers' internal acceptance draws
// and the optimizer's swap-position draws). Keeping the streams separate —
// rather than sharing one global *rand.Rand — is what makes a worker's
// skill trajectory reproducible independent of how many other workers are
// in play, per the Design Notes in spec.md §9.
package rng

import (
	"math"
	"math/rand"
)

// plannerSeed is fixed so repeated runs of the optimizer and annealers
// follow the same sequence of proposals for a given input.
const plannerSeed = 0x5EED5EED

// NewPlanner returns the single global stream used for annealer acceptance
// draws and the optimizer's swap-position sampling.
func NewPlanner() *rand.Rand {
	return rand.New(rand.NewSource(plannerSeed))
}

// NewWorker returns the logical stream owned by worker id. Seeding
// directly from id keeps each worker's draws reproducible in isolation.
func NewWorker(id int) *rand.Rand {
	return rand.New(rand.NewSource(int64(id) + 1))
}

// InitSkill draws an initial skill vector of length k from r: k i.i.d.
// half-normal samples scaled so the vector's magnitude falls in
// [lo, hi] before rounding (§4.2).
func InitSkill(r *rand.Rand, k int, lo, hi float64) []int {
	b := make([]float64, k)
	var normSq float64
	for i := range b {
		v := r.NormFloat64()
		if v < 0 {
			v = -v
		}
		b[i] = v
		normSq += v * v
	}
	norm := math.Sqrt(normSq)
	if norm == 0 {
		norm = 1e-9
	}
	mu := (lo + r.Float64()*(hi-lo)) / norm

	skill := make([]int, k)
	for i, v := range b {
		skill[i] = int(math.Round(v * mu))
	}
	return skill
}
