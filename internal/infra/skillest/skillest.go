// Package skillest re-fits a worker's estimated skill vector by simulated
// annealing against that worker's own completion history (§4.6). It is
// invoked once per worker, immediately after that worker completes a
// task, and shares the dispatch loop's long-lived day-progress annealer
// rather than creating its own — so its acceptance temperature reflects
// how far into the contest the loop already is.
package skillest

import (
	"log"
	"math/rand"

	"github.com/hatsuyuki/daymatch/internal/domain"
	"github.com/hatsuyuki/daymatch/internal/infra/anneal"
	"github.com/hatsuyuki/daymatch/internal/infra/telemetry"
)

// Params bounds the re-estimation search.
type Params struct {
	Iterations  int
	ProposalMax int // exclusive upper bound for proposed skill values, U{0,...,ProposalMax-1}
}

// loss computes L(skill) = Σ |observed_duration - est_duration| over a
// worker's history, against a candidate task difficulty lookup.
func loss(history []domain.HistoryEntry, diffs [][]int, skill []int) int64 {
	var total int64
	for _, h := range history {
		est := estDuration(diffs[h.TaskID], skill)
		diff := int64(h.Duration) - est
		if diff < 0 {
			diff = -diff
		}
		total += diff
	}
	return total
}

// estDuration mirrors estimate.Matrix's formula for a single (task, skill)
// pair, recomputed directly here since the estimator explores skill
// vectors that never get written into the shared matrix until the best
// one is found.
func estDuration(diff, skill []int) int64 {
	var sum int64
	for k, d := range diff {
		s := 0
		if k < len(skill) {
			s = skill[k]
		}
		if v := d - s; v > 0 {
			sum += int64(v)
		}
	}
	if sum < 1 {
		sum = 1
	}
	return sum
}

// Reestimate runs the §4.6 procedure for worker w against diffs (indexed
// by task id) using the shared day-progress annealer a and the worker's
// own RNG stream rng, then overwrites w.Skill with the best vector found.
// With an empty history this is a no-op, per spec.md §8's idempotence
// property.
func Reestimate(w *domain.Worker, diffs [][]int, a *anneal.Annealer, rng *rand.Rand, params Params) {
	if len(w.History) == 0 {
		return
	}

	skill := append([]int(nil), w.Skill...)
	bestSkill := append([]int(nil), skill...)

	curLoss := loss(w.History, diffs, skill)
	initialLoss := curLoss
	bestLoss := curLoss

	k := len(skill)
	for i := 0; i < params.Iterations; i++ {
		telemetry.SkillEstimatorIterations.Inc()

		idx := rng.Intn(k)
		curV := skill[idx]
		newV := rng.Intn(params.ProposalMax)
		skill[idx] = newV

		newLoss := loss(w.History, diffs, skill)

		if newLoss < bestLoss {
			bestLoss = newLoss
			bestSkill = append(bestSkill[:0], skill...)
			telemetry.SkillEstimatorImprovements.Inc()
		}

		if a.Accept(float64(curLoss - newLoss)) {
			curLoss = newLoss
		} else {
			skill[idx] = curV
		}
	}

	w.Skill = bestSkill
	log.Printf("[skillest] worker %d: re-estimated over %d history entries, loss %d -> %d", w.ID, len(w.History), initialLoss, bestLoss)
}
