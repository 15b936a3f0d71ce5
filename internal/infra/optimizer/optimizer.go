// Package optimizer implements the per-day assignment optimizer (§4.5): a
// bipartite matching between ready tasks and free workers, seeded by a
// greedy priority pass and refined by a simulated-annealing swap search
// over an exact, O(1)-per-iteration incremental delta.
//
// No Hungarian/assignment-optimal algorithm is used — the per-day turn
// budget is fixed, and 10,000 annealed swaps converge well enough for
// contest-sized inputs (§4.5's rationale).
package optimizer

import (
	"log"
	"math/rand"
	"sort"

	"github.com/hatsuyuki/daymatch/internal/domain"
	"github.com/hatsuyuki/daymatch/internal/infra/estimate"
)

// Hole marks an unmatched position in either the task or the worker list:
// a task-side hole means "this worker is assigned to nothing today", a
// worker-side hole means "this task waits".
const Hole = -1

// Params: Iterations bounds the annealed swap search; T0 and T1 are this
// search's own short-lived annealer's endpoints — both come from config but are
// named here since the whole package hinges on them.
type Params struct {
	Iterations int
	T0, T1     float64
}

// Pair is a committed (task, worker) match to start today.
type Pair struct {
	TaskID   int
	WorkerID int
}

// Run computes today's assignment: priority-sort the ready tasks, greedily
// seed a worker for each, anneal the seeded matching, and return the
// committed pairs. rng is the shared planner stream (spec.md §9).
func Run(tasks []*domain.Task, availableIDs, freeWorkerIDs []int, est *estimate.Matrix, params Params, rng *rand.Rand) []Pair {
	if len(availableIDs) == 0 || len(freeWorkerIDs) == 0 {
		return nil
	}

	tis := priorityRank(tasks, availableIDs)
	ris := seed(tis, freeWorkerIDs, est)
	tis, ris = pad(tis, ris)

	ris = anneal1(tis, ris, est, params, rng)

	pairs := commit(tis, ris)
	log.Printf("[optimizer] matched %d of %d ready tasks against %d free workers", len(pairs), len(availableIDs), len(freeWorkerIDs))
	return pairs
}

// priorityRank sorts available task ids by descending (|succ|, diff_norm),
// tying lexicographically (ascending id) for determinism.
func priorityRank(tasks []*domain.Task, availableIDs []int) []int {
	tis := append([]int(nil), availableIDs...)
	sort.Slice(tis, func(i, j int) bool {
		a, b := tasks[tis[i]], tasks[tis[j]]
		if len(a.Succ) != len(b.Succ) {
			return len(a.Succ) > len(b.Succ)
		}
		if a.DiffNorm != b.DiffNorm {
			return a.DiffNorm > b.DiffNorm
		}
		return a.ID < b.ID
	})
	return tis
}

// seed builds the worker list positionally aligned with tis: for each
// task in priority order, pop the unassigned free worker with the
// smallest est[t][w]. Any workers left over after every task has a
// candidate are appended in stack (LIFO) order as unmatched tail workers
// — their relative order is intentionally unspecified by spec.md §9.
func seed(tis []int, freeWorkerIDs []int, est *estimate.Matrix) []int {
	pool := append([]int(nil), freeWorkerIDs...)
	ris := make([]int, 0, len(tis))

	for _, t := range tis {
		if len(pool) == 0 {
			break
		}
		bestIdx := 0
		for i := 1; i < len(pool); i++ {
			if est.At(t, pool[i]) < est.At(t, pool[bestIdx]) {
				bestIdx = i
			}
		}
		ris = append(ris, pool[bestIdx])
		pool = append(pool[:bestIdx], pool[bestIdx+1:]...)
	}

	// Remaining free workers become tail entries, popped LIFO.
	for i := len(pool) - 1; i >= 0; i-- {
		ris = append(ris, pool[i])
	}
	return ris
}

// pad equalizes the two lists' lengths with Hole sentinels.
func pad(tis, ris []int) ([]int, []int) {
	for len(tis) < len(ris) {
		tis = append(tis, Hole)
	}
	for len(ris) < len(tis) {
		ris = append(ris, Hole)
	}
	return tis, ris
}

// commit returns the matched (task, worker) pairs with no hole on either
// side. The optimizer performs no locking; the dispatch loop commits.
func commit(tis, ris []int) []Pair {
	var pairs []Pair
	for i := range tis {
		if tis[i] != Hole && ris[i] != Hole {
			pairs = append(pairs, Pair{TaskID: tis[i], WorkerID: ris[i]})
		}
	}
	return pairs
}
