package optimizer

import (
	"sort"

	"github.com/hatsuyuki/daymatch/internal/domain"
)

// Naive implements Variant A from §4.7: no annealed swap search, just a
// positional pairing of ready tasks and free workers sorted by simple
// keys (ascending id on both sides). It exists for bootstrapping and for
// tests that want to check dispatch-loop mechanics independent of the
// annealed search; grounded directly on original_source/src/main.rs's
// `ris.iter().zip(tis.iter())` pairing.
func Naive(tasks []*domain.Task, availableIDs, freeWorkerIDs []int) []Pair {
	tis := append([]int(nil), availableIDs...)
	sort.Ints(tis)
	ris := append([]int(nil), freeWorkerIDs...)
	sort.Ints(ris)

	n := len(tis)
	if len(ris) < n {
		n = len(ris)
	}
	pairs := make([]Pair, n)
	for i := 0; i < n; i++ {
		pairs[i] = Pair{TaskID: tis[i], WorkerID: ris[i]}
	}
	return pairs
}
