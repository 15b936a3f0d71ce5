// Package graph builds and mutates the task precedence DAG (§4.3). Nodes
// are domain.Task values owned by the dispatch loop; this package only
// operates on them through the documented lock/begin/complete lifecycle.
package graph

import "github.com/hatsuyuki/daymatch/internal/domain"

// Build constructs N tasks from their difficulty vectors and wires the R
// precedence edges: for each edge (u,v), v is appended to u's successor
// list and v's PendingPred is incremented.
func Build(diffs [][]int, edges [][2]int) []*domain.Task {
	tasks := make([]*domain.Task, len(diffs))
	for i, d := range diffs {
		tasks[i] = domain.NewTask(i, d)
	}
	for _, e := range edges {
		u, v := e[0], e[1]
		tasks[u].Succ = append(tasks[u].Succ, v)
		tasks[v].PendingPred++
	}
	return tasks
}

// Available returns the ids of every task currently available: unlocked,
// undone, and with no pending predecessors.
func Available(tasks []*domain.Task) []int {
	var ids []int
	for _, t := range tasks {
		if t.Available() {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// Start locks task t to begin execution today, the available → locked
// transition of §3's lifecycle.
func Start(tasks []*domain.Task, t int) error {
	return tasks[t].Begin()
}

// Finish completes task t — locked → done — and decrements PendingPred on
// every successor that lost a predecessor, per §4.3's "the caller
// decrements pending_pred" contract.
func Finish(tasks []*domain.Task, t int) error {
	succ, err := tasks[t].Complete()
	if err != nil {
		return err
	}
	for _, s := range succ {
		tasks[s].PendingPred--
	}
	return nil
}
