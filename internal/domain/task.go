package domain

import "fmt"

// Task is a unit of work in the precedence DAG. Identity is a zero-based
// index into the dispatch loop's task vector; it never changes and the
// struct is never destroyed once constructed (§3).
type Task struct {
	ID          int
	Diff        []int // difficulty vector, length K
	DiffNorm    int64 // cached Σ diff_k², used for the optimizer's priority sort
	Succ        []int // out-neighbor task ids
	PendingPred int   // number of not-yet-done predecessors
	Locked      bool
	Done        bool
}

// NewTask builds a Task from its difficulty vector, caching DiffNorm.
func NewTask(id int, diff []int) *Task {
	t := &Task{ID: id, Diff: append([]int(nil), diff...)}
	var norm int64
	for _, d := range diff {
		norm += int64(d) * int64(d)
	}
	t.DiffNorm = norm
	return t
}

// Available reports whether the task is unlocked, undone, and has no
// pending predecessors — the §3 definition of "available".
func (t *Task) Available() bool {
	return !t.Locked && !t.Done && t.PendingPred == 0
}

// Begin transitions an available task to locked, as the first half of the
// available → locked → done lifecycle.
func (t *Task) Begin() error {
	if !t.Available() {
		return fmt.Errorf("task %d: %w", t.ID, ErrTaskNotAvailable)
	}
	t.Locked = true
	return nil
}

// Complete transitions a locked task to done and returns its successors,
// whose PendingPred the caller must decrement. It is the only path from
// done=false to done=true (§3).
func (t *Task) Complete() ([]int, error) {
	if !t.Locked {
		return nil, fmt.Errorf("task %d: %w", t.ID, ErrTaskNotLocked)
	}
	t.Locked = false
	t.Done = true
	return t.Succ, nil
}
