package domain

import "fmt"

// Assignment is a worker's current task binding: which task, and which day
// it started, used to compute the observed duration on completion.
type Assignment struct {
	TaskID   int
	StartDay int
}

// HistoryEntry is one completed (task, duration) pair in a worker's
// append-only completion history, consumed by the skill estimator.
type HistoryEntry struct {
	TaskID   int
	Duration int
}

// Worker is a resource with an estimated (never directly observed) skill
// vector, at most one current assignment, and an append-only history of
// past completions. Skills are initialized randomly before any history
// exists and are mutated only by the skill estimator, always in response
// to a completion (§3).
type Worker struct {
	ID         int
	Skill      []int
	Assignment *Assignment
	History    []HistoryEntry
}

// NewWorker builds a free Worker with the given initial skill estimate.
func NewWorker(id int, skill []int) *Worker {
	return &Worker{ID: id, Skill: skill}
}

// Free reports whether the worker currently has no assignment.
func (w *Worker) Free() bool {
	return w.Assignment == nil
}

// Assign binds the worker to a task starting on startDay.
func (w *Worker) Assign(taskID, startDay int) error {
	if !w.Free() {
		return fmt.Errorf("worker %d: %w", w.ID, ErrWorkerAlreadyBusy)
	}
	w.Assignment = &Assignment{TaskID: taskID, StartDay: startDay}
	return nil
}

// Release clears the worker's assignment and appends the completed task to
// its history, returning the duration observed (day - start_day + 1).
func (w *Worker) Release(day int) (HistoryEntry, error) {
	if w.Free() {
		return HistoryEntry{}, fmt.Errorf("worker %d: %w", w.ID, ErrWorkerAlreadyFree)
	}
	entry := HistoryEntry{
		TaskID:   w.Assignment.TaskID,
		Duration: day - w.Assignment.StartDay + 1,
	}
	w.Assignment = nil
	w.History = append(w.History, entry)
	return entry, nil
}
