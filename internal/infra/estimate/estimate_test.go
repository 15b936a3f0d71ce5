package estimate

import (
	"testing"

	"github.com/hatsuyuki/daymatch/internal/domain"
)

func mkTasks(diffs ...[]int) []*domain.Task {
	tasks := make([]*domain.Task, len(diffs))
	for i, d := range diffs {
		tasks[i] = domain.NewTask(i, d)
	}
	return tasks
}

func mkWorkers(skills ...[]int) []*domain.Worker {
	workers := make([]*domain.Worker, len(skills))
	for i, s := range skills {
		workers[i] = domain.NewWorker(i, s)
	}
	return workers
}

func TestBuild_MatchesFormula(t *testing.T) {
	tasks := mkTasks([]int{5, 0}, []int{0, 0})
	workers := mkWorkers([]int{2, 2}, []int{10, 10})

	mat := Build(tasks, workers)
	// task0 vs worker0: max(0,5-2) + max(0,0-2) = 3 -> est=3
	if got := mat.At(0, 0); got != 3 {
		t.Errorf("At(0,0) = %d, want 3", got)
	}
	// task1 vs worker1: all diffs 0, sum = 0 -> floored to 1
	if got := mat.At(1, 1); got != 1 {
		t.Errorf("At(1,1) = %d, want 1 (floor)", got)
	}
}

func TestAt_NeverBelowOne(t *testing.T) {
	tasks := mkTasks([]int{0, 0, 0})
	workers := mkWorkers([]int{100, 100, 100})
	mat := Build(tasks, workers)
	if got := mat.At(0, 0); got < 1 {
		t.Errorf("At(0,0) = %d, want >= 1", got)
	}
}

func TestRefreshColumn_OnlyTouchesThatWorker(t *testing.T) {
	tasks := mkTasks([]int{5}, []int{5})
	workers := mkWorkers([]int{0}, []int{0})
	mat := Build(tasks, workers)

	before := mat.At(0, 1)
	workers[0].Skill = []int{5}
	mat.RefreshColumn(tasks, 0, workers[0].Skill)

	if got := mat.At(0, 0); got != 1 {
		t.Errorf("At(0,0) after refresh = %d, want 1", got)
	}
	if got := mat.At(0, 1); got != before {
		t.Errorf("At(0,1) changed after refreshing a different column: %d -> %d", before, got)
	}
}
