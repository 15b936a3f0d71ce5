// Package estimate maintains the N×M cache of predicted task/worker
// durations (§4.4). The matrix is a dense row-major table addressed by
// plain integer indices — task and worker ids are indices into fixed
// vectors owned by the dispatch loop, so there is no pointer chasing
// between this cache and the task graph or worker pool.
package estimate

import "github.com/hatsuyuki/daymatch/internal/domain"

// Matrix is the N×M cache: Matrix.At(t, w) mirrors est[t][w] in spec.md.
type Matrix struct {
	n, m int
	vals []int64 // row-major: vals[t*m+w]
}

// cell computes est(t, w) = max(1, Σ_k max(0, diff[t][k] - skill[w][k])).
// The floor of 1 is essential: a zero would make the optimizer treat an
// over-skilled worker as free on that task, degrading swap decisions.
func cell(diff, skill []int) int64 {
	var sum int64
	for k, d := range diff {
		s := int64(0)
		if k < len(skill) {
			s = int64(skill[k])
		}
		if v := int64(d) - s; v > 0 {
			sum += v
		}
	}
	if sum < 1 {
		sum = 1
	}
	return sum
}

// Build populates the matrix eagerly from every task's difficulty vector
// and every worker's current skill estimate.
func Build(tasks []*domain.Task, workers []*domain.Worker) *Matrix {
	n, m := len(tasks), len(workers)
	mat := &Matrix{n: n, m: m, vals: make([]int64, n*m)}
	for t := range tasks {
		for w := range workers {
			mat.vals[t*m+w] = cell(tasks[t].Diff, workers[w].Skill)
		}
	}
	return mat
}

// At returns est(t, w).
func (mat *Matrix) At(t, w int) int64 {
	return mat.vals[t*mat.m+w]
}

// RefreshColumn recomputes every est(t, w) for the given worker w, after
// that worker's skill vector has changed — the only case the matrix needs
// updating, since difficulty vectors never change (§4.4).
func (mat *Matrix) RefreshColumn(tasks []*domain.Task, w int, skill []int) {
	for t := range tasks {
		mat.vals[t*mat.m+w] = cell(tasks[t].Diff, skill)
	}
}

// N and M expose the matrix's dimensions for callers that only hold a
// *Matrix.
func (mat *Matrix) N() int { return mat.n }
func (mat *Matrix) M() int { return mat.m }
