// Package dispatch runs the interactive day-by-day loop (§4.7): read the
// contest header, build the task graph and worker pool, then alternate
// between computing and emitting an assignment and reading back which
// workers the judge freed, re-estimating skill and refreshing the estimate
// matrix for each one, until the judge sends the terminating sentinel.
package dispatch

import (
	"bufio"
	"io"
	"log"
	"math"
	"math/rand"

	"github.com/hatsuyuki/daymatch/internal/config"
	"github.com/hatsuyuki/daymatch/internal/domain"
	"github.com/hatsuyuki/daymatch/internal/infra/anneal"
	"github.com/hatsuyuki/daymatch/internal/infra/estimate"
	"github.com/hatsuyuki/daymatch/internal/infra/graph"
	"github.com/hatsuyuki/daymatch/internal/infra/optimizer"
	"github.com/hatsuyuki/daymatch/internal/infra/rng"
	"github.com/hatsuyuki/daymatch/internal/infra/skillest"
	"github.com/hatsuyuki/daymatch/internal/infra/telemetry"
	"github.com/hatsuyuki/daymatch/internal/proto"
)

// useNaive selects Variant A (internal/infra/optimizer.Naive) in place of
// the annealed swap search. It is an unexported build-time constant rather
// than a flag, since the protocol takes none (§6) — flip it and recompile
// to check dispatch-loop mechanics independent of the annealed search.
const useNaive = false

// Loop owns every mutable piece of contest state: the task graph, the
// worker pool, the shared estimate matrix, and the RNG streams and
// annealer instances that must persist across days.
type Loop struct {
	cfg config.Config

	tasks   []*domain.Task
	workers []*domain.Worker
	diffs   [][]int
	est     *estimate.Matrix

	planner     *rand.Rand
	workerRNGs  []*rand.Rand
	dayAnnealer *anneal.Annealer

	sc  *bufio.Scanner
	out *proto.Writer

	runID string
}

// New reads the header, difficulty vectors, and precedence edges from r,
// builds the initial task graph and worker pool, and returns a Loop ready
// to Run. runID tags the start and termination log lines for correlating
// a process's stderr output
// (spec.md has no persistence, so this never outlives the process).
func New(r io.Reader, w io.Writer, cfg config.Config, runID string) (*Loop, error) {
	sc := proto.NewScanner(r)

	hdr, err := proto.ReadHeader(sc)
	if err != nil {
		return nil, err
	}
	diffs, err := proto.ReadDifficulties(sc, hdr.N, hdr.K)
	if err != nil {
		return nil, err
	}
	edges, err := proto.ReadEdges(sc, hdr.R, hdr.N)
	if err != nil {
		return nil, err
	}

	tasks := graph.Build(diffs, edges)

	planner := rng.NewPlanner()
	workerRNGs := make([]*rand.Rand, hdr.M)
	workers := make([]*domain.Worker, hdr.M)
	for i := 0; i < hdr.M; i++ {
		workerRNGs[i] = rng.NewWorker(i)
		skill := rng.InitSkill(workerRNGs[i], hdr.K, cfg.SkillInitRangeMin, cfg.SkillInitRangeMax)
		workers[i] = domain.NewWorker(i, skill)
	}

	est := estimate.Build(tasks, workers)
	dayAnnealer := anneal.New(cfg.SkillAnnealer.T0, cfg.SkillAnnealer.T1, planner)

	log.Printf("[dispatch] run %s: N=%d M=%d K=%d R=%d", runID, hdr.N, hdr.M, hdr.K, hdr.R)

	return &Loop{
		cfg:         cfg,
		tasks:       tasks,
		workers:     workers,
		diffs:       diffs,
		est:         est,
		planner:     planner,
		workerRNGs:  workerRNGs,
		dayAnnealer: dayAnnealer,
		sc:          sc,
		out:         proto.NewWriter(w),
		runID:       runID,
	}, nil
}

// skillUpdate is a worker whose estimated skill changed since the last
// turn's output (or, for the initial batch, its freshly sampled skill at
// program start), queued so its "#s" line can precede the next assignment
// line (§6: "zero or more skill lines, then one assignment line, per turn").
type skillUpdate struct {
	workerID int
	skill    []int
}

// Run drives the loop to completion: alternating assignment and
// completion turns until the judge's -1 sentinel, per §4.7.
func (lp *Loop) Run() error {
	day := 0
	pending := make([]skillUpdate, 0, len(lp.workers))
	for _, w := range lp.workers {
		pending = append(pending, skillUpdate{workerID: w.ID, skill: w.Skill})
	}

	optParams := optimizer.Params{
		Iterations: lp.cfg.OptimizerIterations,
		T0:         lp.cfg.OptimizerAnnealer.T0,
		T1:         lp.cfg.OptimizerAnnealer.T1,
	}
	skillParams := skillest.Params{
		Iterations:  lp.cfg.SkillIterations,
		ProposalMax: lp.cfg.SkillProposalMax,
	}

	for {
		available := graph.Available(lp.tasks)
		free := lp.freeWorkers()

		var pairs []optimizer.Pair
		if useNaive {
			pairs = optimizer.Naive(lp.tasks, available, free)
		} else {
			pairs = optimizer.Run(lp.tasks, available, free, lp.est, optParams, lp.planner)
		}

		assigned := make([]proto.AssignmentPair, 0, len(pairs))
		for _, p := range pairs {
			if err := graph.Start(lp.tasks, p.TaskID); err != nil {
				return err
			}
			if err := lp.workers[p.WorkerID].Assign(p.TaskID, day); err != nil {
				return err
			}
			assigned = append(assigned, proto.AssignmentPair{WorkerID: p.WorkerID, TaskID: p.TaskID})
		}

		for _, u := range pending {
			if err := lp.out.SkillReport(u.workerID, u.skill); err != nil {
				return err
			}
		}
		pending = pending[:0]

		if err := lp.out.Assignment(assigned); err != nil {
			return err
		}

		completion, err := proto.ReadCompletion(lp.sc, len(lp.workers))
		if err != nil {
			return err
		}
		if completion.Done {
			log.Printf("[dispatch] run %s: terminated at day %d", lp.runID, day)
			return nil
		}

		for _, wid := range completion.WorkerIDs {
			entry, err := lp.workers[wid].Release(day)
			if err != nil {
				return err
			}
			if err := graph.Finish(lp.tasks, entry.TaskID); err != nil {
				return err
			}
			telemetry.TasksCompleted.Inc()

			skillest.Reestimate(lp.workers[wid], lp.diffs, lp.dayAnnealer, lp.workerRNGs[wid], skillParams)
			lp.est.RefreshColumn(lp.tasks, wid, lp.workers[wid].Skill)
			telemetry.EstimateMatrixRefreshes.Inc()

			pending = append(pending, skillUpdate{workerID: wid, skill: lp.workers[wid].Skill})
		}

		day++
		telemetry.Day.Set(float64(day))
		lp.dayAnnealer.SetProgress(tau(day, lp.cfg.DayLimit))
	}
}

// freeWorkers returns the ids of every worker with no current assignment.
func (lp *Loop) freeWorkers() []int {
	var ids []int
	for _, w := range lp.workers {
		if w.Free() {
			ids = append(ids, w.ID)
		}
	}
	return ids
}

// tau maps the current day onto [0,1] against the configured contest
// horizon, clamping at 1 for days beyond it — the wire protocol never
// transmits a horizon, so DayLimit is a compile-time assumption (see
// DESIGN.md's Open Question resolutions).
func tau(day, dayLimit int) float64 {
	if dayLimit <= 1 {
		return 1
	}
	t := float64(day) / float64(dayLimit-1)
	return math.Min(1, t)
}
