// Package telemetry exposes in-process Prometheus collectors for the
// dispatch loop, the optimizer, and the skill estimator.
//
// Grounded on teacher's internal/infra/observability package, which
// registers package-level promauto metric vars (SchedulerQueueDepth,
// RegionLatency, ...). We keep that idiom exactly, narrowed to this
// solver's concerns. Nothing here is served over HTTP: spec.md's
// non-goals rule out network execution, so there is no promhttp handler
// and no listener. The registry still does real work in-process — tests
// assert on it via prometheus/client_golang/prometheus/testutil, and it
// would require no changes to wire into an HTTP exporter if that
// constraint were ever lifted.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Day is the current simulated day, updated once per dispatch loop turn.
var Day = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "daymatch_day",
	Help: "Current simulated day counter.",
})

// OptimizerIterations counts annealed swap-search iterations across all
// invocations of the assignment optimizer.
var OptimizerIterations = promauto.NewCounter(prometheus.CounterOpts{
	Name: "daymatch_optimizer_iterations_total",
	Help: "Total annealed swap-search iterations performed.",
})

// OptimizerAccepts counts swaps accepted (not reverted) by the optimizer's
// annealer.
var OptimizerAccepts = promauto.NewCounter(prometheus.CounterOpts{
	Name: "daymatch_optimizer_accepts_total",
	Help: "Total swaps accepted by the optimizer's annealer.",
})

// SwapDelta records the objective delta of every accepted swap.
var SwapDelta = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "daymatch_optimizer_swap_delta",
	Help:    "Objective delta (new - old) of accepted swaps.",
	Buckets: prometheus.LinearBuckets(-50, 10, 10),
})

// SkillEstimatorIterations counts re-estimation iterations across every
// worker re-estimated.
var SkillEstimatorIterations = promauto.NewCounter(prometheus.CounterOpts{
	Name: "daymatch_skillest_iterations_total",
	Help: "Total skill-estimation iterations performed.",
})

// SkillEstimatorImprovements counts iterations where a new best skill
// vector was snapshotted.
var SkillEstimatorImprovements = promauto.NewCounter(prometheus.CounterOpts{
	Name: "daymatch_skillest_improvements_total",
	Help: "Total times the skill estimator snapshotted a new best loss.",
})

// EstimateMatrixRefreshes counts full-column recomputations of the
// estimate matrix.
var EstimateMatrixRefreshes = promauto.NewCounter(prometheus.CounterOpts{
	Name: "daymatch_estimate_matrix_refreshes_total",
	Help: "Total worker columns recomputed in the estimate matrix.",
})

// TasksCompleted counts tasks the dispatch loop has observed complete.
var TasksCompleted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "daymatch_tasks_completed_total",
	Help: "Total tasks reported complete by the judge.",
})
