// Package anneal implements the geometric-schedule simulated-annealing
// acceptance oracle used by both the assignment optimizer and the skill
// estimator (§4.1). The two call sites differ only in temperature
// endpoints and in how long an instance lives — the contract is identical.
package anneal

import (
	"math"
	"math/rand"
)

// Annealer tracks a geometric temperature schedule between two endpoints
// and decides whether to accept a candidate move.
type Annealer struct {
	t0, t1 float64
	temp   float64
	rng    *rand.Rand
}

// New captures the schedule endpoints. t0 must be greater than t1, and t1
// must be positive, or SetProgress/Accept behave as documented only for
// tau in [0,1]. rng supplies the acceptance draws; callers thread in the
// logical stream appropriate to this instance's scope (the shared planner
// stream for both the day-progress and per-day optimizer annealers — see
// spec.md §9).
func New(t0, t1 float64, rng *rand.Rand) *Annealer {
	return &Annealer{t0: t0, t1: t1, temp: t0, rng: rng}
}

// SetProgress sets the current temperature to T = t0^(1-tau) * t1^tau, the
// geometric interpolation between the two endpoints.
func (a *Annealer) SetProgress(tau float64) {
	a.temp = math.Pow(a.t0, 1-tau) * math.Pow(a.t1, tau)
}

// Temperature returns the temperature set by the most recent SetProgress
// call (t0 if SetProgress has never been called).
func (a *Annealer) Temperature() float64 {
	return a.temp
}

// Accept returns true when delta — the improvement a candidate move would
// produce, old minus new, positive meaning better — is non-negative, and
// otherwise returns true with probability exp(delta/T).
func (a *Annealer) Accept(delta float64) bool {
	if delta >= 0 {
		return true
	}
	if a.temp <= 0 {
		return false
	}
	return a.rng.Float64() < math.Exp(delta/a.temp)
}
