package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.
//
// The judge is trusted: malformed input and protocol violations are
// unrecoverable, and the process fails fast on them. Invariant breaches are
// checked at each state transition and are fatal too, to surface bugs early.

var (
	// Malformed input errors — the initial configuration block or a
	// completion line does not parse as the protocol requires.
	ErrMalformedHeader     = errors.New("malformed header line")
	ErrMalformedDifficulty = errors.New("malformed difficulty line")
	ErrMalformedEdge       = errors.New("malformed edge line")
	ErrMalformedCompletion = errors.New("malformed completion line")
	ErrTaskIDOutOfRange    = errors.New("task id out of range")
	ErrWorkerIDOutOfRange  = errors.New("worker id out of range")

	// Protocol violation errors — the judge's replies are inconsistent with
	// the state the solver believes it is in.
	ErrCompletionCountMismatch = errors.New("completion line count does not match listed workers")
	ErrWorkerNotAssigned       = errors.New("judge freed a worker that was not assigned")

	// Internal invariant breach errors — §3 invariants, checked at each
	// state transition. A breach here is a bug, not a judge problem.
	ErrTaskAlreadyLocked  = errors.New("task is already locked")
	ErrTaskNotAvailable   = errors.New("task is not available")
	ErrTaskNotLocked      = errors.New("task is not locked to complete")
	ErrWorkerAlreadyBusy  = errors.New("worker already has an assignment")
	ErrWorkerAlreadyFree  = errors.New("worker has no assignment to free")
	ErrEstimateOutOfRange = errors.New("estimate matrix index out of range")
)
