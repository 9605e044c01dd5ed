package dpll

// Stats carries purely informational counters about a single Solve call.
// The set of fields may grow over time; callers should not depend on it
// being exhaustive.
type Stats struct {
	// Added is the number of clauses connected during the initial
	// occurrence-list build.
	Added int
	// Conflicts is the number of times propagate() found a falsified
	// clause.
	Conflicts int
	// Decisions is the number of times decide() picked a literal.
	Decisions int
	// Propagations is the number of trail positions consumed by BCP.
	Propagations int
	// Reports is the number of times an (optional) progress sink was
	// invoked. The core never calls one itself today; the field exists
	// so a future progress callback does not require a Stats shape
	// change.
	Reports int
	// Fixed is the number of literals forced at decision level 0 by
	// initial unit clauses during connect, before any decision is made.
	// These never reach the control stack and are never undone by
	// backtrack.
	Fixed int
}

// MetricsSink receives the final Stats of a solve, once, when Solve
// returns. It is an
// injected collaborator, never a process-wide global: the core engine
// takes no ambient dependency on any particular metrics backend.
// internal/metrics provides a Prometheus-backed implementation.
type MetricsSink interface {
	Observe(Stats)
}

type noopMetricsSink struct{}

func (noopMetricsSink) Observe(Stats) {}
