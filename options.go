package dpll

// config holds the engine's injected collaborators. All fields have
// working zero-cost defaults so Solve(cnf) needs no options at all.
type config struct {
	heuristic Heuristic
	logger    TraceLogger
	metrics   MetricsSink
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		heuristic: DLIS,
		logger:    noopTraceLogger{},
		metrics:   noopMetricsSink{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures a Solve call.
type Option func(*config)

// WithHeuristic overrides the default DLIS decision heuristic. Spec.md
// §4.4.5 permits either DLIS or FirstUnassigned (or any other policy
// satisfying the same contract); tests must not depend on which one is
// in effect.
func WithHeuristic(h Heuristic) Option {
	return func(cfg *config) { cfg.heuristic = h }
}

// WithTraceLogger injects a sink for per-event trace messages.
func WithTraceLogger(l TraceLogger) Option {
	return func(cfg *config) { cfg.logger = l }
}

// WithMetricsSink injects a sink that receives the final Stats once Solve
// returns.
func WithMetricsSink(m MetricsSink) Option {
	return func(cfg *config) { cfg.metrics = m }
}
