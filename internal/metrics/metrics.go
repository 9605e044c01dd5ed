// Package metrics adapts dpll.Stats to a Prometheus collector, so a long
// running service embedding the solver can export decision/propagation/
// conflict counters without the core engine taking any dependency on
// Prometheus itself — the engine only ever talks to the small
// dpll.MetricsSink interface it is handed.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cdsolve/dpll"
)

// Collector implements both dpll.MetricsSink and prometheus.Collector. It
// accumulates Stats across every Solve call it observes; register one
// instance per process (or per logical solver pool) with a
// prometheus.Registerer.
type Collector struct {
	mu    sync.Mutex
	added prometheus.Counter

	conflicts    prometheus.Counter
	decisions    prometheus.Counter
	propagations prometheus.Counter
	reports      prometheus.Counter
	fixed        prometheus.Counter

	solves prometheus.Counter
}

// NewCollector builds a Collector whose metric names are namespaced
// under "dpll_".
func NewCollector() *Collector {
	return &Collector{
		added: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dpll_clauses_added_total",
			Help: "Number of clauses connected during the initial occurrence-list build.",
		}),
		conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dpll_conflicts_total",
			Help: "Number of falsified clauses encountered during propagation.",
		}),
		decisions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dpll_decisions_total",
			Help: "Number of branching decisions made.",
		}),
		propagations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dpll_propagations_total",
			Help: "Number of trail positions consumed by boolean constraint propagation.",
		}),
		reports: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dpll_reports_total",
			Help: "Number of progress-sink invocations.",
		}),
		fixed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dpll_fixed_total",
			Help: "Number of literals forced at decision level 0 by initial unit clauses.",
		}),
		solves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dpll_solves_total",
			Help: "Number of Solve invocations observed.",
		}),
	}
}

// Observe implements dpll.MetricsSink.
func (c *Collector) Observe(s dpll.Stats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.added.Add(float64(s.Added))
	c.conflicts.Add(float64(s.Conflicts))
	c.decisions.Add(float64(s.Decisions))
	c.propagations.Add(float64(s.Propagations))
	c.reports.Add(float64(s.Reports))
	c.fixed.Add(float64(s.Fixed))
	c.solves.Inc()
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.collectors() {
		ch <- m.Desc()
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.collectors() {
		ch <- m
	}
}

func (c *Collector) collectors() []prometheus.Counter {
	return []prometheus.Counter{
		c.added, c.conflicts, c.decisions, c.propagations, c.reports, c.fixed, c.solves,
	}
}
