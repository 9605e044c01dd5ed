package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cdsolve/dpll"
)

func TestCollectorObserveAccumulates(t *testing.T) {
	c := NewCollector()
	c.Observe(dpll.Stats{Decisions: 3, Conflicts: 1, Propagations: 10})
	c.Observe(dpll.Stats{Decisions: 2})

	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		t.Fatal(err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}

	var decisions float64
	for _, fam := range families {
		if fam.GetName() == "dpll_decisions_total" {
			decisions = fam.Metric[0].GetCounter().GetValue()
		}
	}
	if decisions != 5 {
		t.Errorf("dpll_decisions_total = %v, want 5", decisions)
	}
}

func TestCollectorImplementsCollector(t *testing.T) {
	var _ prometheus.Collector = NewCollector()
}
