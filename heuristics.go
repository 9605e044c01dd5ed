package dpll

// Heuristic selects the next literal to branch on, given the formula and
// the current assignment. It is called only once BCP has reached a
// fixpoint (no clause is Forcing or Falsified). It returns 0 when it
// finds nothing left to branch on — the formula is then satisfied under
// the current assignment (§4.4.5 "Saturated"). FirstUnassigned returns 0
// only once every variable is assigned; DLIS returns 0 once no clause
// with status StatusNone remains, which can leave variables unassigned.
//
// Spec.md §4.4.5 explicitly permits either policy below; solver-level
// tests must not depend on which one is in effect. Only the unit tests of
// the heuristics themselves check which literal each one picks.
type Heuristic func(cnf *CNF, st *state) int

// FirstUnassigned scans variables 1..=n and picks the lowest-indexed
// unassigned one, always with positive polarity.
func FirstUnassigned(cnf *CNF, st *state) int {
	for v := 1; v <= cnf.NumVariables; v++ {
		if st.assignments.Get(v) == Unassigned {
			return v
		}
	}
	return 0
}

// DLIS (Dynamic Largest Individual Sum) tallies, for every clause whose
// status is StatusNone, the occurrence count of each unassigned literal
// across those clauses, and picks the literal with the highest tally,
// breaking ties by first encountered. Clauses that are Satisfied or
// Falsified are skipped; a Forcing clause cannot occur here because
// decide is only called after propagate has reached a fixpoint.
func DLIS(cnf *CNF, st *state) int {
	tally := NewNVec[int](cnf.NumVariables)
	best := 0
	bestCount := 0
	for _, cl := range cnf.Clauses {
		status, _ := cl.Status()
		switch status {
		case StatusSatisfied, StatusFalsified:
			continue
		case StatusForcing:
			panic("dpll: DLIS invoked with a Forcing clause outstanding")
		}
		for _, lit := range cl.Literals {
			if st.assignments.Get(lit) != Unassigned {
				continue
			}
			count := tally.Get(lit) + 1
			tally.Set(lit, count)
			if count > bestCount {
				bestCount = count
				best = lit
			}
		}
	}
	return best
}
