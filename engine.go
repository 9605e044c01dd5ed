package dpll

// This file implements the DPLL search engine (C4 of the design): the
// single-threaded state machine of connect / propagate / decide /
// backtrack / Solve described in spec.md §4.4. It is the generalization
// of the teacher's (*solver).solve() main loop shape to the counter-based
// clause model spec.md mandates in place of the teacher's watched
// literals.

// assign sets literal True (and its complement False), updates every
// clause's live counters, and pushes the literal onto the trail.
//
// Contract: lit != 0 and assignments(lit) == Unassigned.
func assign(lit int, cnf *CNF, st *state, log TraceLogger) {
	if checksEnabled {
		if lit == 0 {
			panic("dpll: assign called with literal 0")
		}
		if st.assignments.Get(lit) != Unassigned {
			panic("dpll: assign called on an already-assigned literal")
		}
	}

	st.assignments.Set(lit, True)
	st.assignments.Set(-lit, False)

	for _, c := range st.references.Get(lit) {
		cl := cnf.Clauses[c]
		cl.NumTrue++
		cl.Sum -= lit
	}
	for _, c := range st.references.Get(-lit) {
		cl := cnf.Clauses[c]
		cl.NumFalse++
		cl.Sum += lit
	}

	st.trail = append(st.trail, lit)
	log.Tracef("assigned literal %d", lit)
}

// unassign reverses assign exactly. Trail popping is the caller's
// responsibility (connect/backtrack manage the trail directly).
//
// Contract: assignments(lit) == True and assignments(-lit) == False.
func unassign(lit int, cnf *CNF, st *state, log TraceLogger) {
	if checksEnabled {
		if st.assignments.Get(lit) != True || st.assignments.Get(-lit) != False {
			panic("dpll: unassign called on a literal that is not assigned True")
		}
	}

	for _, c := range st.references.Get(lit) {
		cl := cnf.Clauses[c]
		cl.NumTrue--
		cl.Sum += lit
	}
	for _, c := range st.references.Get(-lit) {
		cl := cnf.Clauses[c]
		cl.NumFalse--
		cl.Sum -= lit
	}

	st.assignments.Set(lit, Unassigned)
	st.assignments.Set(-lit, Unassigned)
	log.Tracef("unassigned literal %d", lit)
}

// connect builds the occurrence references for every clause, then makes
// a second pass to handle empty and unit clauses discovered at the
// initial (pre-search) quiescent point. It returns false when the
// formula is trivially unsatisfiable: an empty clause, or a unit clause
// that contradicts an earlier one.
//
// Root-level forced units assigned here do not push a control-stack
// entry — they belong to decision level 0 and are never undone by
// backtrack (spec.md §9 Open Question, resolved).
func connect(cnf *CNF, st *state, log TraceLogger) bool {
	for i, cl := range cnf.Clauses {
		for _, lit := range cl.Literals {
			st.references.Set(lit, append(st.references.Get(lit), i))
		}
	}

	for i, cl := range cnf.Clauses {
		switch cl.Size {
		case 0:
			log.Tracef("found empty clause %d in list of clauses to solve", i)
			return false
		case 1:
			lit := cl.Literals[0]
			switch st.assignments.Get(lit) {
			case Unassigned:
				assign(lit, cnf, st, log)
				st.stats.Fixed++
				log.Tracef("assigned initial unit clause %d", i)
			case False:
				log.Tracef("found inconsistent initial unit clause %d", i)
				return false
			case True:
				// already satisfied by an earlier unit clause
			}
		}
		st.stats.Added++
	}
	return true
}

// propagate runs boolean constraint propagation to a fixpoint: every
// literal the trail picks up is checked against the clauses it falsifies
// and, when one of those clauses becomes forcing, the forced literal is
// assigned, growing the trail for a later iteration of this same loop.
//
// Returns true once the cursor catches up with the trail (OK); returns
// false the moment a falsified clause is found (Conflict).
func propagate(cnf *CNF, st *state, log TraceLogger) bool {
	for st.propagated < len(st.trail) {
		lit := st.trail[st.propagated]
		for _, c := range st.references.Get(-lit) {
			cl := cnf.Clauses[c]
			status, forced := cl.Status()
			switch status {
			case StatusNone, StatusSatisfied:
				// nothing to do
			case StatusFalsified:
				log.Tracef("found falsified clause %d", c)
				st.stats.Conflicts++
				return false
			case StatusForcing:
				log.Tracef("found forcing clause %d that forced %d", c, forced)
				assign(forced, cnf, st, log)
			}
		}
		st.propagated++
		st.stats.Propagations++
	}
	return true
}

// decide selects the next branching literal via the configured
// Heuristic, opens a new decision level, and assigns it. Returns false
// when the heuristic finds nothing left to branch on — the current
// assignment then satisfies every clause (Saturated), though some
// variables may still be unassigned (see Heuristic).
func decide(cnf *CNF, st *state, heuristic Heuristic, log TraceLogger) bool {
	lit := heuristic(cnf, st)
	if lit == 0 {
		return false
	}

	st.level++
	st.control = append(st.control, len(st.trail))
	assign(lit, cnf, st, log)
	st.stats.Decisions++

	log.Tracef("decided on literal %d and incremented to level %d", lit, st.level)
	return true
}

// backtrack implements chronological backtracking with polarity flip:
// unassign and drop every literal implied since the most recent open
// decision, then flip that decision's own literal and assign its
// complement at the same trail position — effectively moving it to the
// previous level, per the chronological-backtracking contract of §4.4.6.
//
// Returns false when level is already 0: no choice point remains, so the
// formula is unsatisfiable.
func backtrack(cnf *CNF, st *state, log TraceLogger) bool {
	if st.level == 0 {
		return false
	}

	length := st.control[len(st.control)-1]
	st.control = st.control[:len(st.control)-1]

	for i := len(st.trail) - 1; i > length; i-- {
		unassign(st.trail[i], cnf, st, log)
	}
	st.trail = st.trail[:length+1]

	decided := st.trail[len(st.trail)-1]
	st.trail = st.trail[:len(st.trail)-1]
	unassign(decided, cnf, st, log)
	assign(-decided, cnf, st, log)

	st.level--
	st.propagated = length

	log.Tracef("backtracked to level %d", st.level)
	return true
}

// Solve decides whether cnf is satisfiable. If it is, the returned Model
// gives a total assignment over variables 1..=n satisfying every clause;
// the second return value is false exactly when the formula is
// unsatisfiable, in which case the Model is nil.
//
// Solve never returns an error: parse/IO failures are the caller's
// concern (ParseDIMACS), and UNSAT is a normal result, not an error
// (§7).
func Solve(cnf *CNF, opts ...Option) (*Model, bool) {
	cfg := newConfig(opts...)
	st := newState(cnf.NumVariables)

	if len(cnf.Clauses) == 0 {
		// An empty formula is satisfiable by the empty assignment (§4.4.8).
		cfg.metrics.Observe(st.stats)
		return &Model{numVariables: cnf.NumVariables, assignments: st.assignments}, true
	}

	if !connect(cnf, st, cfg.logger) {
		cfg.metrics.Observe(st.stats)
		return nil, false
	}

	for {
		if propagate(cnf, st, cfg.logger) {
			if !decide(cnf, st, cfg.heuristic, cfg.logger) {
				cfg.metrics.Observe(st.stats)
				return &Model{numVariables: cnf.NumVariables, assignments: st.assignments}, true
			}
			continue
		}
		if !backtrack(cnf, st, cfg.logger) {
			cfg.metrics.Observe(st.stats)
			return nil, false
		}
	}
}
