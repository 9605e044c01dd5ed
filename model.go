package dpll

import "fmt"

// Model is a total satisfying assignment over variables 1..=n, returned
// when Solve finds the formula satisfiable.
type Model struct {
	numVariables int
	assignments  *NVec[Assignment]
}

// Value reports the truth value of variable (1-based). A variable that
// was never assigned by the time the search terminated (for a formula
// with zero clauses, or when DLIS finds every clause satisfied before
// reaching it) is reported True by convention (§6).
func (m *Model) Value(variable int) bool {
	a := m.assignments.Get(variable)
	return a != False
}

// Literals returns one signed literal per variable, 1..=n, in variable
// order: positive when the variable is True, negative when False.
func (m *Model) Literals() []int {
	lits := make([]int, m.numVariables)
	for v := 1; v <= m.numVariables; v++ {
		if m.Value(v) {
			lits[v-1] = v
		} else {
			lits[v-1] = -v
		}
	}
	return lits
}

// Verify independently checks the model against cnf by scanning every
// clause, per §8: "the test must additionally verify the SAT model
// against the input clauses by clause scan, not trust the solver."
func (m *Model) Verify(cnf *CNF) bool {
	for _, cl := range cnf.Clauses {
		satisfied := false
		for _, lit := range cl.Literals {
			v := abs(lit)
			value := m.Value(v)
			if (lit > 0) == value {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// WitnessLine formats the model as a DIMACS witness line: "v l1 l2 ... ln 0".
func (m *Model) WitnessLine() string {
	s := "v"
	for _, lit := range m.Literals() {
		s += fmt.Sprintf(" %d", lit)
	}
	return s + " 0"
}
