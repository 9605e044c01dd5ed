package dpll

// Assignment is the truth value carried by a variable's NVec cell. It is
// stored for both polarities of a variable: assignments(ℓ) and
// assignments(-ℓ) are always duals — exactly one of {both Unassigned} or
// {True, False} in opposite polarities.
type Assignment int8

const (
	Unassigned Assignment = 0
	True       Assignment = 1
	False      Assignment = -1
)

func (a Assignment) String() string {
	switch a {
	case Unassigned:
		return "unassigned"
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "invalid"
	}
}

// ClauseStatus is the O(1)-computed status of a clause given the current
// assignment, derived purely from its live counters (see Clause.Status).
type ClauseStatus int

const (
	// StatusNone: nothing can be concluded about the clause yet.
	StatusNone ClauseStatus = iota
	// StatusSatisfied: at least one literal is True.
	StatusSatisfied
	// StatusFalsified: every literal is False (a conflict).
	StatusFalsified
	// StatusForcing: exactly one literal is unassigned and no literal is
	// True; that literal must be assigned True to satisfy the clause.
	StatusForcing
)

func (s ClauseStatus) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusSatisfied:
		return "satisfied"
	case StatusFalsified:
		return "falsified"
	case StatusForcing:
		return "forcing"
	default:
		return "invalid"
	}
}
