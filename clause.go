package dpll

import (
	"fmt"
	"strings"
)

// Clause is an ordered multiset of literals, with the live counters the
// DPLL engine maintains across every assign/unassign in the search.
//
// Invariants, maintained at every quiescent point (i.e. whenever no
// assign/unassign is in flight):
//
//	0 <= NumTrue, NumFalse <= Size
//	NumTrue + NumFalse <= Size
//	Sum == sum of literals currently Unassigned
type Clause struct {
	Literals []int
	Size     int
	NumTrue  int
	NumFalse int
	Sum      int
}

// NewClause builds a Clause from a literal list. Counters start at their
// quiescent values for an entirely unassigned formula: NumTrue = NumFalse
// = 0, Sum = the arithmetic sum of all literals (each one currently
// unassigned).
func NewClause(literals []int) *Clause {
	sum := 0
	for _, lit := range literals {
		sum += lit
	}
	return &Clause{
		Literals: literals,
		Size:     len(literals),
		Sum:      sum,
	}
}

// Status computes the clause's status from its counters alone, in O(1).
// When the status is StatusForcing, the second return value is the sole
// unassigned literal that must be assigned to satisfy the clause — valid
// because with exactly one literal left unassigned, Sum *is* that literal.
func (c *Clause) Status() (ClauseStatus, int) {
	switch {
	case c.NumTrue > 0:
		return StatusSatisfied, 0
	case c.NumFalse == c.Size:
		return StatusFalsified, 0
	case c.NumFalse == c.Size-1:
		return StatusForcing, c.Sum
	default:
		return StatusNone, 0
	}
}

func (c *Clause) String() string {
	parts := make([]string, len(c.Literals))
	for i, lit := range c.Literals {
		parts[i] = fmt.Sprintf("%d", lit)
	}
	return "(" + strings.Join(parts, " ∨ ") + ")"
}
