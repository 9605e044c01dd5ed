package dpll

import "strings"

// CNF is an immutable-shape conjunction of clauses: filename, clause
// vector, variable count, clause count. Only clause counters mutate
// during search; Clauses/NumVariables/NumClauses never change shape once
// constructed.
type CNF struct {
	Filename     string
	Clauses      []*Clause
	NumVariables int
	NumClauses   int
}

// NewCNF builds a CNF container. NumClauses is derived from len(clauses)
// rather than trusted from a caller-supplied count, since the DIMACS
// header count is validated against it at parse time (see ParseDIMACS)
// and any other caller constructing a CNF directly should not be able to
// desynchronize the two.
func NewCNF(filename string, clauses []*Clause, numVariables int) *CNF {
	return &CNF{
		Filename:     filename,
		Clauses:      clauses,
		NumVariables: numVariables,
		NumClauses:   len(clauses),
	}
}

func (c *CNF) String() string {
	parts := make([]string, len(c.Clauses))
	for i, cl := range c.Clauses {
		parts[i] = cl.String()
	}
	return "(" + strings.Join(parts, " ∧ ") + ")"
}
