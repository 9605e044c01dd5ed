package dpll

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS parses text in the DIMACS CNF format (§6). Comment lines
// (beginning with 'c') may appear anywhere in the stream, including
// between header and clauses. The problem line ("p cnf <vars> <clauses>")
// is optional; when present it must appear before any clause and at most
// once. A lone "%" line ends the formula; anything after it (a DIMACS
// trailer) is ignored.
//
// filename is recorded on the resulting CNF and used in any ParseError
// this function returns.
func ParseDIMACS(r io.Reader, filename string) (*CNF, error) {
	var header struct {
		numVars    int
		numClauses int
		seen       bool
	}
	var clauses [][]int
	var clause []int

	s := bufio.NewScanner(r)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 || len(clause) > 0 {
				return nil, newParseError(ErrHeaderAfterClauses, filename, lineNo, nil)
			}
			if header.seen {
				return nil, newParseError(ErrMultipleHeaders, filename, lineNo, nil)
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, wrapParseError(ErrMalformedHeader, filename, lineNo, fmt.Sprintf("malformed problem line %q", line))
			}
			vars, err := strconv.Atoi(fields[2])
			if err != nil || vars < 0 {
				return nil, newParseError(ErrMalformedHeader, filename, lineNo, err)
			}
			numClauses, err := strconv.Atoi(fields[3])
			if err != nil || numClauses < 0 {
				return nil, newParseError(ErrMalformedHeader, filename, lineNo, err)
			}
			header.numVars = vars
			header.numClauses = numClauses
			header.seen = true
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, newParseError(ErrInvalidLiteral, filename, lineNo, err)
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, newParseError(ErrIO, filename, lineNo, err)
	}
	if len(clause) > 0 {
		clauses = append(clauses, clause)
	}

	if header.seen {
		for _, cls := range clauses {
			for _, lit := range cls {
				if v := abs(lit); v > header.numVars {
					return nil, wrapParseError(ErrLiteralOutOfRange, filename, 0,
						fmt.Sprintf("formula contains var %d, but problem line asserts %d vars (only vars in [1, %d] expected)",
							v, header.numVars, header.numVars))
				}
			}
		}
		if len(clauses) != header.numClauses {
			return nil, wrapParseError(ErrClauseCountMismatch, filename, 0,
				fmt.Sprintf("problem line specifies %d clauses, but there are %d", header.numClauses, len(clauses)))
		}
	}

	numVars := header.numVars
	if !header.seen {
		for _, cls := range clauses {
			for _, lit := range cls {
				if v := abs(lit); v > numVars {
					numVars = v
				}
			}
		}
	}

	out := make([]*Clause, len(clauses))
	for i, cls := range clauses {
		out[i] = NewClause(cls)
	}
	return NewCNF(filename, out, numVars), nil
}

// WriteDIMACS writes cnf back out in DIMACS CNF format: a "p cnf n m"
// header followed by one line per clause, each terminated by a literal
// "0". It is the inverse of ParseDIMACS modulo comments, which are not
// round-tripped.
func WriteDIMACS(w io.Writer, cnf *CNF) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", cnf.NumVariables, len(cnf.Clauses)); err != nil {
		return err
	}
	for _, cl := range cnf.Clauses {
		for _, lit := range cl.Literals {
			if _, err := fmt.Fprintf(bw, "%d ", lit); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, 0); err != nil {
			return err
		}
	}
	return bw.Flush()
}
