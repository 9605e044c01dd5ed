package dpll_test

import (
	"fmt"

	"github.com/cdsolve/dpll"
)

func ExampleSolve() {
	// Problem: (¬x ∨ y) ∧ (¬y ∨ z) ∧ (x ∨ ¬z ∨ y) ∧ y
	cnf := dpll.NewCNF("", []*dpll.Clause{
		dpll.NewClause([]int{-1, 2}),
		dpll.NewClause([]int{-2, 3}),
		dpll.NewClause([]int{1, -3, 2}),
		dpll.NewClause([]int{2}),
	}, 3)

	model, ok := dpll.Solve(cnf)
	if !ok {
		fmt.Println("not satisfiable")
		return
	}
	fmt.Println("satisfiable:", model.Verify(cnf))
	// Output: satisfiable: true
}
