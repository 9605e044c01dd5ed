package dpll

import (
	"reflect"
	"testing"
)

func newTestModel(n int, trueVars map[int]bool) *Model {
	assignments := NewNVec[Assignment](n)
	for v := 1; v <= n; v++ {
		if trueVars[v] {
			assignments.Set(v, True)
			assignments.Set(-v, False)
		} else {
			assignments.Set(v, False)
			assignments.Set(-v, True)
		}
	}
	return &Model{numVariables: n, assignments: assignments}
}

func TestModelValueAndLiterals(t *testing.T) {
	m := newTestModel(3, map[int]bool{1: true, 3: true})
	if !m.Value(1) || m.Value(2) || !m.Value(3) {
		t.Fatalf("unexpected values: %v %v %v", m.Value(1), m.Value(2), m.Value(3))
	}
	if got, want := m.Literals(), []int{1, -2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Literals() = %v, want %v", got, want)
	}
}

func TestModelWitnessLine(t *testing.T) {
	m := newTestModel(2, map[int]bool{1: true})
	if got, want := m.WitnessLine(), "v 1 -2 0"; got != want {
		t.Errorf("WitnessLine() = %q, want %q", got, want)
	}
}

func TestModelVerify(t *testing.T) {
	cnf := NewCNF("", []*Clause{
		NewClause([]int{1, 2}),
		NewClause([]int{-1, 3}),
	}, 3)
	good := newTestModel(3, map[int]bool{1: true, 3: true})
	if !good.Verify(cnf) {
		t.Error("expected Verify to accept a satisfying model")
	}

	bad := newTestModel(3, map[int]bool{1: false, 2: false, 3: false})
	if bad.Verify(cnf) {
		t.Error("expected Verify to reject a non-satisfying model")
	}
}
