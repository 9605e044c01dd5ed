package dpll

import "testing"

func TestNewStateZeroValues(t *testing.T) {
	st := newState(4)
	if st.level != 0 {
		t.Errorf("level = %d, want 0", st.level)
	}
	if st.propagated != 0 {
		t.Errorf("propagated = %d, want 0", st.propagated)
	}
	if len(st.trail) != 0 || len(st.control) != 0 {
		t.Errorf("trail/control not empty: %v %v", st.trail, st.control)
	}
	if st.assignments.MaxIndex() != 4 {
		t.Errorf("assignments.MaxIndex() = %d, want 4", st.assignments.MaxIndex())
	}
}
