package dpll

// TraceLogger receives fine-grained trace messages from the engine (one
// per assign/unassign/decide/backtrack event). It is an injected
// collaborator — the core engine takes no process-wide logging
// dependency (§9 "Global state / logging"). internal/solverlog adapts a
// *logrus.Logger to this interface.
type TraceLogger interface {
	Tracef(format string, args ...any)
}

type noopTraceLogger struct{}

func (noopTraceLogger) Tracef(string, ...any) {}
