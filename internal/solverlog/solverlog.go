// Package solverlog wires the solver's TraceLogger interface to logrus,
// and builds the leveled CLI logger the dpll command uses for its
// quiet/verbose/normal output modes.
package solverlog

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger adapts a *logrus.Entry to dpll.TraceLogger. It is passed to
// dpll.WithTraceLogger so the core engine can emit one trace line per
// assign/unassign/decide/backtrack without importing logrus itself.
type Logger struct {
	entry *logrus.Entry
}

// New wraps entry as a dpll.TraceLogger.
func New(entry *logrus.Entry) *Logger {
	return &Logger{entry: entry}
}

// Tracef implements dpll.TraceLogger.
func (l *Logger) Tracef(format string, args ...any) {
	l.entry.Tracef(format, args...)
}

// Level mirrors the CLI's three verbosity tiers, matching the original
// solver's quiet/normal/verbose split.
type Level int

const (
	// Quiet suppresses everything but warnings and errors.
	Quiet Level = iota
	// Normal logs informational progress (solve time, metrics address).
	Normal
	// Verbose additionally logs every assign/unassign/decide/backtrack.
	Verbose
)

// NewCLILogger builds the *logrus.Logger used by cmd/dpll, writing to w
// with no timestamps and forced color, matching the original CLI's
// init_logging behavior.
func NewCLILogger(w io.Writer, level Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		ForceColors:      true,
	})
	switch level {
	case Quiet:
		log.SetLevel(logrus.WarnLevel)
	case Normal:
		log.SetLevel(logrus.InfoLevel)
	case Verbose:
		log.SetLevel(logrus.TraceLevel)
	}
	return log
}

// NewStderrCLILogger is a convenience wrapper around NewCLILogger writing
// to os.Stderr, the default destination for the dpll command's diagnostics.
func NewStderrCLILogger(level Level) *logrus.Logger {
	return NewCLILogger(os.Stderr, level)
}
