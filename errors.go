package dpll

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseErrorKind classifies a DIMACS parse failure (§7 of the spec: parse
// errors are recoverable, surfaced to the caller, never a partial CNF).
type ParseErrorKind int

const (
	ErrMalformedHeader ParseErrorKind = iota
	ErrMultipleHeaders
	ErrHeaderAfterClauses
	ErrInvalidLiteral
	ErrLiteralOutOfRange
	ErrClauseCountMismatch
	ErrIO
)

func (k ParseErrorKind) String() string {
	switch k {
	case ErrMalformedHeader:
		return "malformed header"
	case ErrMultipleHeaders:
		return "multiple problem lines"
	case ErrHeaderAfterClauses:
		return "problem line after clauses"
	case ErrInvalidLiteral:
		return "invalid literal"
	case ErrLiteralOutOfRange:
		return "literal out of declared range"
	case ErrClauseCountMismatch:
		return "clause count mismatch"
	case ErrIO:
		return "I/O error"
	default:
		return "unknown parse error"
	}
}

// ParseError reports a recoverable failure while reading a DIMACS CNF
// stream, with the filename and, where known, the offending line.
type ParseError struct {
	Kind     ParseErrorKind
	Filename string
	Line     int // 1-based; 0 when not line-specific
	cause    error
}

func (e *ParseError) Error() string {
	where := e.Filename
	if e.Line > 0 {
		where = fmt.Sprintf("%s:%d", where, e.Line)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s", where, e.Kind, e.cause)
	}
	return fmt.Sprintf("%s: %s", where, e.Kind)
}

func (e *ParseError) Unwrap() error {
	return e.cause
}

func newParseError(kind ParseErrorKind, filename string, line int, cause error) *ParseError {
	return &ParseError{Kind: kind, Filename: filename, Line: line, cause: cause}
}

func wrapParseError(kind ParseErrorKind, filename string, line int, msg string) *ParseError {
	return newParseError(kind, filename, line, errors.New(msg))
}
