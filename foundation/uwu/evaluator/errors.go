// File: errors.go
// Title: Runtime Diagnostics
// Description: Runtime error kinds and the error value that aborts a single
//              top-level statement.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package evaluator

import (
	"fmt"

	mdwerror "github.com/msto63/uwu/foundation/core/error"
)

// ErrorKind classifies runtime errors
type ErrorKind int

const (
	UndefinedVariable ErrorKind = iota
	TypeError
	DivisionByZero
	ArgumentError
)

// String returns the name of the kind
func (k ErrorKind) String() string {
	switch k {
	case UndefinedVariable:
		return "UndefinedVariable"
	case TypeError:
		return "TypeError"
	case DivisionByZero:
		return "DivisionByZero"
	case ArgumentError:
		return "ArgumentError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Code maps the kind onto an error code
func (k ErrorKind) Code() mdwerror.Code {
	switch k {
	case UndefinedVariable:
		return mdwerror.CodeUndefinedVariable
	case TypeError:
		return mdwerror.CodeTypeMismatch
	case DivisionByZero:
		return mdwerror.CodeDivisionByZero
	case ArgumentError:
		return mdwerror.CodeArgument
	default:
		return mdwerror.CodeUnknown
	}
}

// RuntimeError is raised while evaluating a statement
type RuntimeError struct {
	Kind    ErrorKind
	Line    int
	Message string
}

func newError(kind ErrorKind, line int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}

// Error renders the diagnostic line "[line n] Error: message"
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// SourceLine returns the 0-based line of the diagnostic
func (e *RuntimeError) SourceLine() int {
	return e.Line
}

// Code returns the error code of the kind
func (e *RuntimeError) Code() mdwerror.Code {
	return e.Kind.Code()
}

// AsError converts the diagnostic for structured logging
func (e *RuntimeError) AsError() *mdwerror.Error {
	return mdwerror.New(e.Message).
		WithCode(e.Kind.Code()).
		WithOperation("evaluator.Evaluate").
		WithLine(e.Line).
		WithDetail("kind", e.Kind.String())
}
