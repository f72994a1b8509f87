// File: errors.go
// Title: Syntax Diagnostics
// Description: The error value produced for a malformed statement. The parser
//              resynchronises after each one and keeps going.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	"fmt"

	mdwerror "github.com/msto63/uwu/foundation/core/error"
	"github.com/msto63/uwu/foundation/uwu/lexer"
)

// Error is a syntax diagnostic. Token is the offending token; AtEnd is set
// when the input ran out instead.
type Error struct {
	Line    int
	Token   lexer.Token
	AtEnd   bool
	Message string
}

// Error renders the diagnostic line "[line n] Error: message"
func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// SourceLine returns the 0-based line of the diagnostic
func (e *Error) SourceLine() int {
	return e.Line
}

// Code returns the error code for syntax diagnostics
func (e *Error) Code() mdwerror.Code {
	return mdwerror.CodeSyntax
}

// AsError converts the diagnostic for structured logging
func (e *Error) AsError() *mdwerror.Error {
	err := mdwerror.New(e.Message).
		WithCode(mdwerror.CodeSyntax).
		WithOperation("parser.Parse").
		WithLine(e.Line)
	if !e.AtEnd {
		err = err.WithDetail("token", e.Token.Lexeme)
	}
	return err
}
