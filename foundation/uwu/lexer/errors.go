// File: errors.go
// Title: Lexical Diagnostics
// Description: The error value emitted for an unexpected character or an
//              unterminated string. Scanning always continues after one.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package lexer

import (
	"fmt"

	mdwerror "github.com/msto63/uwu/foundation/core/error"
)

// Messages emitted by the tokenizer
const (
	MsgUnterminatedString = "Unterminated string."
	msgUnexpectedChar     = "Unexpected character: %c"
	msgInvalidNumber      = "Invalid number: %s"
)

// Error is a lexical diagnostic
type Error struct {
	Line    int
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

// Code returns the error code for lexical diagnostics
func (e *Error) Code() mdwerror.Code {
	return mdwerror.CodeLexical
}

// AsError converts the diagnostic for structured logging
func (e *Error) AsError() *mdwerror.Error {
	return mdwerror.New(e.Message).
		WithCode(mdwerror.CodeLexical).
		WithOperation("lexer.Scan").
		WithLine(e.Line)
}
