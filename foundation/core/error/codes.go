// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the uwu toolchain. Codes
//              classify pipeline diagnostics (lexical, syntax, runtime) and
//              driver failures (configuration, input) so that loggers and the
//              CLI can treat them uniformly.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Replaced platform codes with interpreter diagnostics

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Lexical stage
	CodeLexical Code = "UWU_LEXICAL"

	// Syntax stage
	CodeSyntax Code = "UWU_SYNTAX"

	// Runtime stage
	CodeUndefinedVariable Code = "UWU_UNDEFINED_VARIABLE"
	CodeTypeMismatch      Code = "UWU_TYPE_ERROR"
	CodeDivisionByZero    Code = "UWU_DIVISION_BY_ZERO"
	CodeArgument          Code = "UWU_ARGUMENT"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLexical, CodeSyntax,
		CodeUndefinedVariable, CodeTypeMismatch, CodeDivisionByZero, CodeArgument,
		CodeConfigError, CodeInvalidConfig, CodeValidationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical:
		return "lexical"
	case CodeSyntax:
		return "syntax"
	case CodeUndefinedVariable, CodeTypeMismatch, CodeDivisionByZero, CodeArgument:
		return "runtime"
	case CodeConfigError, CodeInvalidConfig, CodeValidationFailed:
		return "configuration"
	default:
		return "generic"
	}
}

// IsDiagnostic reports whether the code belongs to a pipeline stage rather
// than to the driver around it.
func (c Code) IsDiagnostic() bool {
	switch c.Category() {
	case "lexical", "syntax", "runtime":
		return true
	}
	return false
}
