// Package error provides the structured error type of the uwu toolchain.
//
// Package: error
// Title: uwu Error Handling
// Description: Errors carry a code, a severity derived from the code, the
//              operation that failed, an optional 0-based source line and
//              free-form details. Pipeline diagnostics convert into this type
//              for logging; driver failures (configuration, unreadable input)
//              are created with it directly.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Interpreter codes, source line context
//
// Usage:
//
//	err := mdwerror.New("config file not found").
//		WithCode(mdwerror.CodeConfigError).
//		WithOperation("config.Load").
//		WithDetail("path", path)
//
//	if mdwerror.HasCode(err, mdwerror.CodeConfigError) {
//		// ...
//	}
package error
