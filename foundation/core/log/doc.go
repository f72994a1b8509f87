// Package log provides structured logging for the uwu toolchain.
//
// Package: log
// Title: uwu Structured Logging
// Description: Leveled, structured logging with persistent context fields,
//              a per-run identifier, four output formats and a timer for
//              measuring pipeline stages. Coded errors from the error package
//              are logged at a level derived from their severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Run IDs, stderr default, deterministic field order, no async mode
//
// Usage:
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelDebug, Format: mdwlog.FormatConsole}).
//		WithField("component", "uwu-parser").
//		WithRunID(runID)
//
//	logger.Debug("statement parsed", mdwlog.Fields{"line": 3})
//
//	timer := logger.StartTimer("tokenize")
//	// ...
//	timer.StopWithResult(ok, mdwlog.Fields{"tokens": n})
package log
