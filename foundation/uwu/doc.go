// File: doc.go
// Title: uwu Package Documentation
// Description: Package documentation for the uwu pipeline engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

/*
Package uwu runs source text through the uwu pipeline:

	text -> lexer -> tokens -> parser -> expressions -> evaluator -> values

Each stage returns one result per item (token, statement, value) and keeps
going after an error, so a single pass reports as many problems as
possible. The Engine ties the stages together:

	engine := uwu.New(uwu.Options{Output: os.Stdout})
	report, err := engine.Run("impwimir(1 + 2 * 3)\n")
	// prints 7; report.ErrorFlag is false

Run skips evaluation when tokenizing or parsing produced diagnostics.
Diagnostics are written to the output as "[line n] Error: message" and also
logged with their run ID.

A Session keeps variables across inputs and backs the interactive REPL.
*/
package uwu
