// ============================================================================
// uwu - Interpreter fuer die UwU-Skriptsprache
// ============================================================================
//
// Package:     version
// Description: Central version information for the uwu toolchain
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Toolchain version of the uwu binary
	Toolchain = "0.1.0"

	// Language version of the accepted UwU dialect
	Language = "1.0.0"
)

// Commit is set at build time via -ldflags "-X ...version.Commit=<sha>"
var Commit = "dev"

// String returns the version line printed by "uwu version"
func String() string {
	return fmt.Sprintf("uwu %s (language %s, commit %s)", Toolchain, Language, Commit)
}
