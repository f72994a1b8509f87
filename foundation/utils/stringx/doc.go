// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides Unicode-safe string helpers.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-19 v0.3.0: Trimmed to the interpreter's needs

// Package stringx provides Unicode-safe string helpers that extend the
// standard strings package. All functions operate on runes, never on bytes,
// so multi-byte characters are kept intact.
package stringx
