// File: doc.go
// Title: AST Package Documentation
// Description: Package documentation for the uwu expression tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

// Package ast defines the expression tree of the uwu language, a generic
// Visitor over it and a prefix-form printer.
package ast
