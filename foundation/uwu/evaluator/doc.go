// File: doc.go
// Title: Evaluator Package Documentation
// Description: Package documentation for the uwu evaluator.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

/*
Package evaluator executes uwu expression trees.

Values are nil (nya), booleans (chi, ño), float64 numbers and strings. Only
nya and ño are falsy. Arithmetic and comparisons require numbers, except
that '+' also concatenates two strings. Equality never fails: values of
different kinds are simply unequal.

The logical keywords y and o short-circuit and yield the last operand they
evaluated, not a boolean.

Blocks open a child scope. Assigning to a name updates the nearest scope
that already binds it; otherwise the name is bound in the current scope.

Each top-level statement produces one result. A runtime error ends only
the statement it occurs in and sets the error flag.
*/
package evaluator
