// File: visitor.go
// Title: Expression Visitor
// Description: Generic visitor over the expression tree. Walk dispatches on
//              the concrete node type so that callers implement one method per
//              node kind and the compiler flags a missing one.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import "fmt"

// Visitor computes an R for every node kind
type Visitor[R any] interface {
	VisitLiteral(e *Literal) R
	VisitIdentifier(e *Identifier) R
	VisitUnary(e *Unary) R
	VisitBinary(e *Binary) R
	VisitGrouping(e *Grouping) R
	VisitAssignment(e *Assignment) R
	VisitCall(e *Call) R
	VisitBlock(e *Block) R
	VisitConditional(e *Conditional) R
}

// Walk dispatches e to the matching method of v
func Walk[R any](e Expr, v Visitor[R]) R {
	switch n := e.(type) {
	case *Literal:
		return v.VisitLiteral(n)
	case *Identifier:
		return v.VisitIdentifier(n)
	case *Unary:
		return v.VisitUnary(n)
	case *Binary:
		return v.VisitBinary(n)
	case *Grouping:
		return v.VisitGrouping(n)
	case *Assignment:
		return v.VisitAssignment(n)
	case *Call:
		return v.VisitCall(n)
	case *Block:
		return v.VisitBlock(n)
	case *Conditional:
		return v.VisitConditional(n)
	default:
		// unreachable: Expr is sealed by exprNode
		panic(fmt.Sprintf("ast: unknown expression %T", e))
	}
}
