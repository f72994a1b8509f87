// File: printer.go
// Title: Expression Printer
// Description: Renders expression trees in a parenthesised prefix form,
//              e.g. "(+ 1.0 (* 2.0 3.0))". Used by "uwu parse" and tests.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import (
	"strings"

	"github.com/msto63/uwu/foundation/uwu/lexer"
)

// Print renders e in prefix form
func Print(e Expr) string {
	return Walk[string](e, printer{})
}

type printer struct{}

func (p printer) VisitLiteral(e *Literal) string {
	if e.Value.Kind == lexer.StringLiteral {
		return `"` + e.Value.Str + `"`
	}
	return e.Value.String()
}

func (p printer) VisitIdentifier(e *Identifier) string {
	return e.Name
}

func (p printer) VisitUnary(e *Unary) string {
	return p.parenthesize(e.Op.Lexeme, e.Operand)
}

func (p printer) VisitBinary(e *Binary) string {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right)
}

func (p printer) VisitGrouping(e *Grouping) string {
	return p.parenthesize("group", e.Inner)
}

func (p printer) VisitAssignment(e *Assignment) string {
	return "(= " + e.Name + " " + Walk[string](e.Value, p) + ")"
}

func (p printer) VisitCall(e *Call) string {
	return p.parenthesize("call "+e.Builtin, e.Args...)
}

func (p printer) VisitBlock(e *Block) string {
	return p.parenthesize("block", e.Statements...)
}

func (p printer) VisitConditional(e *Conditional) string {
	parts := []Expr{e.Condition, e.Then}
	if e.Else != nil {
		parts = append(parts, e.Else)
	}
	return p.parenthesize("si", parts...)
}

func (p printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteString(" ")
		b.WriteString(Walk[string](e, p))
	}
	b.WriteString(")")
	return b.String()
}
