// File: nodes.go
// Title: uwu Expression Tree
// Description: The closed set of expression nodes produced by the parser.
//              Every node owns its children; trees are never shared.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial node set

package ast

import "github.com/msto63/uwu/foundation/uwu/lexer"

// Expr is an expression node. The unexported marker method keeps the set of
// node types closed to this package.
type Expr interface {
	// Line returns the 0-based source line the expression starts on
	Line() int
	exprNode()
}

// Literal is a number, string, boolean or nil constant
type Literal struct {
	Value   lexer.Literal
	SrcLine int
}

// Identifier is a variable reference
type Identifier struct {
	Name    string
	SrcLine int
}

// Unary is a prefix operator applied to one operand. Op is the operator
// token: '!', '-' or the keyword "no".
type Unary struct {
	Op      lexer.Token
	Operand Expr
}

// Binary covers arithmetic, comparison, equality and the logical
// keywords "y" and "o".
type Binary struct {
	Op    lexer.Token
	Left  Expr
	Right Expr
}

// Grouping is a parenthesised expression
type Grouping struct {
	Inner   Expr
	SrcLine int
}

// Assignment binds Value to Name
type Assignment struct {
	Name    string
	Value   Expr
	SrcLine int
}

// Call invokes a builtin with its arguments in source order
type Call struct {
	Builtin string
	Args    []Expr
	SrcLine int
}

// Block is a brace-delimited statement list evaluated in a child scope
type Block struct {
	Statements []Expr
	SrcLine    int
}

// Conditional is "si (cond) {then} sino {else}". Else is nil when absent and
// is either a *Block or, for "sino si", another *Conditional.
type Conditional struct {
	Condition Expr
	Then      *Block
	Else      Expr
	SrcLine   int
}

func (e *Literal) Line() int     { return e.SrcLine }
func (e *Identifier) Line() int  { return e.SrcLine }
func (e *Unary) Line() int       { return e.Op.Line }
func (e *Binary) Line() int      { return e.Left.Line() }
func (e *Grouping) Line() int    { return e.SrcLine }
func (e *Assignment) Line() int  { return e.SrcLine }
func (e *Call) Line() int        { return e.SrcLine }
func (e *Block) Line() int       { return e.SrcLine }
func (e *Conditional) Line() int { return e.SrcLine }

func (*Literal) exprNode()     {}
func (*Identifier) exprNode()  {}
func (*Unary) exprNode()       {}
func (*Binary) exprNode()      {}
func (*Grouping) exprNode()    {}
func (*Assignment) exprNode()  {}
func (*Call) exprNode()        {}
func (*Block) exprNode()       {}
func (*Conditional) exprNode() {}
