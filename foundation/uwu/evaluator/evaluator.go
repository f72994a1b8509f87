// File: evaluator.go
// Title: uwu Tree-Walking Evaluator
// Description: Evaluates parsed statements in order against one environment.
//              A runtime error aborts only the statement it occurs in; the
//              error flag records that at least one statement failed.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial evaluator implementation

package evaluator

import (
	"io"

	mdwlog "github.com/msto63/uwu/foundation/core/log"
	"github.com/msto63/uwu/foundation/uwu/ast"
	"github.com/msto63/uwu/foundation/uwu/lexer"
	"github.com/msto63/uwu/foundation/uwu/result"
	"github.com/msto63/uwu/foundation/utils/mathx"
)

// DefaultMaxLoopIterations bounds the count accepted by OwOLazo
const DefaultMaxLoopIterations = 100000

// ValueResult is one item of the evaluator output
type ValueResult = result.Result[Value, *RuntimeError]

// Options configures the evaluator
type Options struct {
	Logger *mdwlog.Logger

	// Output receives impwimir output; nil discards it
	Output io.Writer

	// MaxLoopIterations bounds OwOLazo; zero means DefaultMaxLoopIterations
	MaxLoopIterations int
}

// Evaluator walks expression trees. It keeps its global environment between
// calls to Evaluate until Reset is called.
type Evaluator struct {
	logger  *mdwlog.Logger
	output  io.Writer
	maxLoop int

	globals   *Environment
	env       *Environment
	errorFlag bool
}

// New creates an evaluator with a fresh global environment
func New(opts Options) *Evaluator {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	if opts.MaxLoopIterations <= 0 {
		opts.MaxLoopIterations = DefaultMaxLoopIterations
	}

	ev := &Evaluator{
		logger:  opts.Logger.WithField("component", "uwu-evaluator"),
		output:  opts.Output,
		maxLoop: opts.MaxLoopIterations,
	}
	ev.Reset()
	return ev
}

// Evaluate runs every statement in order and returns one result each
func (ev *Evaluator) Evaluate(stmts []ast.Expr) []ValueResult {
	results := make([]ValueResult, 0, len(stmts))
	failed := 0
	for _, stmt := range stmts {
		r := ev.EvaluateStatement(stmt)
		if !r.IsOk() {
			failed++
		}
		results = append(results, r)
	}

	ev.logger.Debug("Statements evaluated", mdwlog.Fields{
		"statements": len(stmts),
		"errors":     failed,
	})
	return results
}

// EvaluateStatement runs a single top-level statement
func (ev *Evaluator) EvaluateStatement(stmt ast.Expr) ValueResult {
	// top-level statements always run in the global scope
	ev.env = ev.globals

	r := ast.Walk[ValueResult](stmt, ev)
	if !r.IsOk() {
		ev.errorFlag = true
	}
	return r
}

// ErrorFlag reports whether any statement failed since the last Reset
func (ev *Evaluator) ErrorFlag() bool {
	return ev.errorFlag
}

// ClearErrorFlag clears the error flag and keeps the environment
func (ev *Evaluator) ClearErrorFlag() {
	ev.errorFlag = false
}

// Reset discards all variables and clears the error flag
func (ev *Evaluator) Reset() {
	ev.globals = NewEnvironment(nil)
	ev.env = ev.globals
	ev.errorFlag = false
}

// Globals returns the global environment
func (ev *Evaluator) Globals() *Environment {
	return ev.globals
}

func ok(v Value) ValueResult {
	return result.Ok[Value, *RuntimeError](v)
}

func fail(err *RuntimeError) ValueResult {
	return result.Err[Value](err)
}

func (ev *Evaluator) eval(e ast.Expr) (Value, *RuntimeError) {
	r := ast.Walk[ValueResult](e, ev)
	if v, isOk := r.Value(); isOk {
		return v, nil
	}
	err, _ := r.Err()
	return Value{}, err
}

// VisitLiteral yields the literal's value
func (ev *Evaluator) VisitLiteral(e *ast.Literal) ValueResult {
	return ok(FromLiteral(e.Value))
}

// VisitIdentifier looks the variable up
func (ev *Evaluator) VisitIdentifier(e *ast.Identifier) ValueResult {
	v, found := ev.env.Get(e.Name)
	if !found {
		return fail(newError(UndefinedVariable, e.SrcLine, "Undefined variable '%s'.", e.Name))
	}
	return ok(v)
}

// VisitUnary applies '-', '!' or "no"
func (ev *Evaluator) VisitUnary(e *ast.Unary) ValueResult {
	operand, err := ev.eval(e.Operand)
	if err != nil {
		return fail(err)
	}

	if e.Op.Kind == lexer.Minus {
		n, isNum := operand.AsNumber()
		if !isNum {
			return fail(newError(TypeError, e.Op.Line, "Operand of '-' must be a number, got %s.", operand.Kind()))
		}
		return ok(Number(-n))
	}
	return ok(Bool(!operand.Truthy()))
}

// VisitBinary applies arithmetic, comparison, equality and logic operators
func (ev *Evaluator) VisitBinary(e *ast.Binary) ValueResult {
	if e.Op.Kind == lexer.Keyword {
		return ev.logical(e)
	}

	left, err := ev.eval(e.Left)
	if err != nil {
		return fail(err)
	}
	right, err := ev.eval(e.Right)
	if err != nil {
		return fail(err)
	}

	switch e.Op.Kind {
	case lexer.DoubleEquals:
		return ok(Bool(left.Equal(right)))
	case lexer.BangEquals:
		return ok(Bool(!left.Equal(right)))
	case lexer.Plus:
		if ls, isStr := left.AsString(); isStr {
			if rs, bothStr := right.AsString(); bothStr {
				return ok(String(ls + rs))
			}
		}
	}

	l, lok := left.AsNumber()
	r, rok := right.AsNumber()
	if !lok || !rok {
		if e.Op.Kind == lexer.Plus {
			return fail(newError(TypeError, e.Op.Line, "Operands of '+' must be two numbers or two strings, got %s and %s.", left.Kind(), right.Kind()))
		}
		return fail(newError(TypeError, e.Op.Line, "Operands of '%s' must be numbers, got %s and %s.", e.Op.Lexeme, left.Kind(), right.Kind()))
	}

	switch e.Op.Kind {
	case lexer.Plus:
		return ok(Number(l + r))
	case lexer.Minus:
		return ok(Number(l - r))
	case lexer.Star:
		return ok(Number(l * r))
	case lexer.Slash:
		if r == 0 {
			return fail(newError(DivisionByZero, e.Op.Line, "Division by zero."))
		}
		return ok(Number(l / r))
	case lexer.Greater:
		return ok(Bool(l > r))
	case lexer.GreaterEquals:
		return ok(Bool(l >= r))
	case lexer.Less:
		return ok(Bool(l < r))
	case lexer.LessEquals:
		return ok(Bool(l <= r))
	}
	return fail(newError(TypeError, e.Op.Line, "Unknown operator '%s'.", e.Op.Lexeme))
}

// logical short-circuits "y" and "o" and yields the last operand evaluated
func (ev *Evaluator) logical(e *ast.Binary) ValueResult {
	left, err := ev.eval(e.Left)
	if err != nil {
		return fail(err)
	}

	if e.Op.IsKeyword(lexer.KeywordOr) {
		if left.Truthy() {
			return ok(left)
		}
	} else if !left.Truthy() {
		return ok(left)
	}
	return ast.Walk[ValueResult](e.Right, ev)
}

// VisitGrouping evaluates the inner expression
func (ev *Evaluator) VisitGrouping(e *ast.Grouping) ValueResult {
	return ast.Walk[ValueResult](e.Inner, ev)
}

// VisitAssignment stores the value and yields it
func (ev *Evaluator) VisitAssignment(e *ast.Assignment) ValueResult {
	v, err := ev.eval(e.Value)
	if err != nil {
		return fail(err)
	}
	ev.env.Assign(e.Name, v)
	return ok(v)
}

// VisitBlock evaluates statements in a child scope and yields the last value
func (ev *Evaluator) VisitBlock(e *ast.Block) ValueResult {
	outer := ev.env
	ev.env = NewEnvironment(outer)
	defer func() { ev.env = outer }()

	last := Nil()
	for _, stmt := range e.Statements {
		v, err := ev.eval(stmt)
		if err != nil {
			return fail(err)
		}
		last = v
	}
	return ok(last)
}

// VisitConditional evaluates the branch selected by the condition
func (ev *Evaluator) VisitConditional(e *ast.Conditional) ValueResult {
	cond, err := ev.eval(e.Condition)
	if err != nil {
		return fail(err)
	}

	if cond.Truthy() {
		return ev.VisitBlock(e.Then)
	}
	if e.Else != nil {
		return ast.Walk[ValueResult](e.Else, ev)
	}
	return ok(Nil())
}

// VisitCall dispatches to a builtin
func (ev *Evaluator) VisitCall(e *ast.Call) ValueResult {
	b, found := builtins[e.Builtin]
	if !found {
		return fail(newError(ArgumentError, e.SrcLine, "Unknown builtin '%s'.", e.Builtin))
	}
	if e.Builtin == lexer.BuiltinLoop {
		return ev.loop(b, e)
	}

	args := make([]Value, 0, len(e.Args))
	for _, argExpr := range e.Args {
		v, err := ev.eval(argExpr)
		if err != nil {
			return fail(err)
		}
		args = append(args, v)
	}

	if err := b.checkArity(e.SrcLine, len(args)); err != nil {
		return fail(err)
	}

	v, err := b.call(&callContext{sig: b.signature, line: e.SrcLine, output: ev.output}, args)
	if err != nil {
		return fail(err)
	}
	return ok(v)
}

// loop implements OwOLazo(count, body): the body expression is evaluated
// count times and the last value is returned.
func (ev *Evaluator) loop(b builtin, e *ast.Call) ValueResult {
	if err := b.checkArity(e.SrcLine, len(e.Args)); err != nil {
		return fail(err)
	}

	countValue, err := ev.eval(e.Args[0])
	if err != nil {
		return fail(err)
	}
	count, isNum := countValue.AsNumber()
	if !isNum || !mathx.IsInteger(count) || count < 0 || count > float64(ev.maxLoop) {
		return fail(newError(ArgumentError, e.SrcLine,
			"%s: count must be a whole number from 0 to %d, got %s.", b.signature, ev.maxLoop, countValue))
	}

	last := Nil()
	for i := 0; i < int(count); i++ {
		v, err := ev.eval(e.Args[1])
		if err != nil {
			return fail(err)
		}
		last = v
	}
	return ok(last)
}
