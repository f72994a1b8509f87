// File: builtins.go
// Title: Builtin Functions
// Description: The fixed builtin table. Each entry declares its signature and
//              arity; argument kinds are checked inside the implementation.
//              OwOLazo is special: its body argument is evaluated lazily once
//              per iteration, see Evaluator.loop.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial builtin table
// - 2026-10-19 v0.1.1: Drop unused Signature

package evaluator

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/msto63/uwu/foundation/uwu/lexer"
	"github.com/msto63/uwu/foundation/utils/mathx"
	"github.com/msto63/uwu/foundation/utils/stringx"
)

type builtin struct {
	signature string
	minArgs   int
	maxArgs   int // -1 for variadic
	call      func(c *callContext, args []Value) (Value, *RuntimeError)
}

// callContext carries what a builtin may touch besides its arguments
type callContext struct {
	sig    string
	line   int
	output io.Writer
}

var builtins = map[string]builtin{
	lexer.BuiltinPrint:   {"impwimir(value)", 1, 1, builtinPrint},
	lexer.BuiltinReverse: {"UnUReversa(string)", 1, 1, builtinReverse},
	lexer.BuiltinPower:   {"TwTPotencia(number, number)", 2, 2, builtinPower},
	lexer.BuiltinTotal:   {"owoValorTotal(number...)", 0, -1, builtinTotal},
	lexer.BuiltinMax:     {"UwUMaximo(number, number...)", 1, -1, aggregate(mathx.Max)},
	lexer.BuiltinMin:     {"UnUMinimo(number, number...)", 1, -1, aggregate(mathx.Min)},
	lexer.BuiltinCeil:    {"UwUCima(number)", 1, 1, rounding(math.Ceil)},
	lexer.BuiltinFloor:   {"UnUSuelo(number)", 1, 1, rounding(math.Floor)},
	lexer.BuiltinMean:    {"EwEMedia(number, number...)", 1, -1, aggregate(mathx.Mean)},
	lexer.BuiltinSum:     {"TwTSuma(number, number)", 2, 2, builtinSum},
	lexer.BuiltinLoop:    {"OwOLazo(count, body)", 2, 2, nil},
	lexer.BuiltinMerge:   {"UnUMezcla(value...)", 0, -1, builtinMerge},
}

func (b builtin) checkArity(line, got int) *RuntimeError {
	if got >= b.minArgs && (b.maxArgs < 0 || got <= b.maxArgs) {
		return nil
	}

	var want string
	count := b.maxArgs
	switch {
	case b.maxArgs < 0:
		want = fmt.Sprintf("at least %d", b.minArgs)
		count = b.minArgs
	case b.minArgs == b.maxArgs:
		want = fmt.Sprintf("%d", b.minArgs)
	default:
		want = fmt.Sprintf("%d to %d", b.minArgs, b.maxArgs)
	}

	noun := "arguments"
	if count == 1 {
		noun = "argument"
	}
	return newError(ArgumentError, line, "%s expects %s %s, got %d.", b.signature, want, noun, got)
}

func (c *callContext) number(args []Value, i int) (float64, *RuntimeError) {
	n, ok := args[i].AsNumber()
	if !ok {
		return 0, c.wrongKind(args, i, NumberKind)
	}
	return n, nil
}

func (c *callContext) numbers(args []Value) ([]float64, *RuntimeError) {
	out := make([]float64, len(args))
	for i := range args {
		n, err := c.number(args, i)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func (c *callContext) wrongKind(args []Value, i int, want Kind) *RuntimeError {
	return newError(ArgumentError, c.line, "%s: argument %d must be a %s, got %s.", c.sig, i+1, want, args[i].Kind())
}

func builtinPrint(c *callContext, args []Value) (Value, *RuntimeError) {
	_, _ = io.WriteString(c.output, args[0].String()+"\n")
	return Nil(), nil
}

func builtinReverse(c *callContext, args []Value) (Value, *RuntimeError) {
	s, ok := args[0].AsString()
	if !ok {
		return Nil(), c.wrongKind(args, 0, StringKind)
	}
	return String(stringx.Reverse(s)), nil
}

func builtinPower(c *callContext, args []Value) (Value, *RuntimeError) {
	nums, err := c.numbers(args)
	if err != nil {
		return Nil(), err
	}
	return Number(math.Pow(nums[0], nums[1])), nil
}

func builtinTotal(c *callContext, args []Value) (Value, *RuntimeError) {
	nums, err := c.numbers(args)
	if err != nil {
		return Nil(), err
	}
	return Number(mathx.Sum(nums...)), nil
}

func builtinSum(c *callContext, args []Value) (Value, *RuntimeError) {
	nums, err := c.numbers(args)
	if err != nil {
		return Nil(), err
	}
	return Number(nums[0] + nums[1]), nil
}

func builtinMerge(_ *callContext, args []Value) (Value, *RuntimeError) {
	var b strings.Builder
	for _, arg := range args {
		b.WriteString(arg.String())
	}
	return String(b.String()), nil
}

func aggregate(fn func(...float64) (float64, error)) func(*callContext, []Value) (Value, *RuntimeError) {
	return func(c *callContext, args []Value) (Value, *RuntimeError) {
		nums, err := c.numbers(args)
		if err != nil {
			return Nil(), err
		}
		v, aggErr := fn(nums...)
		if aggErr != nil {
			// arity is checked first, so only reachable with a broken table
			return Nil(), newError(ArgumentError, c.line, "%s: %v", c.sig, aggErr)
		}
		return Number(v), nil
	}
}

func rounding(fn func(float64) float64) func(*callContext, []Value) (Value, *RuntimeError) {
	return func(c *callContext, args []Value) (Value, *RuntimeError) {
		n, err := c.number(args, 0)
		if err != nil {
			return Nil(), err
		}
		return Number(fn(n)), nil
	}
}
