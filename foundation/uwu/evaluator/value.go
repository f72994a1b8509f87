// File: value.go
// Title: Runtime Values
// Description: The tagged union of runtime values (nil, boolean, number,
//              string) with truthiness, structural equality and the textual
//              form used by impwimir.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package evaluator

import (
	"math"
	"strconv"

	"github.com/msto63/uwu/foundation/uwu/lexer"
	"github.com/msto63/uwu/foundation/utils/mathx"
)

// Kind discriminates the Value variants
type Kind int

const (
	NilKind Kind = iota
	BooleanKind
	NumberKind
	StringKind
)

// String returns the type name used in error messages
func (k Kind) String() string {
	switch k {
	case NilKind:
		return "nil"
	case BooleanKind:
		return "boolean"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a runtime value. The zero Value is nil.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

// Nil returns the nil value
func Nil() Value { return Value{} }

// Bool returns a boolean value
func Bool(b bool) Value { return Value{kind: BooleanKind, b: b} }

// Number returns a number value
func Number(n float64) Value { return Value{kind: NumberKind, num: n} }

// String returns a string value
func String(s string) Value { return Value{kind: StringKind, str: s} }

// FromLiteral converts a token literal into a value
func FromLiteral(lit lexer.Literal) Value {
	switch lit.Kind {
	case lexer.NumberLiteral:
		return Number(lit.Num)
	case lexer.StringLiteral:
		return String(lit.Str)
	case lexer.BoolLiteral:
		return Bool(lit.Bool)
	default:
		return Nil()
	}
}

// Kind returns the variant of v
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is nil
func (v Value) IsNil() bool { return v.kind == NilKind }

// AsNumber returns the number held by v
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == NumberKind }

// AsString returns the string held by v
func (v Value) AsString() (string, bool) { return v.str, v.kind == StringKind }

// AsBool returns the boolean held by v
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == BooleanKind }

// Truthy reports whether v counts as true in a condition. Only nil and
// false are falsy; 0 and "" are truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case NilKind:
		return false
	case BooleanKind:
		return v.b
	default:
		return true
	}
}

// Equal compares structurally. Values of different kinds are never equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case NilKind:
		return true
	case BooleanKind:
		return v.b == other.b
	case NumberKind:
		return v.num == other.num
	default:
		return v.str == other.str
	}
}

// String renders v the way impwimir prints it
func (v Value) String() string {
	switch v.kind {
	case NilKind:
		return lexer.KeywordNil
	case BooleanKind:
		if v.b {
			return lexer.KeywordTrue
		}
		return lexer.KeywordFalse
	case NumberKind:
		return formatNumber(v.num)
	default:
		return v.str
	}
}

// formatNumber prints integral numbers without a fraction ("7") and others
// in their shortest form ("2.5").
func formatNumber(n float64) string {
	if mathx.IsInteger(n) && math.Abs(n) < 1e21 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
