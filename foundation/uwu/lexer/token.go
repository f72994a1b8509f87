// File: token.go
// Title: uwu Token Definitions
// Description: Token kinds, keyword tables and the Token type produced by the
//              tokenizer. Token kinds form a closed enumeration; keywords and
//              builtin names are fixed by the language.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial token definitions

package lexer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TokenKind identifies the lexical class of a token
type TokenKind int

const (
	Bang TokenKind = iota
	Minus
	Plus
	Slash
	Star
	Equals
	Eol
	Greater
	Less
	BangEquals
	DoubleEquals
	GreaterEquals
	LessEquals
	LeftBrace
	LeftParenthesis
	RightBrace
	RightParenthesis
	Keyword
	Identifier
	Number
	String
)

var tokenKindNames = [...]string{
	Bang:             "BANG",
	Minus:            "MINUS",
	Plus:             "PLUS",
	Slash:            "SLASH",
	Star:             "STAR",
	Equals:           "EQUALS",
	Eol:              "EOL",
	Greater:          "GREATER",
	Less:             "LESS",
	BangEquals:       "BANGEQUALS",
	DoubleEquals:     "DOUBLEEQUALS",
	GreaterEquals:    "GREATEREQUALS",
	LessEquals:       "LESSEQUALS",
	LeftBrace:        "LEFTBRACE",
	LeftParenthesis:  "LEFTPARENTHESIS",
	RightBrace:       "RIGHTBRACE",
	RightParenthesis: "RIGHTPARENTHESIS",
	Keyword:          "KEYWORD",
	Identifier:       "IDENTIFIER",
	Number:           "NUMBER",
	String:           "STRING",
}

// String returns the upper-case kind name used in token listings
func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Control keywords
const (
	KeywordAnd  = "y"
	KeywordOr   = "o"
	KeywordIf   = "si"
	KeywordElse = "sino"
	KeywordNot  = "no"
)

// Value keywords
const (
	KeywordTrue  = "chi"
	KeywordFalse = "ño"
	KeywordNil   = "nya"
)

// Builtin function names
const (
	BuiltinPrint   = "impwimir"
	BuiltinReverse = "UnUReversa"
	BuiltinPower   = "TwTPotencia"
	BuiltinTotal   = "owoValorTotal"
	BuiltinMax     = "UwUMaximo"
	BuiltinMin     = "UnUMinimo"
	BuiltinCeil    = "UwUCima"
	BuiltinFloor   = "UnUSuelo"
	BuiltinMean    = "EwEMedia"
	BuiltinSum     = "TwTSuma"
	BuiltinLoop    = "OwOLazo"
	BuiltinMerge   = "UnUMezcla"
)

var controlKeywords = map[string]bool{
	KeywordAnd:  true,
	KeywordOr:   true,
	KeywordIf:   true,
	KeywordElse: true,
	KeywordNot:  true,
}

var builtinNames = map[string]bool{
	BuiltinPrint:   true,
	BuiltinReverse: true,
	BuiltinPower:   true,
	BuiltinTotal:   true,
	BuiltinMax:     true,
	BuiltinMin:     true,
	BuiltinCeil:    true,
	BuiltinFloor:   true,
	BuiltinMean:    true,
	BuiltinSum:     true,
	BuiltinLoop:    true,
	BuiltinMerge:   true,
}

// IsBuiltin reports whether word names a builtin function
func IsBuiltin(word string) bool {
	return builtinNames[word]
}

// BuiltinNames returns the builtin function names
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinNames))
	for name := range builtinNames {
		names = append(names, name)
	}
	return names
}

// LiteralKind discriminates the Literal variants
type LiteralKind int

const (
	NoLiteral LiteralKind = iota
	NumberLiteral
	StringLiteral
	BoolLiteral
	NilLiteral
)

// Literal is the value a token carries: a number, a string, a boolean, nil,
// or nothing at all for punctuation and control keywords.
type Literal struct {
	Kind LiteralKind
	Num  float64
	Str  string
	Bool bool
}

// NumberLit returns a number literal
func NumberLit(v float64) Literal { return Literal{Kind: NumberLiteral, Num: v} }

// StringLit returns a string literal
func StringLit(s string) Literal { return Literal{Kind: StringLiteral, Str: s} }

// BoolLit returns a boolean literal
func BoolLit(b bool) Literal { return Literal{Kind: BoolLiteral, Bool: b} }

// NilLit returns the nil literal
func NilLit() Literal { return Literal{Kind: NilLiteral} }

// String renders the literal column of a token listing
func (l Literal) String() string {
	switch l.Kind {
	case NumberLiteral:
		return FormatFloat(l.Num)
	case StringLiteral:
		return l.Str
	case BoolLiteral:
		if l.Bool {
			return KeywordTrue
		}
		return KeywordFalse
	case NilLiteral:
		return KeywordNil
	default:
		return "null"
	}
}

// FormatFloat renders a number the way token listings show it: always with
// a fraction ("1.0", "1000.5") and in exponent form for very large or small
// magnitudes.
func FormatFloat(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Token is a single lexical unit. Line is 0-based.
type Token struct {
	Kind    TokenKind
	Lexeme  string
	Literal Literal
	Line    int
}

// String renders the token as "<KIND> <LEXEME> <LITERAL>"
func (t Token) String() string {
	return fmt.Sprintf("%s %s %s", t.Kind, t.Lexeme, t.Literal)
}

// IsKeyword reports whether t is the keyword word
func (t Token) IsKeyword(word string) bool {
	return t.Kind == Keyword && t.Lexeme == word
}

// Describe names the token for diagnostics
func (t Token) Describe() string {
	switch t.Kind {
	case Eol:
		return "end of line"
	case String:
		return fmt.Sprintf("string %q", t.Literal.Str)
	default:
		return fmt.Sprintf("'%s'", t.Lexeme)
	}
}
