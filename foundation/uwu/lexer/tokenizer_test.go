// File: tokenizer_test.go
// Title: Tokenizer Tests
// Description: Tests for scanning, literal values, keyword classification
//              and lexical error recovery.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial tests

package lexer

import (
	"bytes"
	"strings"
	"testing"

	mdwlog "github.com/msto63/uwu/foundation/core/log"
	"github.com/msto63/uwu/foundation/uwu/result"
)

func kinds(t *testing.T, rs []TokenResult) []TokenKind {
	t.Helper()
	out := make([]TokenKind, 0, len(rs))
	for i, r := range rs {
		tok, ok := r.Value()
		if !ok {
			e, _ := r.Err()
			t.Fatalf("item %d is an error: %v", i, e)
		}
		out = append(out, tok.Kind)
	}
	return out
}

func equalKinds(a, b []TokenKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScan_Kinds(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []TokenKind
	}{
		{"arithmetic", "1 + 2 * 3", []TokenKind{Number, Plus, Number, Star, Number, Eol}},
		{"punctuation", "(){}", []TokenKind{LeftParenthesis, RightParenthesis, LeftBrace, RightBrace, Eol}},
		{"single operators", "! = > < - /", []TokenKind{Bang, Equals, Greater, Less, Minus, Slash, Eol}},
		{"double operators", "!= == >= <=", []TokenKind{BangEquals, DoubleEquals, GreaterEquals, LessEquals, Eol}},
		{"maximal munch", "a==b", []TokenKind{Identifier, DoubleEquals, Identifier, Eol}},
		{"assignment", "x = 3\n", []TokenKind{Identifier, Equals, Number, Eol}},
		{"string", `"hola"`, []TokenKind{String, Eol}},
		{"keywords", "si sino y o no", []TokenKind{Keyword, Keyword, Keyword, Keyword, Keyword, Eol}},
		{"builtin call", `impwimir("x")`, []TokenKind{Keyword, LeftParenthesis, String, RightParenthesis, Eol}},
		{"comment keeps newline", "1 // uno\n2\n", []TokenKind{Number, Eol, Number, Eol}},
		{"empty source", "", []TokenKind{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(t, Scan(tt.source))
			if !equalKinds(got, tt.want) {
				t.Errorf("Scan(%q) kinds = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestScan_Numbers(t *testing.T) {
	tests := []struct {
		source string
		want   float64
	}{
		{"0", 0},
		{"42", 42},
		{"3.25", 3.25},
		{"1_000.5", 1000.5},
		{"1_000_000", 1000000},
		{"12_3.4_5", 123.45},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			rs := Scan(tt.source)
			tok, ok := rs[0].Value()
			if !ok || tok.Kind != Number {
				t.Fatalf("Scan(%q)[0] = %v, want a number", tt.source, rs[0])
			}
			if tok.Literal.Num != tt.want {
				t.Errorf("Scan(%q) value = %v, want %v", tt.source, tok.Literal.Num, tt.want)
			}
			if tok.Lexeme != tt.source {
				t.Errorf("Scan(%q) lexeme = %q, want %q", tt.source, tok.Lexeme, tt.source)
			}
		})
	}
}

func TestScan_TrailingDot(t *testing.T) {
	// "1." is a number followed by an unexpected character
	rs := Scan("1.")
	tok, ok := rs[0].Value()
	if !ok || tok.Lexeme != "1" {
		t.Fatalf("Scan(\"1.\")[0] = %v, want number 1", tok)
	}
	e, isErr := rs[1].Err()
	if !isErr {
		t.Fatalf("Scan(\"1.\")[1] should be an error")
	}
	if e.Message != "Unexpected character: ." {
		t.Errorf("error message = %q, want %q", e.Message, "Unexpected character: .")
	}
}

func TestScan_SecondDotEndsNumber(t *testing.T) {
	rs := Scan("1.2.3")
	first, _ := rs[0].Value()
	if first.Literal.Num != 1.2 {
		t.Errorf("first number = %v, want 1.2", first.Literal.Num)
	}
	if rs[1].IsOk() {
		t.Errorf("second item should be an error for the stray dot")
	}
	second, _ := rs[2].Value()
	if second.Literal.Num != 3 {
		t.Errorf("second number = %v, want 3", second.Literal.Num)
	}
}

func TestScan_ValueKeywords(t *testing.T) {
	tests := []struct {
		source string
		want   Literal
	}{
		{"chi", BoolLit(true)},
		{"ño", BoolLit(false)},
		{"nya", NilLit()},
		{"si", Literal{}},
		{"TwTSuma", Literal{}},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tok, _ := Scan(tt.source)[0].Value()
			if tok.Kind != Keyword {
				t.Fatalf("Scan(%q) kind = %v, want KEYWORD", tt.source, tok.Kind)
			}
			if tok.Literal != tt.want {
				t.Errorf("Scan(%q) literal = %+v, want %+v", tt.source, tok.Literal, tt.want)
			}
		})
	}
}

func TestScan_Identifiers(t *testing.T) {
	for _, word := range []string{"x", "_tmp", "valor2", "año", "sinO", "yy"} {
		t.Run(word, func(t *testing.T) {
			tok, _ := Scan(word)[0].Value()
			if tok.Kind != Identifier || tok.Lexeme != word {
				t.Errorf("Scan(%q)[0] = %v, want identifier %s", word, tok, word)
			}
		})
	}
}

func TestScan_OnlyWhitespaceAndComments(t *testing.T) {
	sources := []string{
		"   \t  ",
		"\n\n\n",
		"// solo un comentario",
		"  // a\n\t// b\n\n",
	}

	for _, source := range sources {
		rs := Scan(source)
		if !result.AllOk(rs) {
			t.Errorf("Scan(%q) produced errors: %v", source, result.Errors(rs))
		}
		for _, tok := range result.Values(rs) {
			if tok.Kind != Eol {
				t.Errorf("Scan(%q) produced %v, want only EOL tokens", source, tok)
			}
		}
	}
}

func TestScan_LineNumbers(t *testing.T) {
	rs := Scan("a\n// c\nb\n\"x\ny\" c\n")
	var lines = map[string]int{}
	for _, tok := range result.Values(rs) {
		if tok.Kind != Eol {
			lines[tok.Lexeme] = tok.Line
		}
	}

	want := map[string]int{"a": 0, "b": 2, "\"x\ny\"": 3, "c": 4}
	for lexeme, line := range want {
		if lines[lexeme] != line {
			t.Errorf("line of %q = %d, want %d", lexeme, lines[lexeme], line)
		}
	}
}

func TestScan_UnterminatedString(t *testing.T) {
	source := "x = 1\ny = \"sin cerrar\nz = 2\n"
	rs := Scan(source)

	errs := result.Errors(rs)
	if len(errs) != 1 {
		t.Fatalf("Scan() errors = %d, want 1", len(errs))
	}
	if errs[0].Message != MsgUnterminatedString {
		t.Errorf("error message = %q, want %q", errs[0].Message, MsgUnterminatedString)
	}
	if errs[0].Line != 1 {
		t.Errorf("error line = %d, want 1", errs[0].Line)
	}
	if got := errs[0].Error(); got != "[line 1] Error: Unterminated string." {
		t.Errorf("Error() = %q", got)
	}

	last := rs[len(rs)-1]
	if last.IsOk() {
		t.Errorf("scanning should end at the unterminated string")
	}
}

func TestScan_UnexpectedCharacterRecovery(t *testing.T) {
	rs := Scan("1 @ 2 # 3")
	errs := result.Errors(rs)
	if len(errs) != 2 {
		t.Fatalf("Scan() errors = %d, want 2", len(errs))
	}
	if errs[0].Message != "Unexpected character: @" {
		t.Errorf("first error = %q", errs[0].Message)
	}
	if errs[1].Message != "Unexpected character: #" {
		t.Errorf("second error = %q", errs[1].Message)
	}

	var numbers int
	for _, tok := range result.Values(rs) {
		if tok.Kind == Number {
			numbers++
		}
	}
	if numbers != 3 {
		t.Errorf("numbers scanned = %d, want 3", numbers)
	}
}

func TestScan_UnicodeUnexpectedCharacter(t *testing.T) {
	rs := Scan("1 € 2")
	errs := result.Errors(rs)
	if len(errs) != 1 || errs[0].Message != "Unexpected character: €" {
		t.Fatalf("errors = %v, want one for €", errs)
	}
}

func TestScan_TrailingEol(t *testing.T) {
	rs := Scan("1")
	tok, _ := rs[len(rs)-1].Value()
	if tok.Kind != Eol || tok.Lexeme != "" {
		t.Errorf("last token = %+v, want synthetic EOL", tok)
	}

	rs = Scan("1\n")
	if len(rs) != 2 {
		t.Errorf("Scan(\"1\\n\") items = %d, want 2", len(rs))
	}
}

func TestTokenizer_Reuse(t *testing.T) {
	tz := New(Options{Logger: mdwlog.NewNop()})
	first := tz.Scan("a\nb\n")
	second := tz.Scan("c")

	if len(first) != 4 {
		t.Errorf("first scan items = %d, want 4", len(first))
	}
	tok, _ := second[0].Value()
	if tok.Line != 0 || tok.Lexeme != "c" {
		t.Errorf("second scan token = %+v, want c on line 0", tok)
	}
}

func TestTokenizer_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatLogfmt,
		Output: &buf,
	})

	New(Options{Logger: logger}).Scan("1 @\n")

	out := buf.String()
	if !strings.Contains(out, "uwu-lexer") {
		t.Errorf("log output %q does not name the component", out)
	}
	if !strings.Contains(out, "errors=1") {
		t.Errorf("log output %q does not count errors", out)
	}
}
