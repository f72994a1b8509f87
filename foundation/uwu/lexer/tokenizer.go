// File: tokenizer.go
// Title: uwu Tokenizer
// Description: Scans source text into a flat sequence of token results using
//              character-class dispatch and maximal munch. Lexical errors are
//              emitted in place and scanning continues, so one pass reports
//              every bad character in the source.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial tokenizer implementation

package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	mdwlog "github.com/msto63/uwu/foundation/core/log"
	"github.com/msto63/uwu/foundation/uwu/result"
)

// TokenResult is one item of the tokenizer output
type TokenResult = result.Result[Token, *Error]

// Options configures the tokenizer
type Options struct {
	Logger *mdwlog.Logger
}

// Tokenizer turns source text into tokens. A Tokenizer may be reused; each
// call to Scan starts from a clean state.
type Tokenizer struct {
	logger *mdwlog.Logger

	input   string
	start   int // offset of the token being scanned
	pos     int // offset of the next unread rune
	line    int
	results []TokenResult
}

// New creates a tokenizer with the given options
func New(opts Options) *Tokenizer {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Tokenizer{
		logger: opts.Logger.WithField("component", "uwu-lexer"),
	}
}

// Scan tokenizes source with a default tokenizer
func Scan(source string) []TokenResult {
	return New(Options{}).Scan(source)
}

// Scan tokenizes source. A non-empty source that does not end with a
// newline gets a trailing Eol with an empty lexeme, so the last statement is
// always terminated.
func (t *Tokenizer) Scan(source string) []TokenResult {
	t.input = source
	t.start, t.pos, t.line = 0, 0, 0
	t.results = make([]TokenResult, 0, len(source)/2+1)

	for !t.atEnd() {
		t.start = t.pos
		t.scanToken()
	}

	if source != "" && !strings.HasSuffix(source, "\n") {
		t.results = append(t.results, result.Ok[Token, *Error](Token{Kind: Eol, Line: t.line}))
	}

	errorCount := len(result.Errors(t.results))
	t.logger.Debug("Source scanned", mdwlog.Fields{
		"bytes":  len(source),
		"lines":  t.line + 1,
		"items":  len(t.results),
		"errors": errorCount,
	})

	out := t.results
	t.results = nil
	return out
}

func (t *Tokenizer) scanToken() {
	c := t.advance()

	switch {
	case c == '\n':
		t.addToken(Eol, Literal{})
		t.line++
		return
	case unicode.IsSpace(c):
		return
	case isDigit(c):
		t.number()
		return
	case isIdentStart(c):
		t.identifier()
		return
	}

	switch c {
	case '(':
		t.addToken(LeftParenthesis, Literal{})
	case ')':
		t.addToken(RightParenthesis, Literal{})
	case '{':
		t.addToken(LeftBrace, Literal{})
	case '}':
		t.addToken(RightBrace, Literal{})
	case '+':
		t.addToken(Plus, Literal{})
	case '-':
		t.addToken(Minus, Literal{})
	case '*':
		t.addToken(Star, Literal{})
	case '/':
		if t.peek() == '/' {
			// The newline stays in the input so it still terminates the statement.
			for !t.atEnd() && t.peek() != '\n' {
				t.advance()
			}
			return
		}
		t.addToken(Slash, Literal{})
	case '!':
		t.addContinuation(Bang, BangEquals)
	case '=':
		t.addContinuation(Equals, DoubleEquals)
	case '>':
		t.addContinuation(Greater, GreaterEquals)
	case '<':
		t.addContinuation(Less, LessEquals)
	case '"':
		t.str()
	default:
		t.addError(fmt.Sprintf(msgUnexpectedChar, c))
	}
}

func (t *Tokenizer) addContinuation(single, double TokenKind) {
	if t.peek() == '=' {
		t.advance()
		t.addToken(double, Literal{})
		return
	}
	t.addToken(single, Literal{})
}

func (t *Tokenizer) number() {
	t.digits()
	if t.peek() == '.' && isDigit(t.peekNext()) {
		t.advance()
		t.digits()
	}

	lexeme := t.input[t.start:t.pos]
	value, err := strconv.ParseFloat(strings.ReplaceAll(lexeme, "_", ""), 64)
	if err != nil {
		t.addError(fmt.Sprintf(msgInvalidNumber, lexeme))
		return
	}
	t.addToken(Number, NumberLit(value))
}

func (t *Tokenizer) digits() {
	for isDigit(t.peek()) || t.peek() == '_' {
		t.advance()
	}
}

func (t *Tokenizer) identifier() {
	for isIdentPart(t.peek()) {
		t.advance()
	}

	word := t.input[t.start:t.pos]
	switch {
	case controlKeywords[word], builtinNames[word]:
		t.addToken(Keyword, Literal{})
	case word == KeywordTrue:
		t.addToken(Keyword, BoolLit(true))
	case word == KeywordFalse:
		t.addToken(Keyword, BoolLit(false))
	case word == KeywordNil:
		t.addToken(Keyword, NilLit())
	default:
		t.addToken(Identifier, Literal{})
	}
}

func (t *Tokenizer) str() {
	startLine := t.line
	end := strings.IndexByte(t.input[t.pos:], '"')
	if end < 0 {
		t.results = append(t.results, result.Err[Token](&Error{Line: startLine, Message: MsgUnterminatedString}))
		t.pos = len(t.input)
		return
	}

	content := t.input[t.pos : t.pos+end]
	t.pos += end + 1
	t.results = append(t.results, result.Ok[Token, *Error](Token{
		Kind:    String,
		Lexeme:  t.input[t.start:t.pos],
		Literal: StringLit(content),
		Line:    startLine,
	}))
	t.line += strings.Count(content, "\n")
}

func (t *Tokenizer) addToken(kind TokenKind, lit Literal) {
	t.results = append(t.results, result.Ok[Token, *Error](Token{
		Kind:    kind,
		Lexeme:  t.input[t.start:t.pos],
		Literal: lit,
		Line:    t.line,
	}))
}

func (t *Tokenizer) addError(message string) {
	t.results = append(t.results, result.Err[Token](&Error{Line: t.line, Message: message}))
}

func (t *Tokenizer) atEnd() bool {
	return t.pos >= len(t.input)
}

func (t *Tokenizer) advance() rune {
	r, size := utf8.DecodeRuneInString(t.input[t.pos:])
	t.pos += size
	return r
}

func (t *Tokenizer) peek() rune {
	if t.atEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.input[t.pos:])
	return r
}

func (t *Tokenizer) peekNext() rune {
	if t.atEnd() {
		return 0
	}
	_, size := utf8.DecodeRuneInString(t.input[t.pos:])
	if t.pos+size >= len(t.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.input[t.pos+size:])
	return r
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
