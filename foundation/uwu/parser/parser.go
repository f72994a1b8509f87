// File: parser.go
// Title: uwu Recursive Descent Parser
// Description: Converts a token sequence into one expression tree per
//              top-level statement using recursive descent with one function
//              per precedence level. A malformed statement yields an error
//              result and the parser resumes at the next line.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation
// - 2026-10-19 v0.1.1: Call arguments end at a line break

package parser

import (
	"fmt"

	mdwlog "github.com/msto63/uwu/foundation/core/log"
	"github.com/msto63/uwu/foundation/uwu/ast"
	"github.com/msto63/uwu/foundation/uwu/lexer"
	"github.com/msto63/uwu/foundation/uwu/result"
)

// ExprResult is one item of the parser output
type ExprResult = result.Result[ast.Expr, *Error]

// Options configures parser behavior
type Options struct {
	Logger *mdwlog.Logger
}

// Parser implements recursive descent parsing for uwu
type Parser struct {
	logger *mdwlog.Logger

	tokens []lexer.Token
	pos    int
}

// New creates a parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Parser{
		logger: opts.Logger.WithField("component", "uwu-parser"),
	}
}

// Parse parses tokens with a default parser
func Parse(tokens []lexer.Token) []ExprResult {
	return New(Options{}).Parse(tokens)
}

// Parse returns one result per top-level statement. Statements are
// separated by Eol tokens; blank lines produce nothing.
func (p *Parser) Parse(tokens []lexer.Token) []ExprResult {
	p.tokens = tokens
	p.pos = 0

	var results []ExprResult
	failed := 0
	for !p.atEnd() {
		if p.match(lexer.Eol) {
			continue
		}

		start := p.pos
		expr, err := p.statement()
		if err != nil {
			results = append(results, result.Err[ast.Expr](err))
			failed++
			p.synchronize(start)
			continue
		}
		results = append(results, result.Ok[ast.Expr, *Error](expr))
	}

	p.logger.Debug("Tokens parsed", mdwlog.Fields{
		"tokens":     len(tokens),
		"statements": len(results),
		"errors":     failed,
	})

	p.tokens = nil
	return results
}

func (p *Parser) statement() (ast.Expr, *Error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.atEnd() || p.match(lexer.Eol) {
		return expr, nil
	}
	return nil, p.errorAtCurrent("Expect end of line after expression")
}

// synchronize skips to the end of the line the failed statement ends on.
// Braces opened since start are balanced first, so a broken statement inside
// a block does not leave a dangling '}' behind.
func (p *Parser) synchronize(start int) {
	depth := 0
	for _, tok := range p.tokens[start:p.pos] {
		depth += braceDelta(tok)
	}

	for !p.atEnd() {
		tok := p.advance()
		if tok.Kind == lexer.Eol && depth <= 0 {
			return
		}
		depth += braceDelta(tok)
	}
}

func braceDelta(tok lexer.Token) int {
	switch tok.Kind {
	case lexer.LeftBrace:
		return 1
	case lexer.RightBrace:
		return -1
	}
	return 0
}

func (p *Parser) expression() (ast.Expr, *Error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expr, *Error) {
	expr, err := p.logicOr()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.Equals) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if id, ok := expr.(*ast.Identifier); ok {
			return &ast.Assignment{Name: id.Name, Value: value, SrcLine: id.SrcLine}, nil
		}
		return nil, &Error{Line: equals.Line, Token: equals, Message: "Invalid assignment target."}
	}
	return expr, nil
}

func (p *Parser) logicOr() (ast.Expr, *Error) {
	return p.binaryKeyword(p.logicAnd, lexer.KeywordOr)
}

func (p *Parser) logicAnd() (ast.Expr, *Error) {
	return p.binaryKeyword(p.equality, lexer.KeywordAnd)
}

func (p *Parser) equality() (ast.Expr, *Error) {
	return p.binary(p.comparison, lexer.DoubleEquals, lexer.BangEquals)
}

func (p *Parser) comparison() (ast.Expr, *Error) {
	return p.binary(p.term, lexer.Greater, lexer.GreaterEquals, lexer.Less, lexer.LessEquals)
}

func (p *Parser) term() (ast.Expr, *Error) {
	return p.binary(p.factor, lexer.Plus, lexer.Minus)
}

func (p *Parser) factor() (ast.Expr, *Error) {
	return p.binary(p.unary, lexer.Star, lexer.Slash)
}

// binary parses a left-associative level whose operators are token kinds
func (p *Parser) binary(operand func() (ast.Expr, *Error), kinds ...lexer.TokenKind) (ast.Expr, *Error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(kinds...) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

// binaryKeyword parses a left-associative level whose operator is a keyword
func (p *Parser) binaryKeyword(operand func() (ast.Expr, *Error), word string) (ast.Expr, *Error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}

	for p.matchKeyword(word) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, *Error) {
	if p.match(lexer.Bang, lexer.Minus) || p.matchKeyword(lexer.KeywordNot) {
		op := p.previous()
		if p.atExprEnd() {
			return nil, p.errorAtCurrent(fmt.Sprintf("Expect operand after '%s'", op.Lexeme))
		}
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Operand: operand}, nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expr, *Error) {
	if p.atEnd() || p.peek().Kind != lexer.Keyword || !lexer.IsBuiltin(p.peek().Lexeme) {
		return p.primary()
	}

	name := p.advance()
	if err := p.consume(lexer.LeftParenthesis, fmt.Sprintf("Expect '(' after '%s'", name.Lexeme)); err != nil {
		return nil, err
	}

	// Arguments follow each other on one line; only the parentheses may
	// wrap. A line break after an argument ends the list unless ')' follows.
	var args []ast.Expr
	p.skipEols()
	for !p.atEnd() && !p.check(lexer.RightParenthesis) && !p.check(lexer.Eol) {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if i := p.skipEolsFrom(p.pos); i < len(p.tokens) && p.tokens[i].Kind == lexer.RightParenthesis {
		p.pos = i
	}

	if err := p.consume(lexer.RightParenthesis, "Expect ')' after arguments"); err != nil {
		return nil, err
	}
	return &ast.Call{Builtin: name.Lexeme, Args: args, SrcLine: name.Line}, nil
}

func (p *Parser) primary() (ast.Expr, *Error) {
	if p.atEnd() {
		return nil, p.errorAtCurrent("Expect expression")
	}

	tok := p.peek()
	switch tok.Kind {
	case lexer.Number, lexer.String:
		p.advance()
		return &ast.Literal{Value: tok.Literal, SrcLine: tok.Line}, nil

	case lexer.Identifier:
		p.advance()
		return &ast.Identifier{Name: tok.Lexeme, SrcLine: tok.Line}, nil

	case lexer.LeftParenthesis:
		p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.consume(lexer.RightParenthesis, "Expect ')' after expression"); err != nil {
			return nil, err
		}
		return &ast.Grouping{Inner: inner, SrcLine: tok.Line}, nil

	case lexer.LeftBrace:
		p.advance()
		block, err := p.block(tok)
		if err != nil {
			return nil, err
		}
		return block, nil

	case lexer.RightParenthesis, lexer.RightBrace:
		return nil, &Error{Line: tok.Line, Token: tok, Message: fmt.Sprintf("Unmatched %s.", tok.Describe())}

	case lexer.Keyword:
		if tok.Literal.Kind != lexer.NoLiteral {
			p.advance()
			return &ast.Literal{Value: tok.Literal, SrcLine: tok.Line}, nil
		}
		if tok.Lexeme == lexer.KeywordIf {
			p.advance()
			return p.conditional(tok)
		}
		if tok.Lexeme == lexer.KeywordElse {
			return nil, &Error{Line: tok.Line, Token: tok, Message: "Unexpected 'sino' without 'si'."}
		}
	}

	return nil, p.errorAtCurrent("Expect expression")
}

// block parses the statements after an opening brace up to the closing one
func (p *Parser) block(open lexer.Token) (*ast.Block, *Error) {
	block := &ast.Block{SrcLine: open.Line}

	for {
		p.skipEols()
		if p.atEnd() || p.check(lexer.RightBrace) {
			break
		}

		stmt, err := p.expression()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)

		if !p.atEnd() && !p.check(lexer.RightBrace) && !p.match(lexer.Eol) {
			return nil, p.errorAtCurrent("Expect end of line or '}' after statement")
		}
	}

	if err := p.consume(lexer.RightBrace, "Expect '}' after block"); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) conditional(si lexer.Token) (ast.Expr, *Error) {
	if err := p.consume(lexer.LeftParenthesis, "Expect '(' after 'si'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.consume(lexer.RightParenthesis, "Expect ')' after condition"); err != nil {
		return nil, err
	}

	then, err := p.braceBlock("Expect '{' after condition")
	if err != nil {
		return nil, err
	}
	node := &ast.Conditional{Condition: cond, Then: then, SrcLine: si.Line}

	if !p.matchElse() {
		return node, nil
	}
	if p.matchKeyword(lexer.KeywordIf) {
		elseIf, err := p.conditional(p.previous())
		if err != nil {
			return nil, err
		}
		node.Else = elseIf
		return node, nil
	}

	elseBlock, err := p.braceBlock("Expect '{' after 'sino'")
	if err != nil {
		return nil, err
	}
	node.Else = elseBlock
	return node, nil
}

func (p *Parser) braceBlock(message string) (*ast.Block, *Error) {
	p.skipEols()
	if err := p.consume(lexer.LeftBrace, message); err != nil {
		return nil, err
	}
	return p.block(p.previous())
}

// matchElse consumes a "sino" keyword, looking past line breaks so the else
// branch may start on the line after the closing brace.
func (p *Parser) matchElse() bool {
	if i := p.skipEolsFrom(p.pos); i < len(p.tokens) && p.tokens[i].IsKeyword(lexer.KeywordElse) {
		p.pos = i + 1
		return true
	}
	return false
}

// skipEolsFrom returns the index of the first non-Eol token at or after i
func (p *Parser) skipEolsFrom(i int) int {
	for i < len(p.tokens) && p.tokens[i].Kind == lexer.Eol {
		i++
	}
	return i
}

func (p *Parser) skipEols() {
	for p.match(lexer.Eol) {
	}
}

func (p *Parser) atExprEnd() bool {
	return p.atEnd() || p.check(lexer.Eol) || p.check(lexer.RightParenthesis) || p.check(lexer.RightBrace)
}

func (p *Parser) consume(kind lexer.TokenKind, message string) *Error {
	if p.check(kind) {
		p.advance()
		return nil
	}
	return p.errorAtCurrent(message)
}

// errorAtCurrent builds an error naming the token the parser stopped at
func (p *Parser) errorAtCurrent(message string) *Error {
	if p.atEnd() {
		line := 0
		if n := len(p.tokens); n > 0 {
			line = p.tokens[n-1].Line
		}
		return &Error{Line: line, AtEnd: true, Message: message + ", got end of input."}
	}
	tok := p.peek()
	return &Error{Line: tok.Line, Token: tok, Message: fmt.Sprintf("%s, got %s.", message, tok.Describe())}
}

func (p *Parser) match(kinds ...lexer.TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) matchKeyword(word string) bool {
	if !p.atEnd() && p.peek().IsKeyword(word) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) check(kind lexer.TokenKind) bool {
	return !p.atEnd() && p.peek().Kind == kind
}

func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.pos-1]
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}
