// File: doc.go
// Title: Parser Package Documentation
// Description: Package documentation for the uwu parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

/*
Package parser builds expression trees from uwu tokens.

Grammar, lowest precedence first:

	assignment  = IDENTIFIER "=" assignment | logic_or
	logic_or    = logic_and ( "o" logic_and )*
	logic_and   = equality ( "y" equality )*
	equality    = comparison ( ( "==" | "!=" ) comparison )*
	comparison  = term ( ( ">" | ">=" | "<" | "<=" ) term )*
	term        = factor ( ( "+" | "-" ) factor )*
	factor      = unary ( ( "*" | "/" ) unary )*
	unary       = ( "!" | "-" | "no" ) unary | call
	call        = BUILTIN "(" expression* ")" | primary
	primary     = NUMBER | STRING | "chi" | "ño" | "nya" | IDENTIFIER
	            | "(" expression ")" | block | conditional
	block       = "{" ( expression EOL )* "}"
	conditional = "si" "(" expression ")" block ( "sino" ( block | conditional ) )?

Builtin arguments are written one after the other without separators, for
example TwTSuma(1 2), and stay on one line; only the parentheses may wrap.
An unclosed call is therefore reported on its own line. Every top-level statement produces one result; after a
syntax error the parser skips to the end of the line and continues.
*/
package parser
