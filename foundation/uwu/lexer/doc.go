// File: doc.go
// Title: Lexer Package Documentation
// Description: Package documentation for the uwu tokenizer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

/*
Package lexer turns uwu source text into tokens.

The tokenizer never stops at the first problem. Every token or lexical error
becomes one item of the returned slice, in source order:

	for _, r := range lexer.Scan("x = 1_000.5\n") {
		if tok, ok := r.Value(); ok {
			fmt.Println(tok)
		}
	}

Token listings use the "<KIND> <LEXEME> <LITERAL>" format, errors the
"[line n] Error: message" format. Lines are counted from 0.

Newlines are significant and produce Eol tokens, which the parser uses to
separate statements.
*/
package lexer
