// File: doc.go
// Title: MunchEx Parser Package Documentation
// Description: Lexer and recursive descent parser of the MunchEx
//              arithmetic language.
// Author: Munch42
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial parser implementation

/*
Package parser turns MunchEx source text into a syntax tree.

The Lexer produces the complete token slice first; the Parser then applies
the grammar with one token of lookahead:

	expression := term ( (PLUS|MINUS) term )*
	term       := factor ( (MUL|DIV) factor )*
	factor     := INT | FLOAT

Operators of equal precedence associate to the left. Both stages stop at
the first problem and report it as a *diag.Diagnostic.

Parentheses are tokens but not part of the grammar: "(" where a number is
expected is rejected with "Expected int or float", and a ")" after a
complete expression is a trailing token. Any token left over after the
expression is rejected with "Expected '+', '-', '*' or '/'".

Only space and tab are whitespace. A newline is an illegal character.
*/
package parser
