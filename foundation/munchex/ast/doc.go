// File: doc.go
// Title: MunchEx Abstract Syntax Tree Package Documentation
// Description: Tokens and AST nodes of the MunchEx arithmetic language,
//              with visitors for printing and analysis.
// Author: Munch42
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial AST implementation

/*
Package ast defines the tokens and the syntax tree of MunchEx.

A Token is one of eight kinds; INT and FLOAT tokens carry their numeric
value. The tree has exactly two node variants:

  - *NumberNode wraps an INT or FLOAT token
  - *BinOpNode joins a left and a right subtree with an operator token

Node is sealed: no other package can add variants, so a type switch over
the two variants is exhaustive. Trees are built once by the parser and
never mutated.

Visitors:

  - StringVisitor renders the debug form, e.g. (3, PLUS, (4, MUL, 2))
  - TreeVisitor renders an indented tree
  - CountVisitor counts nodes and measures depth
*/
package ast
