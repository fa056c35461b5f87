// File: doc.go
// Title: MunchEx Package Documentation
// Description: Entry point of the MunchEx arithmetic language front end.
// Author: Munch42
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

/*
Package munchex converts MunchEx source text into a syntax tree.

	node, diag := munchex.Run("<stdin>", "3 + 4 * 2")
	if diag != nil {
		fmt.Println(diag.AsString())
		return
	}
	fmt.Println(node) // (INT:3, PLUS, (INT:4, MUL, INT:2))

An Engine adds logging, an input length limit and per-run statistics:

	engine := munchex.NewEngine(munchex.Options{Logger: logger})
	result, err := engine.Process(ctx, "<stdin>", text)

Every run gets a fresh lexer, parser and tree, so one Engine can serve
concurrent callers. Each run is logged under its own run id.

Subpackages:

  - diag: positions and diagnostics
  - ast: tokens, nodes and visitors
  - parser: lexer and recursive descent parser
*/
package munchex
