// File: doc.go
// Title: MunchEx Diagnostics Package Documentation
// Description: Source positions and located diagnostics for the MunchEx
//              lexer and parser.
// Author: Munch42
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

/*
Package diag tracks source positions and reports located diagnostics.

A Position is the cursor the lexer advances one character at a time. When
the lexer or parser rejects input it freezes copies of the relevant
positions into a Diagnostic, which renders as:

	Illegal Character: '&'
	File <stdin>, line 1

	3 & 4
	  ^

Diagnostics carry a closed Category. They implement error, and AsError
converts them into the structured foundation error for logging.
*/
package diag
