// File: arrows.go
// Title: Caret Excerpt Rendering
// Description: Draws the offending source line(s) with a caret marker row
//              under a diagnostic span.
// Author: Munch42
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package diag

import (
	"strings"
)

// ArrowString renders the lines from start.Line to end.Line of text, each
// followed by a row of carets under the span. The first line is marked from
// start.Column, the last line up to end.Column (exclusive). At least one
// caret is drawn per line. Tabs are removed from the output.
func ArrowString(text string, start, end Position) string {
	lines := strings.Split(text, "\n")

	first, last := start.Line, end.Line
	endCol := end.Column

	// A span ending at column 0 of a later line stops at the end of the
	// previous one (the offending character was the newline itself).
	if last > first && endCol == 0 {
		last--
		endCol = -1
	}

	if first < 0 {
		first = 0
	}
	if last >= len(lines) {
		last = len(lines) - 1
	}

	var b strings.Builder
	for i := first; i <= last; i++ {
		line := []rune(lines[i])

		colStart := 0
		if i == first {
			colStart = start.Column
		}
		colEnd := len(line)
		if i == last && endCol >= 0 {
			colEnd = endCol
		}

		if colStart < 0 {
			colStart = 0
		}
		width := colEnd - colStart
		if width < 1 {
			width = 1
		}

		if i > first {
			b.WriteByte('\n')
		}
		b.WriteString(string(line))
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", colStart))
		b.WriteString(strings.Repeat("^", width))
	}

	return strings.ReplaceAll(b.String(), "\t", "")
}
