// File: position.go
// Title: Source Position Tracker
// Description: Cursor over the source text tracking character index, line
//              and column.
// Author: Munch42
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package diag

import "fmt"

// Position is a location in a source text. Index counts characters (runes)
// and is -1 before the first advance. Line and Column are zero-based.
type Position struct {
	Index      int
	Line       int
	Column     int
	SourceName string
	Text       string
}

// NewPosition creates a position
func NewPosition(index, line, column int, sourceName, text string) *Position {
	return &Position{
		Index:      index,
		Line:       line,
		Column:     column,
		SourceName: sourceName,
		Text:       text,
	}
}

// Advance moves past current. A newline starts the next line at column 0.
func (p *Position) Advance(current rune) *Position {
	p.Index++
	p.Column++

	if current == '\n' {
		p.Line++
		p.Column = 0
	}

	return p
}

// Copy returns an independent snapshot of the position
func (p *Position) Copy() Position {
	return *p
}

// String returns name:line:column with a 1-based line and column
func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.SourceName, p.Line+1, p.Column+1)
}
