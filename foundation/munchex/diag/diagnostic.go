// File: diagnostic.go
// Title: Located Diagnostics
// Description: The single diagnostic type reported by the lexer and the
//              parser, its closed category set and its conversions.
// Author: Munch42
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package diag

import (
	"fmt"
	"strings"

	mxerror "github.com/Munch42/MunchEx/foundation/core/error"
)

// Category classifies a diagnostic
type Category int

const (
	// CategoryIllegalChar is reported by the lexer for an unknown character
	CategoryIllegalChar Category = iota

	// CategoryInvalidSyntax is reported by the parser for a misplaced token
	CategoryInvalidSyntax

	// CategoryInvalidNumber is reported by the lexer for an integer literal
	// that does not fit in 64 bits
	CategoryInvalidNumber
)

// String returns the display name of the category
func (c Category) String() string {
	switch c {
	case CategoryIllegalChar:
		return "Illegal Character"
	case CategoryInvalidSyntax:
		return "Invalid Syntax"
	case CategoryInvalidNumber:
		return "Invalid Number"
	default:
		return "Unknown Error"
	}
}

// Code maps the category to a structured error code
func (c Category) Code() mxerror.Code {
	switch c {
	case CategoryIllegalChar:
		return mxerror.CodeIllegalCharacter
	case CategoryInvalidSyntax:
		return mxerror.CodeInvalidSyntax
	case CategoryInvalidNumber:
		return mxerror.CodeInvalidNumber
	default:
		return mxerror.CodeUnknown
	}
}

// Stage returns the pipeline stage that reports this category
func (c Category) Stage() string {
	if c == CategoryInvalidSyntax {
		return "parse"
	}
	return "lex"
}

// Diagnostic reports rejected input over the span [Start, End)
type Diagnostic struct {
	Start    Position
	End      Position
	Category Category
	Details  string
}

// New creates a diagnostic. The positions are copied.
func New(start, end Position, category Category, details string) *Diagnostic {
	return &Diagnostic{
		Start:    start,
		End:      end,
		Category: category,
		Details:  details,
	}
}

// NewIllegalCharError reports a character the lexer does not recognise
func NewIllegalCharError(start, end Position, details string) *Diagnostic {
	return New(start, end, CategoryIllegalChar, details)
}

// NewInvalidSyntaxError reports a token the grammar does not permit
func NewInvalidSyntaxError(start, end Position, details string) *Diagnostic {
	return New(start, end, CategoryInvalidSyntax, details)
}

// NewInvalidNumberError reports a numeric literal that cannot be represented
func NewInvalidNumberError(start, end Position, details string) *Diagnostic {
	return New(start, end, CategoryInvalidNumber, details)
}

// Error implements the error interface with a single line
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s (%s)", d.Category, d.Details, d.Start)
}

// AsString renders the full diagnostic block with the caret excerpt
func (d *Diagnostic) AsString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", d.Category, d.Details)
	fmt.Fprintf(&b, "File %s, line %d", d.Start.SourceName, d.Start.Line+1)
	b.WriteString("\n\n")
	b.WriteString(ArrowString(d.Start.Text, d.Start, d.End))
	return b.String()
}

// Code returns the structured error code of the diagnostic
func (d *Diagnostic) Code() mxerror.Code {
	return d.Category.Code()
}

// AsError converts the diagnostic into a structured error carrying the span
func (d *Diagnostic) AsError() *mxerror.Error {
	return mxerror.New(d.Details).
		WithCode(d.Code()).
		WithOperation(d.Category.Stage()).
		WithDetails(map[string]interface{}{
			"category":   d.Category.String(),
			"source":     d.Start.SourceName,
			"line":       d.Start.Line + 1,
			"column":     d.Start.Column + 1,
			"end_line":   d.End.Line + 1,
			"end_column": d.End.Column + 1,
		})
}
