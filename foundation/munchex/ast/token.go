// File: token.go
// Title: MunchEx Token Definitions
// Description: Token kinds and token values produced by the lexer.
// Author: Munch42
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial token definitions

package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	mxdiag "github.com/Munch42/MunchEx/foundation/munchex/diag"
)

// Kind is the kind of a lexical token
type Kind int

const (
	// Literals
	KindInt   Kind = iota // 42
	KindFloat             // 4.2

	// Operators
	KindPlus  // +
	KindMinus // -
	KindMul   // *
	KindDiv   // /

	// Delimiters
	KindLParen // (
	KindRParen // )
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "INT"
	case KindFloat:
		return "FLOAT"
	case KindPlus:
		return "PLUS"
	case KindMinus:
		return "MINUS"
	case KindMul:
		return "MUL"
	case KindDiv:
		return "DIV"
	case KindLParen:
		return "LPAREN"
	case KindRParen:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// IsLiteral reports whether tokens of this kind carry a numeric value
func (k Kind) IsLiteral() bool {
	return k == KindInt || k == KindFloat
}

// Symbol returns the source character of an operator or delimiter kind
func (k Kind) Symbol() string {
	switch k {
	case KindPlus:
		return "+"
	case KindMinus:
		return "-"
	case KindMul:
		return "*"
	case KindDiv:
		return "/"
	case KindLParen:
		return "("
	case KindRParen:
		return ")"
	default:
		return ""
	}
}

// KindForSymbol returns the single-character token kind for r
func KindForSymbol(r rune) (Kind, bool) {
	switch r {
	case '+':
		return KindPlus, true
	case '-':
		return KindMinus, true
	case '*':
		return KindMul, true
	case '/':
		return KindDiv, true
	case '(':
		return KindLParen, true
	case ')':
		return KindRParen, true
	default:
		return 0, false
	}
}

// Token is a classified lexeme. Value is int64 for INT, float64 for FLOAT
// and nil otherwise. Start and End span the lexeme for diagnostics.
type Token struct {
	Kind  Kind
	Value interface{}
	Start mxdiag.Position
	End   mxdiag.Position
}

// NewToken creates a token without a value
func NewToken(kind Kind, start, end mxdiag.Position) Token {
	return Token{Kind: kind, Start: start, End: end}
}

// NewIntToken creates an INT token
func NewIntToken(value int64, start, end mxdiag.Position) Token {
	return Token{Kind: KindInt, Value: value, Start: start, End: end}
}

// NewFloatToken creates a FLOAT token
func NewFloatToken(value float64, start, end mxdiag.Position) Token {
	return Token{Kind: KindFloat, Value: value, Start: start, End: end}
}

// Int returns the value of an INT token
func (t Token) Int() (int64, bool) {
	v, ok := t.Value.(int64)
	return v, ok
}

// Float returns the value of a FLOAT token
func (t Token) Float() (float64, bool) {
	v, ok := t.Value.(float64)
	return v, ok
}

// ValueString formats the token value, or "" when there is none.
// Floats always show a decimal point.
func (t Token) ValueString() string {
	switch v := t.Value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		format := byte('f')
		if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
			format = 'g'
		}
		s := strconv.FormatFloat(v, format, -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// String returns KIND:value for literals and KIND otherwise
func (t Token) String() string {
	if t.Value == nil {
		return t.Kind.String()
	}
	return t.Kind.String() + ":" + t.ValueString()
}

// Matches reports whether the token has the given kind
func (t Token) Matches(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// SameAs compares kind and value, ignoring positions
func (t Token) SameAs(other Token) bool {
	return t.Kind == other.Kind && t.Value == other.Value
}
