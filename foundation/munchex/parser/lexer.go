// File: lexer.go
// Title: MunchEx Lexical Analyzer
// Description: Converts source text into MunchEx tokens while tracking
//              positions for diagnostics. Stops at the first character it
//              does not recognise.
// Author: Munch42
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial lexer implementation

package parser

import (
	"errors"
	"strconv"
	"strings"

	mxlog "github.com/Munch42/MunchEx/foundation/core/log"
	mxast "github.com/Munch42/MunchEx/foundation/munchex/ast"
	mxdiag "github.com/Munch42/MunchEx/foundation/munchex/diag"
)

// Lexer performs lexical analysis of one source text. A Lexer is used for
// a single MakeTokens call.
type Lexer struct {
	sourceName string
	text       []rune
	pos        *mxdiag.Position
	current    rune
	atEnd      bool
	logger     *mxlog.Logger
}

// NewLexer creates a lexer positioned on the first character of text
func NewLexer(sourceName, text string) *Lexer {
	l := &Lexer{
		sourceName: sourceName,
		text:       []rune(text),
		pos:        mxdiag.NewPosition(-1, 0, -1, sourceName, text),
		atEnd:      true,
	}
	l.advance()
	return l
}

// WithLogger enables trace logging of every token
func (l *Lexer) WithLogger(logger *mxlog.Logger) *Lexer {
	if logger != nil {
		l.logger = logger.WithField("component", "munchex-lexer")
	}
	return l
}

// advance moves to the next character. The character being left is passed
// to the position so that newlines update line and column.
func (l *Lexer) advance() {
	l.pos.Advance(l.current)

	if l.pos.Index < len(l.text) {
		l.current = l.text[l.pos.Index]
		l.atEnd = false
	} else {
		l.current = 0
		l.atEnd = true
	}
}

// MakeTokens scans the whole text. On an illegal character it returns the
// tokens scanned so far together with the diagnostic.
func (l *Lexer) MakeTokens() ([]mxast.Token, *mxdiag.Diagnostic) {
	var tokens []mxast.Token

	for !l.atEnd {
		switch {
		case isWhitespace(l.current):
			l.advance()

		case isDigit(l.current):
			tok, diag := l.makeNumber()
			if diag != nil {
				return tokens, diag
			}
			tokens = l.emit(tokens, tok)

		default:
			start := l.pos.Copy()
			kind, ok := mxast.KindForSymbol(l.current)
			if !ok {
				ch := l.current
				l.advance()
				diag := mxdiag.NewIllegalCharError(start, l.pos.Copy(), "'"+string(ch)+"'")
				l.trace("illegal character", mxlog.Fields{"char": string(ch), "index": start.Index})
				return tokens, diag
			}
			l.advance()
			tokens = l.emit(tokens, mxast.NewToken(kind, start, l.pos.Copy()))
		}
	}

	return tokens, nil
}

// End returns the position after the last consumed character
func (l *Lexer) End() mxdiag.Position {
	return l.pos.Copy()
}

// makeNumber consumes digits and at most one decimal point. A second point
// ends the literal and is left for the next round.
func (l *Lexer) makeNumber() (mxast.Token, *mxdiag.Diagnostic) {
	start := l.pos.Copy()

	var b strings.Builder
	dots := 0

	for !l.atEnd && (isDigit(l.current) || l.current == '.') {
		if l.current == '.' {
			if dots == 1 {
				break
			}
			dots++
		}
		b.WriteRune(l.current)
		l.advance()
	}

	end := l.pos.Copy()
	lexeme := b.String()

	if dots == 0 {
		value, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			return mxast.Token{}, mxdiag.NewInvalidNumberError(start, end,
				"integer literal "+lexeme+" does not fit in 64 bits")
		}
		return mxast.NewIntToken(value, start, end), nil
	}

	// Out of range floats become ±Inf.
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return mxast.Token{}, mxdiag.NewInvalidNumberError(start, end,
			"malformed float literal "+lexeme)
	}
	return mxast.NewFloatToken(value, start, end), nil
}

func (l *Lexer) emit(tokens []mxast.Token, tok mxast.Token) []mxast.Token {
	l.trace("token", mxlog.Fields{"token": tok.String(), "index": tok.Start.Index})
	return append(tokens, tok)
}

func (l *Lexer) trace(message string, fields mxlog.Fields) {
	if l.logger != nil && l.logger.IsLevelEnabled(mxlog.LevelTrace) {
		l.logger.Trace(message, fields)
	}
}

// TokenizeInput lexes text in one call
func TokenizeInput(sourceName, text string) ([]mxast.Token, *mxdiag.Diagnostic) {
	return NewLexer(sourceName, text).MakeTokens()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t'
}
