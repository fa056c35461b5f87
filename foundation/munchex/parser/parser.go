// File: parser.go
// Title: MunchEx Recursive Descent Parser
// Description: Builds a syntax tree from a token slice using one token of
//              lookahead and a three level precedence grammar.
// Author: Munch42
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial parser implementation

package parser

import (
	mxlog "github.com/Munch42/MunchEx/foundation/core/log"
	mxast "github.com/Munch42/MunchEx/foundation/munchex/ast"
	mxdiag "github.com/Munch42/MunchEx/foundation/munchex/diag"
)

const (
	msgExpectedNumber   = "Expected int or float"
	msgExpectedOperator = "Expected '+', '-', '*' or '/'"
)

// Parser implements recursive descent parsing for MunchEx. A Parser is
// used for a single Parse call.
type Parser struct {
	tokens  []mxast.Token
	index   int
	current mxast.Token
	atEnd   bool
	end     mxdiag.Position
	logger  *mxlog.Logger
}

// rule is one grammar production
type rule func() (mxast.Node, *mxdiag.Diagnostic)

// NewParser creates a parser over tokens. end is the position after the
// last source character and locates "unexpected end of input" diagnostics.
func NewParser(tokens []mxast.Token, end mxdiag.Position) *Parser {
	p := &Parser{
		tokens: tokens,
		index:  -1,
		end:    end,
	}
	p.advance()
	return p
}

// WithLogger enables trace logging of grammar decisions
func (p *Parser) WithLogger(logger *mxlog.Logger) *Parser {
	if logger != nil {
		p.logger = logger.WithField("component", "munchex-parser")
	}
	return p
}

// advance moves the cursor; past the last token atEnd is set
func (p *Parser) advance() {
	p.index++
	if p.index < len(p.tokens) {
		p.current = p.tokens[p.index]
		p.atEnd = false
	} else {
		p.current = mxast.Token{}
		p.atEnd = true
	}
}

// Parse parses the whole token slice as one expression
func (p *Parser) Parse() (mxast.Node, *mxdiag.Diagnostic) {
	node, diag := p.expression()
	if diag != nil {
		return nil, diag
	}

	if !p.atEnd {
		p.trace("trailing token", mxlog.Fields{"token": p.current.String()})
		return nil, mxdiag.NewInvalidSyntaxError(p.current.Start, p.current.End, msgExpectedOperator)
	}

	return node, nil
}

// expression := term ( (PLUS|MINUS) term )*
func (p *Parser) expression() (mxast.Node, *mxdiag.Diagnostic) {
	return p.binaryOperation(p.term, mxast.KindPlus, mxast.KindMinus)
}

// term := factor ( (MUL|DIV) factor )*
func (p *Parser) term() (mxast.Node, *mxdiag.Diagnostic) {
	return p.binaryOperation(p.factor, mxast.KindMul, mxast.KindDiv)
}

// factor := INT | FLOAT
func (p *Parser) factor() (mxast.Node, *mxdiag.Diagnostic) {
	if p.atEnd {
		return nil, mxdiag.NewInvalidSyntaxError(p.end, p.end, msgExpectedNumber)
	}

	tok := p.current
	if !tok.Kind.IsLiteral() {
		p.trace("expected number", mxlog.Fields{"token": tok.String()})
		return nil, mxdiag.NewInvalidSyntaxError(tok.Start, tok.End, msgExpectedNumber)
	}

	p.advance()
	return mxast.NewNumberNode(tok), nil
}

// binaryOperation folds operand (op operand)* to the left
func (p *Parser) binaryOperation(operand rule, ops ...mxast.Kind) (mxast.Node, *mxdiag.Diagnostic) {
	left, diag := operand()
	if diag != nil {
		return nil, diag
	}

	for !p.atEnd && p.current.Matches(ops...) {
		op := p.current
		p.advance()

		right, diag := operand()
		if diag != nil {
			return nil, diag
		}

		left = mxast.NewBinOpNode(left, op, right)
		p.trace("binary operation", mxlog.Fields{"operator": op.String()})
	}

	return left, nil
}

func (p *Parser) trace(message string, fields mxlog.Fields) {
	if p.logger != nil && p.logger.IsLevelEnabled(mxlog.LevelTrace) {
		p.logger.Trace(message, fields)
	}
}
