// File: nodes.go
// Title: MunchEx AST Node Definitions
// Description: The two syntax tree variants, structural equality and a
//              pre-order walk.
// Author: Munch42
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"

	mxdiag "github.com/Munch42/MunchEx/foundation/munchex/diag"
)

// Node is a syntax tree node. It is implemented only by *NumberNode and
// *BinOpNode.
type Node interface {
	// String returns the debug form of the subtree
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Start returns the position of the first character of the subtree
	Start() mxdiag.Position

	// End returns the position after the last character of the subtree
	End() mxdiag.Position

	node() // marker method
}

// NumberNode is a leaf wrapping an INT or FLOAT token
type NumberNode struct {
	Token Token
}

// BinOpNode applies Operator to Left and Right
type BinOpNode struct {
	Left     Node
	Operator Token
	Right    Node
}

// NewNumberNode creates a leaf node
func NewNumberNode(tok Token) *NumberNode {
	return &NumberNode{Token: tok}
}

// NewBinOpNode creates a binary operation node
func NewBinOpNode(left Node, op Token, right Node) *BinOpNode {
	return &BinOpNode{Left: left, Operator: op, Right: right}
}

func (*NumberNode) node() {}
func (*BinOpNode) node()  {}

// String returns the token form, e.g. INT:3
func (n *NumberNode) String() string {
	return n.Token.String()
}

// Accept implements the visitor pattern
func (n *NumberNode) Accept(visitor Visitor) interface{} {
	return visitor.VisitNumber(n)
}

// Start returns the start of the literal
func (n *NumberNode) Start() mxdiag.Position { return n.Token.Start }

// End returns the end of the literal
func (n *NumberNode) End() mxdiag.Position { return n.Token.End }

// String returns (left, OP, right)
func (n *BinOpNode) String() string {
	return fmt.Sprintf("(%s, %s, %s)", n.Left, n.Operator, n.Right)
}

// Accept implements the visitor pattern
func (n *BinOpNode) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinOp(n)
}

// Start returns the start of the left operand
func (n *BinOpNode) Start() mxdiag.Position { return n.Left.Start() }

// End returns the end of the right operand
func (n *BinOpNode) End() mxdiag.Position { return n.Right.End() }

// Equal reports whether two trees have the same shape, kinds and values.
// Source positions are ignored.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *NumberNode:
		y, ok := b.(*NumberNode)
		return ok && x.Token.SameAs(y.Token)
	case *BinOpNode:
		y, ok := b.(*BinOpNode)
		return ok &&
			x.Operator.SameAs(y.Operator) &&
			Equal(x.Left, y.Left) &&
			Equal(x.Right, y.Right)
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", a))
	}
}

// Walk calls fn for node and its descendants in pre-order. When fn returns
// false the children of that node are skipped.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *NumberNode:
	case *BinOpNode:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", node))
	}
}
