// File: visitor.go
// Title: MunchEx AST Visitor Pattern Implementation
// Description: Visitor interface plus visitors that print and measure
//              syntax trees.
// Author: Munch42
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitNumber(node *NumberNode) interface{}
	VisitBinOp(node *BinOpNode) interface{}
}

// StringVisitor renders the debug form of a tree
type StringVisitor struct{}

// NewStringVisitor creates a string visitor
func NewStringVisitor() *StringVisitor {
	return &StringVisitor{}
}

// VisitNumber returns the token form
func (sv *StringVisitor) VisitNumber(node *NumberNode) interface{} {
	return node.Token.String()
}

// VisitBinOp returns (left, OP, right)
func (sv *StringVisitor) VisitBinOp(node *BinOpNode) interface{} {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(node.Left.Accept(sv).(string))
	b.WriteString(", ")
	b.WriteString(node.Operator.String())
	b.WriteString(", ")
	b.WriteString(node.Right.Accept(sv).(string))
	b.WriteByte(')')
	return b.String()
}

// String renders node with a StringVisitor
func String(node Node) string {
	if node == nil {
		return ""
	}
	return node.Accept(NewStringVisitor()).(string)
}

// TreeVisitor renders an indented tree, one node per line:
//
//	PLUS
//	├── INT:3
//	└── MUL
//	    ├── INT:4
//	    └── INT:2
type TreeVisitor struct {
	builder strings.Builder
	prefix  string
}

// NewTreeVisitor creates a tree visitor
func NewTreeVisitor() *TreeVisitor {
	return &TreeVisitor{}
}

// VisitNumber writes the literal
func (tv *TreeVisitor) VisitNumber(node *NumberNode) interface{} {
	tv.builder.WriteString(node.Token.String())
	tv.builder.WriteByte('\n')
	return nil
}

// VisitBinOp writes the operator and both operands as children
func (tv *TreeVisitor) VisitBinOp(node *BinOpNode) interface{} {
	tv.builder.WriteString(node.Operator.Kind.String())
	tv.builder.WriteByte('\n')

	parent := tv.prefix

	tv.builder.WriteString(parent + "├── ")
	tv.prefix = parent + "│   "
	node.Left.Accept(tv)

	tv.builder.WriteString(parent + "└── ")
	tv.prefix = parent + "    "
	node.Right.Accept(tv)

	tv.prefix = parent
	return nil
}

// String returns the rendered tree
func (tv *TreeVisitor) String() string {
	return tv.builder.String()
}

// Tree renders node with a fresh TreeVisitor
func Tree(node Node) string {
	if node == nil {
		return ""
	}
	tv := NewTreeVisitor()
	node.Accept(tv)
	return tv.String()
}

// CountVisitor counts nodes and measures the depth of a tree. A single
// literal has depth 1.
type CountVisitor struct {
	Nodes     int
	Operators int
	Depth     int

	current int
}

// NewCountVisitor creates a count visitor
func NewCountVisitor() *CountVisitor {
	return &CountVisitor{}
}

// VisitNumber counts a leaf
func (cv *CountVisitor) VisitNumber(node *NumberNode) interface{} {
	cv.enter()
	cv.current--
	return nil
}

// VisitBinOp counts an operator and descends into both operands
func (cv *CountVisitor) VisitBinOp(node *BinOpNode) interface{} {
	cv.enter()
	cv.Operators++
	node.Left.Accept(cv)
	node.Right.Accept(cv)
	cv.current--
	return nil
}

func (cv *CountVisitor) enter() {
	cv.Nodes++
	cv.current++
	if cv.current > cv.Depth {
		cv.Depth = cv.current
	}
}

// Stats returns the node count and depth of node
func Stats(node Node) (nodes, depth int) {
	if node == nil {
		return 0, 0
	}
	cv := NewCountVisitor()
	node.Accept(cv)
	return cv.Nodes, cv.Depth
}
