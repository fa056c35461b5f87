// File: parser_test.go
// Title: MunchEx Parser Unit Tests
// Description: Tests for precedence, associativity and the rejection of
//              input outside the grammar.
// Author: Munch42
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test suite

package parser

import (
	"testing"

	mxast "github.com/Munch42/MunchEx/foundation/munchex/ast"
	mxdiag "github.com/Munch42/MunchEx/foundation/munchex/diag"
)

func parseText(t *testing.T, input string) (mxast.Node, *mxdiag.Diagnostic) {
	t.Helper()
	lexer := NewLexer("<test>", input)
	tokens, diag := lexer.MakeTokens()
	if diag != nil {
		t.Fatalf("lexing %q failed: %v", input, diag)
	}
	return NewParser(tokens, lexer.End()).Parse()
}

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single int", "7", "INT:7"},
		{"single float", "2.5", "FLOAT:2.5"},
		{"addition", "1 + 2", "(INT:1, PLUS, INT:2)"},
		{"precedence", "2 + 3 * 4", "(INT:2, PLUS, (INT:3, MUL, INT:4))"},
		{"precedence first", "2 * 3 + 4", "((INT:2, MUL, INT:3), PLUS, INT:4)"},
		{"left associative minus", "8 - 4 - 2", "((INT:8, MINUS, INT:4), MINUS, INT:2)"},
		{"left associative div", "8 / 4 / 2", "((INT:8, DIV, INT:4), DIV, INT:2)"},
		{"mixed", "1 + 2 * 3 - 4 / 5", "((INT:1, PLUS, (INT:2, MUL, INT:3)), MINUS, (INT:4, DIV, INT:5))"},
		{"scenario", "3 + 4 * 2", "(INT:3, PLUS, (INT:4, MUL, INT:2))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, diag := parseText(t, tt.input)
			if diag != nil {
				t.Fatalf("unexpected diagnostic: %s", diag.AsString())
			}
			if got := node.String(); got != tt.want {
				t.Errorf("Parse() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParser_StructuralShape(t *testing.T) {
	node, diag := parseText(t, "8 - 4 - 2")
	if diag != nil {
		t.Fatalf("unexpected diagnostic: %v", diag)
	}

	root, ok := node.(*mxast.BinOpNode)
	if !ok {
		t.Fatalf("root is %T, want *BinOpNode", node)
	}
	if _, ok := root.Left.(*mxast.BinOpNode); !ok {
		t.Errorf("left child is %T, want *BinOpNode", root.Left)
	}
	if _, ok := root.Right.(*mxast.NumberNode); !ok {
		t.Errorf("right child is %T, want *NumberNode", root.Right)
	}
	if root.Start().Index != 0 || root.End().Index != 9 {
		t.Errorf("root span = [%d,%d), want [0,9)", root.Start().Index, root.End().Index)
	}
}

func TestParser_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantDetails string
		wantStart   int
		wantEnd     int
	}{
		{"empty input", "", msgExpectedNumber, 0, 0},
		{"whitespace only", "   ", msgExpectedNumber, 3, 3},
		{"dangling operator", "1 +", msgExpectedNumber, 3, 3},
		{"leading operator", "* 2", msgExpectedNumber, 0, 1},
		{"double operator", "1 + * 2", msgExpectedNumber, 4, 5},
		{"unary minus", "-1", msgExpectedNumber, 0, 1},
		{"open paren not grouped", "(1 + 2)", msgExpectedNumber, 0, 1},
		{"paren after operator", "2 * (3)", msgExpectedNumber, 4, 5},
		{"stray close paren", "1 + 2)", msgExpectedOperator, 5, 6},
		{"two numbers", "1 2", msgExpectedOperator, 2, 3},
		{"trailing float", "1 * 2 3.5", msgExpectedOperator, 6, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, diag := parseText(t, tt.input)
			if diag == nil {
				t.Fatalf("expected a diagnostic, got %v", node)
			}
			if node != nil {
				t.Errorf("node = %v, want nil with a diagnostic", node)
			}
			if diag.Category != mxdiag.CategoryInvalidSyntax {
				t.Errorf("Category = %v, want Invalid Syntax", diag.Category)
			}
			if diag.Details != tt.wantDetails {
				t.Errorf("Details = %q, want %q", diag.Details, tt.wantDetails)
			}
			if diag.Start.Index != tt.wantStart || diag.End.Index != tt.wantEnd {
				t.Errorf("span = [%d,%d), want [%d,%d)",
					diag.Start.Index, diag.End.Index, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestParser_DiagnosticRendering(t *testing.T) {
	_, diag := parseText(t, "1 + 2)")
	if diag == nil {
		t.Fatal("expected a diagnostic")
	}

	want := "Invalid Syntax: Expected '+', '-', '*' or '/'\n" +
		"File <test>, line 1\n\n" +
		"1 + 2)\n" +
		"     ^"
	if got := diag.AsString(); got != want {
		t.Errorf("AsString() =\n%s\nwant\n%s", got, want)
	}
}

func TestParser_EmptyTokenSlice(t *testing.T) {
	end := mxdiag.Position{Index: 0, SourceName: "<test>"}
	node, diag := NewParser(nil, end).Parse()
	if node != nil || diag == nil {
		t.Fatalf("Parse() = %v, %v; want a diagnostic", node, diag)
	}
	if diag.Start != end {
		t.Errorf("Start = %+v, want the end position", diag.Start)
	}
}

func TestParser_Idempotent(t *testing.T) {
	a, diagA := parseText(t, "1.5 * 2 - 3 / 4")
	b, diagB := parseText(t, "1.5 * 2 - 3 / 4")
	if diagA != nil || diagB != nil {
		t.Fatalf("unexpected diagnostics: %v %v", diagA, diagB)
	}
	if a == b {
		t.Error("separate runs must build separate trees")
	}
	if !mxast.Equal(a, b) {
		t.Errorf("trees differ: %s vs %s", a, b)
	}
}
