package render

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	mxerror "github.com/Munch42/MunchEx/foundation/core/error"
	"github.com/Munch42/MunchEx/foundation/munchex"
	mxast "github.com/Munch42/MunchEx/foundation/munchex/ast"
	mxdiag "github.com/Munch42/MunchEx/foundation/munchex/diag"
)

func mustParse(t *testing.T, input string) mxast.Node {
	t.Helper()
	node, diag := munchex.Run("<test>", input)
	if diag != nil {
		t.Fatalf("unexpected diagnostic: %s", diag.AsString())
	}
	return node
}

func mustFail(t *testing.T, input string) *mxdiag.Diagnostic {
	t.Helper()
	node, diag := munchex.Run("<test>", input)
	if diag == nil {
		t.Fatalf("expected a diagnostic, got %s", node)
	}
	return diag
}

func TestNew(t *testing.T) {
	tests := []struct {
		format string
		want   string
		ok     bool
	}{
		{"", FormatRepr, true},
		{"repr", FormatRepr, true},
		{"tree", FormatTree, true},
		{"json", FormatJSON, true},
		{"yaml", FormatYAML, true},
		{"xml", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, err := New(tt.format, false)
			if !tt.ok {
				if !mxerror.HasCode(err, mxerror.CodeInvalidInput) {
					t.Errorf("New(%q) error = %v, want INVALID_INPUT", tt.format, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.format, err)
			}
			if r.Format() != tt.want {
				t.Errorf("Format() = %s, want %s", r.Format(), tt.want)
			}
		})
	}
}

func TestRenderer_Node(t *testing.T) {
	node := mustParse(t, "3 + 4 * 2")

	tests := []struct {
		format string
		want   string
	}{
		{FormatRepr, "(INT:3, PLUS, (INT:4, MUL, INT:2))"},
		{FormatTree, "PLUS\n├── INT:3\n└── MUL\n    ├── INT:4\n    └── INT:2"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, _ := New(tt.format, false)
			got, err := r.Node(node)
			if err != nil {
				t.Fatalf("Node() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Node() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestRenderer_NodeJSON(t *testing.T) {
	r, _ := New(FormatJSON, false)
	out, err := r.Node(mustParse(t, "1 - 2.5"))
	if err != nil {
		t.Fatalf("Node() error = %v", err)
	}

	var got NodeDTO
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}

	if got.Type != "binop" || got.Op != "MINUS" {
		t.Errorf("root = %+v, want a MINUS binop", got)
	}
	if got.Left == nil || got.Left.Kind != "INT" || got.Left.Value != float64(1) {
		t.Errorf("left = %+v, want INT 1", got.Left)
	}
	if got.Right == nil || got.Right.Kind != "FLOAT" || got.Right.Value != 2.5 {
		t.Errorf("right = %+v, want FLOAT 2.5", got.Right)
	}
}

func TestRenderer_NodeYAML(t *testing.T) {
	r, _ := New(FormatYAML, false)
	out, err := r.Node(mustParse(t, "6 / 3"))
	if err != nil {
		t.Fatalf("Node() error = %v", err)
	}

	var got NodeDTO
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid yaml: %v\n%s", err, out)
	}
	if got.Type != "binop" || got.Op != "DIV" || got.Left.Kind != "INT" || got.Right.Kind != "INT" {
		t.Errorf("decoded = %+v", got)
	}
	if !strings.Contains(out, "op: DIV") {
		t.Errorf("yaml output missing op:\n%s", out)
	}
}

func TestRenderer_Tokens(t *testing.T) {
	tokens, diag := munchex.NewEngine(munchex.Options{}).Tokenize("<test>", "(1 + 2.0)")
	if diag != nil {
		t.Fatalf("unexpected diagnostic: %v", diag)
	}

	r, _ := New(FormatRepr, false)
	got, _ := r.Tokens(tokens)
	if want := "[LPAREN, INT:1, PLUS, FLOAT:2.0, RPAREN]"; got != want {
		t.Errorf("Tokens() = %s, want %s", got, want)
	}

	r, _ = New(FormatTree, false)
	got, _ = r.Tokens(tokens)
	lines := strings.Split(got, "\n")
	if len(lines) != 5 || strings.TrimSpace(lines[3]) != "5  FLOAT:2.0" {
		t.Errorf("tree tokens =\n%s", got)
	}

	r, _ = New(FormatJSON, false)
	got, _ = r.Tokens(tokens)
	var dtos []TokenDTO
	if err := json.Unmarshal([]byte(got), &dtos); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(dtos) != 5 || dtos[1].Kind != "INT" || dtos[1].Start != 1 || dtos[1].End != 2 {
		t.Errorf("json tokens = %+v", dtos)
	}
}

func TestRenderer_Diagnostic(t *testing.T) {
	d := mustFail(t, "3 & 4")

	r, _ := New(FormatRepr, false)
	if got := r.Diagnostic(d); got != d.AsString() {
		t.Errorf("plain Diagnostic() =\n%s\nwant\n%s", got, d.AsString())
	}

	r, _ = New(FormatRepr, true)
	colored := r.Diagnostic(d)
	for _, want := range []string{"Illegal Character: '&'", "File <test>, line 1", "3 & 4", "^"} {
		if !strings.Contains(colored, want) {
			t.Errorf("colored Diagnostic() missing %q:\n%s", want, colored)
		}
	}

	r, _ = New(FormatJSON, true)
	var dto DiagnosticDTO
	if err := json.Unmarshal([]byte(r.Diagnostic(d)), &dto); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	want := DiagnosticDTO{
		Category:  "Illegal Character",
		Code:      "ILLEGAL_CHARACTER",
		Details:   "'&'",
		Source:    "<test>",
		Line:      1,
		Column:    3,
		EndLine:   1,
		EndColumn: 4,
	}
	if dto != want {
		t.Errorf("json diagnostic = %+v, want %+v", dto, want)
	}

	r, _ = New(FormatYAML, false)
	if out := r.Diagnostic(mustFail(t, "1 +")); !strings.Contains(out, "category: Invalid Syntax") {
		t.Errorf("yaml diagnostic =\n%s", out)
	}
}
