// ============================================================================
// MunchEx - Arithmetic language front end
// ============================================================================
//
// Package:     render
// Description: Output formats for syntax trees, token streams and diagnostics
// Author:      Munch42
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	mxerror "github.com/Munch42/MunchEx/foundation/core/error"
	mxast "github.com/Munch42/MunchEx/foundation/munchex/ast"
	mxdiag "github.com/Munch42/MunchEx/foundation/munchex/diag"
)

// Output formats
const (
	FormatRepr = "repr"
	FormatTree = "tree"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Diagnostic styles
var (
	DiagHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	DiagLocationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#94A3B8")).
				Italic(true)

	DiagCaretStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)
)

// NodeDTO is the serialized form of a syntax tree node
type NodeDTO struct {
	Type  string      `json:"type" yaml:"type"`
	Kind  string      `json:"kind,omitempty" yaml:"kind,omitempty"`
	Value interface{} `json:"value,omitempty" yaml:"value,omitempty"`
	Op    string      `json:"op,omitempty" yaml:"op,omitempty"`
	Left  *NodeDTO    `json:"left,omitempty" yaml:"left,omitempty"`
	Right *NodeDTO    `json:"right,omitempty" yaml:"right,omitempty"`
}

// TokenDTO is the serialized form of a token
type TokenDTO struct {
	Kind  string      `json:"kind" yaml:"kind"`
	Value interface{} `json:"value,omitempty" yaml:"value,omitempty"`
	Start int         `json:"start" yaml:"start"`
	End   int         `json:"end" yaml:"end"`
}

// DiagnosticDTO is the serialized form of a diagnostic
type DiagnosticDTO struct {
	Category  string `json:"category" yaml:"category"`
	Code      string `json:"code" yaml:"code"`
	Details   string `json:"details" yaml:"details"`
	Source    string `json:"source" yaml:"source"`
	Line      int    `json:"line" yaml:"line"`
	Column    int    `json:"column" yaml:"column"`
	EndLine   int    `json:"end_line" yaml:"end_line"`
	EndColumn int    `json:"end_column" yaml:"end_column"`
}

// Renderer formats engine output
type Renderer struct {
	format string
	color  bool
}

// New creates a renderer for format. Color only affects diagnostics in the
// repr and tree formats.
func New(format string, color bool) (*Renderer, error) {
	switch format {
	case FormatRepr, FormatTree, FormatJSON, FormatYAML:
	case "":
		format = FormatRepr
	default:
		return nil, mxerror.New("unknown output format: "+format).
			WithCode(mxerror.CodeInvalidInput).
			WithDetail("format", format)
	}
	return &Renderer{format: format, color: color}, nil
}

// Format returns the output format
func (r *Renderer) Format() string {
	return r.format
}

// Node renders a syntax tree
func (r *Renderer) Node(node mxast.Node) (string, error) {
	switch r.format {
	case FormatTree:
		return strings.TrimRight(mxast.Tree(node), "\n"), nil
	case FormatJSON:
		return marshalJSON(NewNodeDTO(node))
	case FormatYAML:
		return marshalYAML(NewNodeDTO(node))
	default:
		return node.String(), nil
	}
}

// Tokens renders a token stream
func (r *Renderer) Tokens(tokens []mxast.Token) (string, error) {
	switch r.format {
	case FormatJSON:
		return marshalJSON(NewTokenDTOs(tokens))
	case FormatYAML:
		return marshalYAML(NewTokenDTOs(tokens))
	case FormatTree:
		var b strings.Builder
		for i, tok := range tokens {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%3d  %s", tok.Start.Index, tok)
		}
		return b.String(), nil
	default:
		parts := make([]string, len(tokens))
		for i, tok := range tokens {
			parts[i] = tok.String()
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	}
}

// Diagnostic renders a diagnostic
func (r *Renderer) Diagnostic(d *mxdiag.Diagnostic) string {
	switch r.format {
	case FormatJSON:
		out, err := marshalJSON(NewDiagnosticDTO(d))
		if err != nil {
			return d.AsString()
		}
		return out
	case FormatYAML:
		out, err := marshalYAML(NewDiagnosticDTO(d))
		if err != nil {
			return d.AsString()
		}
		return out
	}

	if !r.color {
		return d.AsString()
	}
	return Colorize(d)
}

// Colorize renders the diagnostic block with styled header and carets
func Colorize(d *mxdiag.Diagnostic) string {
	var b strings.Builder
	b.WriteString(DiagHeaderStyle.Render(fmt.Sprintf("%s: %s", d.Category, d.Details)))
	b.WriteByte('\n')
	b.WriteString(DiagLocationStyle.Render(fmt.Sprintf("File %s, line %d", d.Start.SourceName, d.Start.Line+1)))
	b.WriteString("\n\n")

	// ArrowString alternates excerpt lines and caret lines
	lines := strings.Split(mxdiag.ArrowString(d.Start.Text, d.Start, d.End), "\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i%2 == 1 {
			b.WriteString(DiagCaretStyle.Render(line))
		} else {
			b.WriteString(line)
		}
	}
	return b.String()
}

// NewNodeDTO converts a syntax tree into its serialized form
func NewNodeDTO(node mxast.Node) *NodeDTO {
	switch n := node.(type) {
	case *mxast.NumberNode:
		return &NodeDTO{
			Type:  "number",
			Kind:  n.Token.Kind.String(),
			Value: n.Token.Value,
		}
	case *mxast.BinOpNode:
		return &NodeDTO{
			Type:  "binop",
			Op:    n.Operator.Kind.String(),
			Left:  NewNodeDTO(n.Left),
			Right: NewNodeDTO(n.Right),
		}
	default:
		return nil
	}
}

// NewTokenDTOs converts a token stream into its serialized form
func NewTokenDTOs(tokens []mxast.Token) []TokenDTO {
	out := make([]TokenDTO, len(tokens))
	for i, tok := range tokens {
		out[i] = TokenDTO{
			Kind:  tok.Kind.String(),
			Value: tok.Value,
			Start: tok.Start.Index,
			End:   tok.End.Index,
		}
	}
	return out
}

// NewDiagnosticDTO converts a diagnostic into its serialized form
func NewDiagnosticDTO(d *mxdiag.Diagnostic) DiagnosticDTO {
	return DiagnosticDTO{
		Category:  d.Category.String(),
		Code:      string(d.Code()),
		Details:   d.Details,
		Source:    d.Start.SourceName,
		Line:      d.Start.Line + 1,
		Column:    d.Start.Column + 1,
		EndLine:   d.End.Line + 1,
		EndColumn: d.End.Column + 1,
	}
}

func marshalJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", mxerror.Wrap(err, "failed to encode json").WithCode(mxerror.CodeInternal)
	}
	return string(data), nil
}

func marshalYAML(v interface{}) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", mxerror.Wrap(err, "failed to encode yaml").WithCode(mxerror.CodeInternal)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
