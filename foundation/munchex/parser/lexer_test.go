// File: lexer_test.go
// Title: MunchEx Lexer Unit Tests
// Description: Tests for tokenisation, number scanning, illegal characters
//              and position tracking.
// Author: Munch42
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test suite

package parser

import (
	"bytes"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	mxlog "github.com/Munch42/MunchEx/foundation/core/log"
	mxast "github.com/Munch42/MunchEx/foundation/munchex/ast"
	mxdiag "github.com/Munch42/MunchEx/foundation/munchex/diag"
)

func tokenStrings(tokens []mxast.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.String()
	}
	return out
}

func TestLexer_MakeTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t ", ""},
		{"single int", "42", "INT:42"},
		{"single float", "3.14", "FLOAT:3.14"},
		{"trailing dot float", "1.", "FLOAT:1.0"},
		{"expression", "3 + 4 * 2", "INT:3 PLUS INT:4 MUL INT:2"},
		{"no spaces", "1-2/3", "INT:1 MINUS INT:2 DIV INT:3"},
		{"parens", "(1)", "LPAREN INT:1 RPAREN"},
		{"tabs", "7\t*\t8", "INT:7 MUL INT:8"},
		{"leading zeros", "007", "INT:7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, diag := TokenizeInput("<test>", tt.input)
			if diag != nil {
				t.Fatalf("unexpected diagnostic: %v", diag)
			}
			if got := strings.Join(tokenStrings(tokens), " "); got != tt.want {
				t.Errorf("tokens = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLexer_IllegalCharacter(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantPrefix  string
		wantDetails string
		wantLine    int
		wantColumn  int
	}{
		{"at sign after operator", "1 + @", "INT:1 PLUS", "'@'", 0, 4},
		{"ampersand", "3 & 4", "INT:3", "'&'", 0, 2},
		{"letter first", "x", "", "'x'", 0, 0},
		{"newline is not whitespace", "1\n2", "INT:1", "'\n'", 0, 1},
		{"lone dot", ".5", "", "'.'", 0, 0},
		{"second dot", "1.2.3", "FLOAT:1.2", "'.'", 0, 3},
		{"non ascii digit", "1 + ٣", "INT:1 PLUS", "'٣'", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, diag := TokenizeInput("<test>", tt.input)
			if diag == nil {
				t.Fatalf("expected a diagnostic, got tokens %v", tokenStrings(tokens))
			}
			if diag.Category != mxdiag.CategoryIllegalChar {
				t.Errorf("Category = %v, want Illegal Character", diag.Category)
			}
			if diag.Details != tt.wantDetails {
				t.Errorf("Details = %q, want %q", diag.Details, tt.wantDetails)
			}
			if diag.Start.Line != tt.wantLine || diag.Start.Column != tt.wantColumn {
				t.Errorf("Start = %d:%d, want %d:%d",
					diag.Start.Line, diag.Start.Column, tt.wantLine, tt.wantColumn)
			}
			if diag.End.Index != diag.Start.Index+1 {
				t.Errorf("span = [%d,%d), want one character", diag.Start.Index, diag.End.Index)
			}
			if got := strings.Join(tokenStrings(tokens), " "); got != tt.wantPrefix {
				t.Errorf("prefix = %q, want %q", got, tt.wantPrefix)
			}
		})
	}
}

func TestLexer_InvalidNumber(t *testing.T) {
	tokens, diag := TokenizeInput("<test>", "1 + 99999999999999999999")
	if diag == nil {
		t.Fatal("expected a diagnostic for an oversized integer")
	}
	if diag.Category != mxdiag.CategoryInvalidNumber {
		t.Errorf("Category = %v, want Invalid Number", diag.Category)
	}
	if diag.Start.Column != 4 || diag.End.Column != 24 {
		t.Errorf("span = [%d,%d), want [4,24)", diag.Start.Column, diag.End.Column)
	}
	if len(tokens) != 2 {
		t.Errorf("prefix = %v, want two tokens", tokenStrings(tokens))
	}
}

func TestLexer_FloatOverflowIsInfinite(t *testing.T) {
	huge := "1" + strings.Repeat("0", 400) + ".0"
	tokens, diag := TokenizeInput("<test>", huge)
	if diag != nil {
		t.Fatalf("unexpected diagnostic: %v", diag)
	}
	v, ok := tokens[0].Float()
	if !ok || !math.IsInf(v, 1) {
		t.Errorf("value = %v, want +Inf", tokens[0].Value)
	}
}

func TestLexer_TokenSpans(t *testing.T) {
	lexer := NewLexer("<test>", "12 + 3.5")
	tokens, diag := lexer.MakeTokens()
	if diag != nil {
		t.Fatalf("unexpected diagnostic: %v", diag)
	}

	want := [][2]int{{0, 2}, {3, 4}, {5, 8}}
	for i, span := range want {
		if tokens[i].Start.Index != span[0] || tokens[i].End.Index != span[1] {
			t.Errorf("token %d span = [%d,%d), want [%d,%d)",
				i, tokens[i].Start.Index, tokens[i].End.Index, span[0], span[1])
		}
	}

	if end := lexer.End(); end.Index != 8 || end.Column != 8 {
		t.Errorf("End() = index %d col %d, want 8/8", end.Index, end.Column)
	}
}

func TestLexer_PositionsAcrossLines(t *testing.T) {
	// The newline is rejected, but the diagnostic end already sits on the
	// next line.
	_, diag := TokenizeInput("<test>", "12\n3")
	if diag == nil {
		t.Fatal("expected a diagnostic")
	}
	if diag.End.Line != 1 || diag.End.Column != 0 {
		t.Errorf("End = %d:%d, want 1:0", diag.End.Line, diag.End.Column)
	}
}

// genExpression builds random text from well formed numbers, operators,
// parentheses and whitespace and returns the number of tokens in it.
func genExpression(rng *rand.Rand) (string, int) {
	var b strings.Builder
	count := 0
	n := 1 + rng.Intn(12)

	for i := 0; i < n; i++ {
		if rng.Intn(3) == 0 {
			b.WriteString(strings.Repeat(" ", rng.Intn(3)))
			b.WriteString(strings.Repeat("\t", rng.Intn(2)))
		}
		switch rng.Intn(3) {
		case 0:
			b.WriteString(strconv.Itoa(rng.Intn(100000)))
			if rng.Intn(2) == 0 {
				b.WriteByte('.')
				if rng.Intn(2) == 0 {
					b.WriteString(strconv.Itoa(rng.Intn(1000)))
				}
			}
			// a following number must be separated
			b.WriteByte(' ')
		default:
			b.WriteByte("+-*/()"[rng.Intn(6)])
		}
		count++
	}
	return b.String(), count
}

func TestLexer_TokenCountProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		input, want := genExpression(rng)
		tokens, diag := TokenizeInput("<prop>", input)
		if diag != nil {
			t.Fatalf("input %q: unexpected diagnostic %v", input, diag)
		}
		if len(tokens) != want {
			t.Fatalf("input %q: %d tokens, want %d", input, len(tokens), want)
		}
	}
}

func TestLexer_NumberRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		intText := strconv.FormatInt(rng.Int63(), 10)
		tokens, diag := TokenizeInput("<prop>", intText)
		if diag != nil {
			t.Fatalf("%q: unexpected diagnostic %v", intText, diag)
		}
		want, _ := strconv.ParseInt(intText, 10, 64)
		if got, ok := tokens[0].Int(); !ok || got != want {
			t.Fatalf("%q: INT value %v, want %d", intText, tokens[0].Value, want)
		}

		floatText := strconv.Itoa(rng.Intn(1000000)) + "." + strconv.Itoa(rng.Intn(1000000))
		tokens, diag = TokenizeInput("<prop>", floatText)
		if diag != nil {
			t.Fatalf("%q: unexpected diagnostic %v", floatText, diag)
		}
		wantF, _ := strconv.ParseFloat(floatText, 64)
		if got, ok := tokens[0].Float(); !ok || got != wantF {
			t.Fatalf("%q: FLOAT value %v, want %v", floatText, tokens[0].Value, wantF)
		}
	}
}

func TestLexer_TraceLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := mxlog.NewWithConfig(mxlog.Config{
		Level:  mxlog.LevelTrace,
		Format: mxlog.FormatLogfmt,
		Output: &buf,
	})

	if _, diag := NewLexer("<test>", "1+2").WithLogger(logger).MakeTokens(); diag != nil {
		t.Fatalf("unexpected diagnostic: %v", diag)
	}

	out := buf.String()
	if got := strings.Count(out, `message="token"`); got != 3 {
		t.Errorf("logged %d tokens, want 3:\n%s", got, out)
	}
	if !strings.Contains(out, "component=\"munchex-lexer\"") {
		t.Errorf("missing component field:\n%s", out)
	}
}
