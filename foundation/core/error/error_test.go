// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes and severities.
// Author: Munch42
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test suite

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap MunchEx error keeps code",
			err:      New("disk full").WithCode(CodeStorageError),
			message:  "failed to record run",
			wantMsg:  "failed to record run: disk full",
			wantCode: CodeStorageError,
		},
		{
			name:     "wrap fmt-wrapped MunchEx error keeps code",
			err:      fmt.Errorf("outer: %w", New("bad toml").WithCode(CodeConfigError)),
			message:  "load",
			wantMsg:  "load: outer: bad toml",
			wantCode: CodeConfigError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is should find the wrapped error")
			}
		})
	}
}

func TestWrap_PreservesDetails(t *testing.T) {
	inner := New("bad span").WithCode(CodeInvalidSyntax).WithDetail("line", 3)
	outer := Wrap(inner, "parse failed")

	if outer.Details()["line"] != 3 {
		t.Errorf("Details()[line] = %v, want 3", outer.Details()["line"])
	}
	if outer.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityLow)
	}
	if outer.RootCause() != inner {
		t.Errorf("RootCause() = %v, want inner error", outer.RootCause())
	}
}

func TestWithCode_SetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeIllegalCharacter, SeverityLow},
		{CodeInvalidSyntax, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeStorageError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}
}

func TestWithCode_KeepsExplicitSeverity(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidSyntax)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	err := fmt.Errorf("ctx: %w", New("x").WithCode(CodeInputTooLong))

	if !HasCode(err, CodeInputTooLong) {
		t.Error("HasCode() should find code through fmt wrapping")
	}
	if HasCode(errors.New("plain"), CodeInputTooLong) {
		t.Error("HasCode() should be false for plain errors")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() should default to CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() should default to SeverityMedium")
	}
}

func TestCode_Category(t *testing.T) {
	tests := []struct {
		code       Code
		category   string
		diagnostic bool
	}{
		{CodeIllegalCharacter, "lexer", true},
		{CodeInvalidNumber, "lexer", true},
		{CodeInvalidSyntax, "parser", true},
		{CodeInputTooLong, "input", false},
		{CodeInvalidConfig, "configuration", false},
		{CodeStorageError, "storage", false},
		{CodeUnknown, "generic", false},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.IsDiagnostic(); got != tt.diagnostic {
				t.Errorf("IsDiagnostic() = %v, want %v", got, tt.diagnostic)
			}
			if !tt.code.IsValid() {
				t.Errorf("IsValid() = false for %s", tt.code)
			}
		})
	}

	if Code("NOPE").IsValid() {
		t.Error("IsValid() should reject unknown codes")
	}
}

func TestSeverity_String(t *testing.T) {
	tests := map[Severity]string{
		SeverityLow:      "low",
		SeverityMedium:   "medium",
		SeverityHigh:     "high",
		SeverityCritical: "critical",
		Severity(42):     "unknown",
	}
	for sev, want := range tests {
		if got := sev.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", int(sev), got, want)
		}
	}
	if SeverityMedium.ShouldAlert() || !SeverityHigh.ShouldAlert() {
		t.Error("ShouldAlert() should start at SeverityHigh")
	}
}

func TestError_StringAndJSON(t *testing.T) {
	err := Wrap(errors.New("boom"), "history write failed").
		WithCode(CodeStorageError).
		WithOperation("record").
		WithDetail("path", "/tmp/h.db").
		WithDetails(map[string]interface{}{"attempt": 1})

	s := err.String()
	for _, want := range []string{
		"Error: history write failed",
		"Code: STORAGE_ERROR",
		"Operation: record",
		"Details: {attempt=1, path=/tmp/h.db}",
		"Cause: boom",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("MarshalJSON() error = %v", jsonErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("invalid JSON: %v", jsonErr)
	}
	if decoded["code"] != "STORAGE_ERROR" {
		t.Errorf("code = %v, want STORAGE_ERROR", decoded["code"])
	}
	if decoded["cause"] != "boom" {
		t.Errorf("cause = %v, want boom", decoded["cause"])
	}
	if decoded["operation"] != "record" {
		t.Errorf("operation = %v, want record", decoded["operation"])
	}
}
