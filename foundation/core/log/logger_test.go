// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, context fields, run ids and
//              structured error logging.
// Author: Munch42
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	mxerror "github.com/Munch42/MunchEx/foundation/core/error"
)

func newTestLogger(buf *bytes.Buffer, level Level, format Format) *Logger {
	return NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: buf,
		Name:   "test",
	})
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		min     Level
		logFn   func(l *Logger)
		wantOut bool
	}{
		{"debug below warn", LevelWarn, func(l *Logger) { l.Debug("x") }, false},
		{"info below warn", LevelWarn, func(l *Logger) { l.Info("x") }, false},
		{"warn at warn", LevelWarn, func(l *Logger) { l.Warn("x") }, true},
		{"error above warn", LevelWarn, func(l *Logger) { l.Error("x") }, true},
		{"trace at trace", LevelTrace, func(l *Logger) { l.Trace("x") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFn(newTestLogger(&buf, tt.min, FormatJSON))
			if got := buf.Len() > 0; got != tt.wantOut {
				t.Errorf("output written = %v, want %v", got, tt.wantOut)
			}
		})
	}
}

func TestLogger_ContextFieldsAndRunID(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, LevelDebug, FormatJSON)
	logger := base.WithField("component", "lexer").WithRunID("run-1")

	logger.Debug("tokenised", Fields{"tokens": 3})
	base.Debug("plain")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	first := lines[0]
	if first["component"] != "lexer" {
		t.Errorf("component = %v, want lexer", first["component"])
	}
	if first["run_id"] != "run-1" {
		t.Errorf("run_id = %v, want run-1", first["run_id"])
	}
	if first["tokens"] != float64(3) {
		t.Errorf("tokens = %v, want 3", first["tokens"])
	}
	if first["logger"] != "test" {
		t.Errorf("logger = %v, want test", first["logger"])
	}

	if _, ok := lines[1]["component"]; ok {
		t.Error("WithField must not modify the parent logger")
	}
	if _, ok := lines[1]["run_id"]; ok {
		t.Error("WithRunID must not modify the parent logger")
	}
}

type fakeDiagnostic struct{}

func (fakeDiagnostic) Error() string { return "Invalid Syntax: Expected int or float" }

func (fakeDiagnostic) AsError() *mxerror.Error {
	return mxerror.New("Expected int or float").
		WithCode(mxerror.CodeInvalidSyntax).
		WithDetail("line", 1)
}

func TestLogger_LogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{
			name:      "plain error",
			err:       errors.New("boom"),
			wantLevel: "error",
			wantCode:  nil,
		},
		{
			name:      "structured high severity",
			err:       mxerror.New("cannot open").WithCode(mxerror.CodeStorageError),
			wantLevel: "error",
			wantCode:  "STORAGE_ERROR",
		},
		{
			name:      "diagnostic converts and logs at warn",
			err:       fakeDiagnostic{},
			wantLevel: "warn",
			wantCode:  "INVALID_SYNTAX",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newTestLogger(&buf, LevelTrace, FormatJSON).LogError(tt.err)

			lines := decodeLines(t, &buf)
			if len(lines) != 1 {
				t.Fatalf("got %d lines, want 1", len(lines))
			}
			if lines[0]["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", lines[0]["level"], tt.wantLevel)
			}
			if lines[0]["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", lines[0]["error_code"], tt.wantCode)
			}
		})
	}
}

func TestLogger_LogErrorNil(t *testing.T) {
	var buf bytes.Buffer
	newTestLogger(&buf, LevelTrace, FormatJSON).LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestLogger_WithCaller(t *testing.T) {
	var buf bytes.Buffer
	newTestLogger(&buf, LevelInfo, FormatJSON).WithCaller(0).Info("here")

	lines := decodeLines(t, &buf)
	caller, _ := lines[0]["caller"].(string)
	if !strings.HasPrefix(caller, "logger_test.go:") {
		t.Errorf("caller = %q, want logger_test.go:<line>", caller)
	}
}

func TestLogger_ConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug, FormatJSON)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger.WithRunID("r").Debug("run", Fields{"i": i})
		}(i)
	}
	wg.Wait()

	if got := len(decodeLines(t, &buf)); got != 20 {
		t.Errorf("got %d lines, want 20", got)
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(newTestLogger(&buf, LevelInfo, FormatText))
	Info("hello")

	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("default logger output = %q", buf.String())
	}

	SetDefault(nil)
	if GetDefault() == nil {
		t.Error("SetDefault(nil) must keep the previous logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
