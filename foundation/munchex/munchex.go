// File: munchex.go
// Title: MunchEx Engine
// Description: High-level API that runs the lexer and the parser over a
//              source text and returns either a syntax tree or the first
//              diagnostic.
// Author: Munch42
// Version: v0.1.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial engine implementation
// - 2026-10-18 v0.1.1: Diagnostics logged at debug, Lex with input checks

package munchex

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	mxerror "github.com/Munch42/MunchEx/foundation/core/error"
	mxlog "github.com/Munch42/MunchEx/foundation/core/log"
	mxast "github.com/Munch42/MunchEx/foundation/munchex/ast"
	mxdiag "github.com/Munch42/MunchEx/foundation/munchex/diag"
	mxparser "github.com/Munch42/MunchEx/foundation/munchex/parser"
)

// DefaultMaxInputLength is the input limit applied by Process
const DefaultMaxInputLength = 4096

// Engine runs the lexer and parser. An Engine holds no per-run state and
// may be shared between goroutines.
type Engine struct {
	logger  *mxlog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	// Logger for engine operations (optional, defaults to the default logger)
	Logger *mxlog.Logger

	// MaxInputLength limits the characters accepted by Process
	// (default: 4096, negative disables the limit)
	MaxInputLength int
}

// Result describes one processed input
type Result struct {
	RunID      string
	SourceName string
	Input      string

	// Exactly one of Node and Diagnostic is set
	Node       mxast.Node
	Diagnostic *mxdiag.Diagnostic

	Nodes    int
	Depth    int
	Duration time.Duration
}

// Success reports whether the input was parsed
func (r *Result) Success() bool {
	return r.Diagnostic == nil
}

// NewEngine creates a new engine
func NewEngine(opts Options) *Engine {
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	e := &Engine{options: opts}
	if opts.Logger != nil {
		e.logger = opts.Logger.WithField("component", "munchex-engine")
	}
	return e
}

func (e *Engine) log() *mxlog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return mxlog.GetDefault().WithField("component", "munchex-engine")
}

// Run lexes and parses text. Exactly one of the results is non-nil.
func (e *Engine) Run(sourceName, text string) (mxast.Node, *mxdiag.Diagnostic) {
	return e.run(e.log().WithRunID(uuid.New().String()), sourceName, text)
}

func (e *Engine) run(logger *mxlog.Logger, sourceName, text string) (mxast.Node, *mxdiag.Diagnostic) {
	logger.Debug("run started", mxlog.Fields{
		"source": sourceName,
		"length": utf8.RuneCountInString(text),
	})

	lexTimer := logger.StartTimer("lex")
	lexer := mxparser.NewLexer(sourceName, text).WithLogger(logger)
	tokens, diag := lexer.MakeTokens()
	lexTimer.WithField("tokens", len(tokens)).WithField("success", diag == nil).Stop()
	if diag != nil {
		logDiagnostic(logger, diag)
		return nil, diag
	}

	parseTimer := logger.StartTimer("parse")
	node, diag := mxparser.NewParser(tokens, lexer.End()).WithLogger(logger).Parse()
	parseTimer.WithField("success", diag == nil).Stop()
	if diag != nil {
		logDiagnostic(logger, diag)
		return nil, diag
	}

	nodes, depth := mxast.Stats(node)
	logger.Debug("run completed", mxlog.Fields{
		"nodes": nodes,
		"depth": depth,
	})

	return node, nil
}

// Process validates the input, runs it and reports timing and tree
// statistics. Errors are returned only when the input is not run at all.
func (e *Engine) Process(ctx context.Context, sourceName, text string) (*Result, error) {
	if err := e.validate(ctx, "process", text); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:      uuid.New().String(),
		SourceName: sourceName,
		Input:      text,
	}

	start := time.Now()
	result.Node, result.Diagnostic = e.run(e.log().WithRunID(result.RunID), sourceName, text)
	result.Duration = time.Since(start)
	result.Nodes, result.Depth = mxast.Stats(result.Node)

	return result, nil
}

// Tokenize runs only the lexer
func (e *Engine) Tokenize(sourceName, text string) ([]mxast.Token, *mxdiag.Diagnostic) {
	logger := e.log().WithRunID(uuid.New().String())

	tokens, diag := mxparser.NewLexer(sourceName, text).WithLogger(logger).MakeTokens()
	if diag != nil {
		logDiagnostic(logger, diag)
	}
	return tokens, diag
}

// Lex applies the same input checks as Process and then runs only the
// lexer. Errors are returned only when the input is not lexed at all.
func (e *Engine) Lex(ctx context.Context, sourceName, text string) ([]mxast.Token, *mxdiag.Diagnostic, error) {
	if err := e.validate(ctx, "lex", text); err != nil {
		return nil, nil, err
	}
	tokens, diag := e.Tokenize(sourceName, text)
	return tokens, diag, nil
}

// validate rejects cancelled runs and inputs over MaxInputLength
func (e *Engine) validate(ctx context.Context, operation, text string) error {
	if err := ctx.Err(); err != nil {
		return mxerror.Wrap(err, "run cancelled").
			WithCode(mxerror.CodeInvalidInput).
			WithOperation(operation)
	}

	length := utf8.RuneCountInString(text)
	if limit := e.options.MaxInputLength; limit > 0 && length > limit {
		return mxerror.New("input exceeds maximum length").
			WithCode(mxerror.CodeInputTooLong).
			WithOperation(operation).
			WithDetail("length", length).
			WithDetail("max_length", limit)
	}
	return nil
}

// MaxInputLength returns the input limit, or a negative value when the
// limit is disabled
func (e *Engine) MaxInputLength() int {
	return e.options.MaxInputLength
}

// logDiagnostic records a rejected input at debug level. A diagnostic is a
// regular result of a run.
func logDiagnostic(logger *mxlog.Logger, diag *mxdiag.Diagnostic) {
	if !logger.IsLevelEnabled(mxlog.LevelDebug) {
		return
	}

	converted := diag.AsError()
	fields := mxlog.Fields{
		"error_code": string(converted.Code()),
		"stage":      diag.Category.Stage(),
	}
	for k, v := range converted.Details() {
		fields["error_"+k] = v
	}
	logger.Debug("input rejected: "+diag.Details, fields)
}

var defaultEngine = NewEngine(Options{})

// Run lexes and parses text with the default engine
func Run(sourceName, text string) (mxast.Node, *mxdiag.Diagnostic) {
	return defaultEngine.Run(sourceName, text)
}
