// ============================================================================
// MunchEx - Arithmetic language front end
// ============================================================================
//
// Package:     session
// Description: Evaluates inputs for the CLI and REPL and records them in the
//              run history
// Author:      Munch42
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package session

import (
	"context"

	mxerror "github.com/Munch42/MunchEx/foundation/core/error"
	mxlog "github.com/Munch42/MunchEx/foundation/core/log"
	"github.com/Munch42/MunchEx/foundation/munchex"
	"github.com/Munch42/MunchEx/internal/history/store"
	"github.com/Munch42/MunchEx/internal/render"
)

// Config holds session dependencies
type Config struct {
	Engine     *munchex.Engine
	Renderer   *render.Renderer
	Store      store.HistoryStore // nil disables recording
	SourceName string
	Logger     *mxlog.Logger
}

// Session evaluates inputs with a fixed engine and renderer
type Session struct {
	engine     *munchex.Engine
	renderer   *render.Renderer
	store      store.HistoryStore
	sourceName string
	logger     *mxlog.Logger
}

// Evaluation is the outcome of one input
type Evaluation struct {
	RunID   string
	Input   string
	Success bool

	// Output is the rendered tree or diagnostic
	Output string

	// Summary is the one-line form stored in the history
	Summary string

	// Category names the diagnostic category or error code on failure
	Category string

	// Err is set when the input was rejected before lexing
	Err error
}

// New creates a session. Missing engine and renderer fall back to defaults.
func New(cfg Config) *Session {
	if cfg.Engine == nil {
		cfg.Engine = munchex.NewEngine(munchex.Options{Logger: cfg.Logger})
	}
	if cfg.Renderer == nil {
		cfg.Renderer, _ = render.New(render.FormatRepr, false)
	}
	if cfg.SourceName == "" {
		cfg.SourceName = "<stdin>"
	}
	if cfg.Logger == nil {
		cfg.Logger = mxlog.GetDefault()
	}

	return &Session{
		engine:     cfg.Engine,
		renderer:   cfg.Renderer,
		store:      cfg.Store,
		sourceName: cfg.SourceName,
		logger:     cfg.Logger.WithField("component", "session"),
	}
}

// SourceName returns the source name attached to positions
func (s *Session) SourceName() string {
	return s.sourceName
}

// Evaluate runs input and renders the result
func (s *Session) Evaluate(ctx context.Context, input string) *Evaluation {
	ev := &Evaluation{Input: input}

	result, err := s.engine.Process(ctx, s.sourceName, input)
	if err != nil {
		ev.Err = err
		ev.Output = "Error: " + err.Error()
		ev.Summary = err.Error()
		ev.Category = string(mxerror.GetCode(err))
		return ev
	}

	ev.RunID = result.RunID
	if d := result.Diagnostic; d != nil {
		ev.Output = s.renderer.Diagnostic(d)
		ev.Summary = d.Error()
		ev.Category = d.Category.String()
		return ev
	}

	ev.Success = true
	ev.Summary = result.Node.String()
	ev.Output, err = s.renderer.Node(result.Node)
	if err != nil {
		ev.Output = ev.Summary
		s.logger.WarnWithErr("render failed", err)
	}
	return ev
}

// Record stores ev in the run history
func (s *Session) Record(ctx context.Context, ev *Evaluation) error {
	if s.store == nil {
		return nil
	}

	entry := &store.Entry{
		ID:         ev.RunID,
		SourceName: s.sourceName,
		Input:      ev.Input,
		Success:    ev.Success,
		Output:     ev.Summary,
		Category:   ev.Category,
	}
	if err := s.store.Record(ctx, entry); err != nil {
		return mxerror.Wrap(err, "failed to record run").
			WithCode(mxerror.CodeStorageError).
			WithOperation("history.record")
	}

	s.logger.Debug("run recorded", mxlog.Fields{"entry_id": entry.ID})
	return nil
}

// EvaluateAndRecord evaluates input and records it. A failed recording is
// logged and does not affect the evaluation.
func (s *Session) EvaluateAndRecord(ctx context.Context, input string) *Evaluation {
	ev := s.Evaluate(ctx, input)
	if err := s.Record(ctx, ev); err != nil {
		s.logger.LogError(err)
	}
	return ev
}

// Inputs returns up to limit previous inputs, oldest first
func (s *Session) Inputs(ctx context.Context, limit int) ([]string, error) {
	if s.store == nil || limit <= 0 {
		return nil, nil
	}

	inputs, err := s.store.Inputs(ctx, limit)
	if err != nil {
		return nil, mxerror.Wrap(err, "failed to load history").
			WithCode(mxerror.CodeStorageError).
			WithOperation("history.inputs")
	}
	return inputs, nil
}
