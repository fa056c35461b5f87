// Package log provides structured logging for MunchEx.
//
// Package: log
// Title: MunchEx Structured Logging
// Description: Structured logger with levels, key/value fields, run ids and
//              pluggable output formats (json, text, console, logfmt). The
//              engine uses it to trace lexing and parsing; the CLI writes its
//              log stream to stderr so results on stdout stay clean.
// Author: Munch42
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Usage:
//
//	import mxlog "github.com/Munch42/MunchEx/foundation/core/log"
//
//	logger := mxlog.NewWithConfig(mxlog.Config{
//	  Level:  mxlog.LevelDebug,
//	  Format: mxlog.FormatText,
//	  Output: os.Stderr,
//	  Name:   "munchex",
//	}).WithRunID(runID)
//
//	logger.Debug("lexing", mxlog.Fields{"length": len(text)})
//
//	timer := logger.StartTimer("parse")
//	// ... parse
//	timer.StopWithResult(diag == nil, nodeCount)
package log
