// ============================================================================
// MunchEx - Arithmetic language front end
// ============================================================================
//
// Package:     repl
// Description: Message types for async operations in the shell
// Author:      Munch42
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package repl

import (
	"time"
)

// Exchange is one evaluated input in the transcript
type Exchange struct {
	Input     string
	Output    string
	Success   bool
	Timestamp time.Time
}

// historyLoadedMsg is sent when previous inputs were read from the store
type historyLoadedMsg struct {
	inputs []string
	err    error
}

// recordedMsg is sent when an evaluation was written to the store
type recordedMsg struct {
	err error
}
