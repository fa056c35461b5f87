// Package error provides structured error handling for MunchEx.
//
// Package: error
// Title: MunchEx Error Handling
// Description: Structured errors with codes, severities and key/value details.
//              Source diagnostics from the lexer and parser convert into this
//              type for logging; configuration, storage and CLI failures use
//              it directly.
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
//	import mxerror "github.com/Munch42/MunchEx/foundation/core/error"
//
//	err := mxerror.New("history database unavailable").
//	  WithCode(mxerror.CodeStorageError).
//	  WithDetail("path", path)
//
//	wrapped := mxerror.Wrap(ioErr, "failed to read config").
//	  WithCode(mxerror.CodeConfigError)
//
//	if mxerror.HasCode(err, mxerror.CodeStorageError) {
//	  // ...
//	}
package error
