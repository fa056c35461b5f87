// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across MunchEx for consistent
//              classification of lexer, parser, configuration and storage
//              failures.
// Author: Munch42
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Codes for the arithmetic front end

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"

	// Language front end
	CodeIllegalCharacter Code = "ILLEGAL_CHARACTER"
	CodeInvalidSyntax    Code = "INVALID_SYNTAX"
	CodeInvalidNumber    Code = "INVALID_NUMBER"
	CodeInputTooLong     Code = "INPUT_TOO_LONG"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Persistence
	CodeStorageError Code = "STORAGE_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeNotFound,
		CodeIllegalCharacter, CodeInvalidSyntax, CodeInvalidNumber, CodeInputTooLong,
		CodeConfigError, CodeInvalidConfig,
		CodeStorageError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeIllegalCharacter, CodeInvalidNumber:
		return "lexer"
	case CodeInvalidSyntax:
		return "parser"
	case CodeInputTooLong, CodeInvalidInput:
		return "input"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeStorageError:
		return "storage"
	default:
		return "generic"
	}
}

// IsDiagnostic reports whether the code belongs to a source diagnostic
// produced by the lexer or the parser.
func (c Code) IsDiagnostic() bool {
	switch c.Category() {
	case "lexer", "parser":
		return true
	}
	return false
}
