// File: codes.go
// Title: Error Codes
// Description: Defines the error codes used by the expression engine, its
//              configuration layer and the command line tools. Codes are
//              grouped into categories and map onto process exit statuses.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial set of expression, configuration and IO codes

package error

import "strings"

// Code represents a structured error code
type Code string

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Generic codes
const (
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL_ERROR"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeInputTooLong Code = "INPUT_TOO_LONG"
)

// Expression processing codes
const (
	CodeExparSyntax         Code = "EXPAR_SYNTAX"
	CodeExparDisambiguation Code = "EXPAR_DISAMBIGUATION"
	CodeExparStructural     Code = "EXPAR_STRUCTURAL"
	CodeExparLiteral        Code = "EXPAR_LITERAL"
	CodeExparValidation     Code = "EXPAR_VALIDATION"
)

// Configuration codes
const (
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// IO codes
const (
	CodeIOError      Code = "IO_ERROR"
	CodeFileNotFound Code = "FILE_NOT_FOUND"
)

var knownCodes = map[Code]bool{
	CodeUnknown:             true,
	CodeInternal:            true,
	CodeInvalidInput:        true,
	CodeInputTooLong:        true,
	CodeExparSyntax:         true,
	CodeExparDisambiguation: true,
	CodeExparStructural:     true,
	CodeExparLiteral:        true,
	CodeExparValidation:     true,
	CodeConfigError:         true,
	CodeMissingConfig:       true,
	CodeInvalidConfig:       true,
	CodeIOError:             true,
	CodeFileNotFound:        true,
}

// IsValid reports whether the code is one of the predefined codes
func (c Code) IsValid() bool {
	return knownCodes[c]
}

// Category returns the category of the error code
func (c Code) Category() string {
	switch {
	case strings.HasPrefix(string(c), "EXPAR_"):
		return "expar"
	case c == CodeConfigError || c == CodeMissingConfig || c == CodeInvalidConfig:
		return "config"
	case c == CodeIOError || c == CodeFileNotFound:
		return "io"
	case c == CodeInvalidInput || c == CodeInputTooLong:
		return "input"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status for commands failing with this code.
// Expression errors exit with 1, usage and environment problems with 2 and
// internal failures with 70.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "expar":
		if c == CodeExparStructural {
			return 70
		}
		return 1
	case "input":
		return 1
	case "config", "io":
		return 2
	default:
		return 70
	}
}
