// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. Severities drive the log
//              level an error is reported with.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Severity levels and code mapping for expression errors

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks errors caused by the input, such as a malformed expression
	SeverityLow Severity = iota

	// SeverityMedium marks errors the caller can correct, such as a bad config file
	SeverityMedium

	// SeverityHigh marks errors that point at a defect in the engine itself
	SeverityHigh

	// SeverityCritical marks errors that leave the process unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should be reported loudly
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeExparStructural, CodeInternal:
		return SeverityHigh

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeIOError, CodeFileNotFound:
		return SeverityMedium

	case CodeExparSyntax, CodeExparDisambiguation, CodeExparLiteral,
		CodeExparValidation, CodeInvalidInput, CodeInputTooLong:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
