// Package error provides structured error handling for the expar module.
//
// Package: error
// Title: Structured Errors
// Description: Implements an error type carrying a code, a severity, free
//              form details and a captured stack trace. Expression, config
//              and command line layers report failures through it so that
//              callers can branch on codes and loggers can pick a level.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with codes and severities
//
// Usage:
//
//	import mdwerror "github.com/msto63/expar/foundation/core/error"
//
//	err := mdwerror.Wrap(parseErr, "expression rejected").
//		WithCode(mdwerror.CodeExparSyntax).
//		WithDetail("input", input).
//		WithCorrelationID(id)
//
//	if mdwerror.HasCode(err, mdwerror.CodeExparSyntax) {
//		// report the position to the user
//	}
//
// HasCode, GetCode and GetSeverity follow errors.As, so codes survive
// further wrapping with fmt.Errorf("...: %w", err).
package error
