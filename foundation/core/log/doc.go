// Package log provides structured logging for the expar module.
//
// Package: log
// Title: Structured Logging
// Description: Implements leveled, structured logging with JSON, text and
//              console output. Loggers are immutable values configured
//              through With* calls and integrate with the structured error
//              package, choosing the log level from an error's severity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// Usage:
//
//	import mdwlog "github.com/msto63/expar/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatJSON,
//	}).WithField("component", "expar-parser")
//
//	logger.Debug("Starting expression parsing", mdwlog.Fields{"input": input})
//
//	timer := logger.StartTimer("lower")
//	root, err := lower.Lower(tree, opts)
//	timer.StopWithError(err)
//
//	logger.LogError(err) // level follows the error severity
package log
