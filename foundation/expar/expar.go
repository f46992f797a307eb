// File: expar.go
// Title: Expression Engine
// Description: High-level entry point tying the parser, the lowering engine
//              and AST validation together. Failures are reported as
//              structured errors with an expression error code while the
//              typed cause stays reachable through errors.As.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial engine with batch parsing and correlation ids

package expar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/expar/foundation/core/error"
	mdwlog "github.com/msto63/expar/foundation/core/log"
	mdwast "github.com/msto63/expar/foundation/expar/ast"
	"github.com/msto63/expar/foundation/expar/lower"
	"github.com/msto63/expar/foundation/expar/parser"
)

// Engine turns expression text into validated ASTs. An Engine holds only
// configuration and may be shared between goroutines.
type Engine struct {
	parser  *parser.Parser
	logger  *mdwlog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	// Logger for engine operations (optional, defaults to the default logger)
	Logger *mdwlog.Logger

	// MaxInputLength limits the expression length (default: 4096)
	MaxInputLength int

	// SIPrefixes accepts SI suffixes on numbers, so "4.7u" is 4.7e-06
	SIPrefixes bool

	// SkipValidation returns lowered trees without running the validation visitor
	SkipValidation bool

	// Cache keeps accepted trees by input text (optional). Trees are
	// immutable, so a cached tree may be handed to several callers.
	Cache Cache
}

// Cache stores accepted trees keyed by their input text. Implementations
// must be safe for concurrent use.
type Cache interface {
	Get(input string) (mdwast.Node, bool)
	Set(input string, root mdwast.Node)
}

// Result is the outcome of one input of a batch
type Result struct {
	ID       string
	Input    string
	Root     mdwast.Node
	Err      error
	Duration time.Duration
}

// OK reports whether the input was accepted
func (r Result) OK() bool {
	return r.Err == nil
}

// New creates a new expression engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = parser.DefaultMaxInputLength
	}

	logger := opts.Logger.WithField("component", "expar-engine")

	p, err := parser.New(parser.Options{
		Logger:         opts.Logger,
		MaxInputLength: opts.MaxInputLength,
		SIPrefixes:     opts.SIPrefixes,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to initialize expression parser").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("new")
	}

	logger.Debug("Expression engine initialized", mdwlog.Fields{
		"maxInputLength": opts.MaxInputLength,
		"siPrefixes":     opts.SIPrefixes,
		"skipValidation": opts.SkipValidation,
		"cache":          opts.Cache != nil,
	})

	return &Engine{
		parser:  p,
		logger:  logger,
		options: opts,
	}, nil
}

// Options returns the effective engine options
func (e *Engine) Options() Options {
	return e.options
}

// Parse parses, lowers and validates one expression
func (e *Engine) Parse(input string) (mdwast.Node, error) {
	root, _, err := e.parse(uuid.NewString(), input)
	return root, err
}

// ParseAll processes every input independently. A failing input is reported
// in its Result and does not stop the batch.
func (e *Engine) ParseAll(inputs []string) []Result {
	results := make([]Result, 0, len(inputs))
	failed := 0

	for _, input := range inputs {
		id := uuid.NewString()
		root, d, err := e.parse(id, input)
		if err != nil {
			failed++
		}
		results = append(results, Result{
			ID:       id,
			Input:    input,
			Root:     root,
			Err:      err,
			Duration: d,
		})
	}

	e.logger.Debug("Batch completed", mdwlog.Fields{
		"inputs": len(inputs),
		"failed": failed,
	})
	return results
}

// Validate reports whether input is an acceptable expression
func (e *Engine) Validate(input string) error {
	_, err := e.Parse(input)
	return err
}

// parse runs all phases for one input under the given correlation id
func (e *Engine) parse(id, input string) (mdwast.Node, time.Duration, error) {
	logger := e.logger.WithCorrelationID(id)
	start := time.Now()

	if e.options.Cache != nil {
		if root, ok := e.options.Cache.Get(input); ok {
			logger.Debug("Expression served from cache", mdwlog.Fields{"input": input})
			return root, time.Since(start), nil
		}
	}

	root, err := e.run(logger, input)
	d := time.Since(start)
	if err != nil {
		se := classify(err).
			WithCorrelationID(id).
			WithDetail("input", input)
		logger.LogError(se)
		return nil, d, se
	}

	if e.options.Cache != nil {
		e.options.Cache.Set(input, root)
	}

	logger.Debug("Expression accepted", mdwlog.Fields{
		"input":       input,
		"duration_ms": float64(d.Nanoseconds()) / 1e6,
	})
	return root, d, nil
}

func (e *Engine) run(logger *mdwlog.Logger, input string) (mdwast.Node, error) {
	timer := logger.StartTimer("parse").WithLevel(mdwlog.LevelTrace)
	tree, err := e.parser.Parse(input)
	timer.StopWithError(err)
	if err != nil {
		return nil, err
	}

	timer = logger.StartTimer("lower").WithLevel(mdwlog.LevelTrace)
	root, err := lower.Lower(tree, lower.Options{Logger: logger})
	timer.StopWithError(err)
	if err != nil {
		return nil, err
	}

	if e.options.SkipValidation {
		return root, nil
	}

	if errs := mdwast.ValidateAST(root); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}
	return root, nil
}

// ValidationError collects the findings of the validation visitor
type ValidationError struct {
	Errors []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return "invalid expression tree: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() []error {
	return e.Errors
}

// classify wraps a phase error into a structured error with a matching code
func classify(err error) *mdwerror.Error {
	var (
		parseErr  *parser.ParseError
		disErr    *lower.DisambiguationError
		structErr *lower.StructuralError
		litErr    *lower.LiteralConversionError
		valErr    *ValidationError
	)

	switch {
	case errors.As(err, &parseErr):
		return mdwerror.Wrap(err, "syntax error").
			WithCode(mdwerror.CodeExparSyntax).
			WithOperation("parse").
			WithDetails(map[string]interface{}{
				"line":   parseErr.Line,
				"column": parseErr.Column,
				"offset": parseErr.Offset,
			})

	case errors.Is(err, parser.ErrInputTooLong):
		return mdwerror.Wrap(err, "input rejected").
			WithCode(mdwerror.CodeInputTooLong).
			WithOperation("parse")

	case errors.As(err, &disErr):
		return mdwerror.Wrap(err, "ambiguous expression").
			WithCode(mdwerror.CodeExparDisambiguation).
			WithOperation("lower").
			WithDetails(map[string]interface{}{
				"production": disErr.Production,
				"tokens":     strings.Join(disErr.Tokens, " "),
				"position":   disErr.Position.String(),
			})

	case errors.As(err, &litErr):
		return mdwerror.Wrap(err, "invalid literal").
			WithCode(mdwerror.CodeExparLiteral).
			WithOperation("lower").
			WithDetails(map[string]interface{}{
				"literal":  litErr.Text,
				"position": litErr.Position.String(),
			})

	case errors.As(err, &structErr):
		return mdwerror.Wrap(err, "malformed parse tree").
			WithCode(mdwerror.CodeExparStructural).
			WithOperation("lower").
			WithDetail("production", structErr.Production)

	case errors.As(err, &valErr):
		return mdwerror.Wrap(err, "validation failed").
			WithCode(mdwerror.CodeExparValidation).
			WithOperation("validate").
			WithDetail("findings", len(valErr.Errors))

	default:
		return mdwerror.Wrap(err, fmt.Sprintf("expression processing failed (%T)", err)).
			WithCode(mdwerror.CodeInternal)
	}
}
