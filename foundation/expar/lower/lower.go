// File: lower.go
// Title: Parse Tree Lowering Entry Point
// Description: Drives a Builder over a parse tree and returns either a
//              complete, fully resolved expression AST or the first error.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial lowering entry point
// - 2026-10-17 v0.1.1: Malformed parse trees reported as structural errors

package lower

import (
	"errors"

	mdwlog "github.com/msto63/expar/foundation/core/log"
	mdwast "github.com/msto63/expar/foundation/expar/ast"
	pt "github.com/msto63/expar/foundation/expar/parsetree"
)

// Options configures lowering
type Options struct {
	Logger *mdwlog.Logger
}

// Lower converts a parse tree into an expression AST. No partial tree is
// returned on failure.
func Lower(tree *pt.Tree, opts Options) (mdwast.Node, error) {
	if tree == nil {
		return nil, &StructuralError{Reason: "nil parse tree"}
	}

	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	logger = logger.WithField("component", "expar-lower")

	b := NewBuilder()
	if err := pt.Walk(b, tree); err != nil {
		var me *pt.MalformedError
		if errors.As(err, &me) {
			err = &StructuralError{
				Production: me.Production,
				Position:   position(me.Position),
				Reason:     me.Reason,
			}
		}
		logger.Debug("Lowering aborted", mdwlog.Fields{
			"production": tree.Kind.String(),
			"depth":      b.Depth(),
			"error":      err.Error(),
		})
		return nil, err
	}

	root, err := b.Result()
	if err != nil {
		return nil, err
	}

	logger.Trace("Lowering completed", mdwlog.Fields{
		"tokens": len(tree.Terminals()),
	})
	return root, nil
}
