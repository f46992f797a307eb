// File: render.go
// Title: AST Render Formats
// Description: Maps output format names to the AST renderers so the command
//              line and the interactive shell print trees the same way.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Symbolic, debug and tree formats

package expar

import (
	"strings"

	mdwerror "github.com/msto63/expar/foundation/core/error"
	mdwast "github.com/msto63/expar/foundation/expar/ast"
)

// Format names a rendering of an AST
type Format string

const (
	FormatSymbolic Format = "symbolic"
	FormatDebug    Format = "debug"
	FormatTree     Format = "tree"
)

// Formats lists the render formats in display order
func Formats() []Format {
	return []Format{FormatSymbolic, FormatDebug, FormatTree}
}

// ParseFormat resolves a format name. An empty name selects FormatSymbolic.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatSymbolic:
		return FormatSymbolic, nil
	case FormatDebug:
		return FormatDebug, nil
	case FormatTree:
		return FormatTree, nil
	}
	return "", mdwerror.Newf("unknown output format %q", name).
		WithCode(mdwerror.CodeInvalidInput).
		WithDetail("format", name)
}

// Next returns the format following f, wrapping around
func (f Format) Next() Format {
	formats := Formats()
	for i, candidate := range formats {
		if candidate == f {
			return formats[(i+1)%len(formats)]
		}
	}
	return FormatSymbolic
}

// Render renders node in format f. The tree format ends without a trailing
// newline so callers can frame it.
func Render(node mdwast.Node, f Format) string {
	switch f {
	case FormatDebug:
		return mdwast.ASTToDebugString(node)
	case FormatTree:
		return strings.TrimRight(mdwast.ASTToTree(node), "\n")
	default:
		return mdwast.ASTToString(node)
	}
}
