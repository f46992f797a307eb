// ============================================================================
// expar - expression parse tree lowering
// ============================================================================
//
// Package:     version
// Description: Central version management for the module and its components
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the module and its components
const (
	// Module version
	Module = "0.1.0"

	// Component versions
	Parser  = "0.1.0"
	Lower   = "0.1.0"
	AST     = "0.1.0"
	Grammar = "0.1.0"
)

// Set through -ldflags "-X github.com/msto63/expar/pkg/core/version.Commit=..."
var (
	Commit = "unknown"
	Date   = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "parser":
		return Parser
	case "lower":
		return Lower
	case "ast":
		return AST
	case "grammar":
		return Grammar
	default:
		return Module
	}
}

// Components lists the component names known to ComponentVersion
func Components() []string {
	return []string{"parser", "lower", "ast", "grammar"}
}

// String returns the one line version banner
func String() string {
	return fmt.Sprintf("expar %s (commit %s, built %s, %s %s/%s)",
		Module, Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
