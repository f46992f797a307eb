// File: errors.go
// Title: Lowering Error Kinds
// Description: Typed failures of the lowering engine. Each carries the
//              grammar production and source position at which lowering
//              stopped. All of them are fatal for the input being lowered.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial error kinds

package lower

import (
	"fmt"
	"strings"

	mdwast "github.com/msto63/expar/foundation/expar/ast"
)

// DisambiguationError reports a token combination that maps to no operator
// or scope kind
type DisambiguationError struct {
	Production string
	Tokens     []string
	Position   mdwast.Position
	Reason     string
}

func (e *DisambiguationError) Error() string {
	return fmt.Sprintf("%s at %s: %s [%s]",
		e.Production, e.Position, e.Reason, strings.Join(e.Tokens, " "))
}

// StructuralError reports an attachment or kind resolution against an
// incompatible or missing stack top. It points at a defect in the parse tree
// or its producer rather than at the user's input.
type StructuralError struct {
	Production string
	Position   mdwast.Position
	Reason     string
}

func (e *StructuralError) Error() string {
	if e.Production == "" {
		return fmt.Sprintf("structural error: %s", e.Reason)
	}
	return fmt.Sprintf("structural error in %s at %s: %s", e.Production, e.Position, e.Reason)
}

// LiteralConversionError reports a numeric token that is not a finite
// floating-point value
type LiteralConversionError struct {
	Production string
	Text       string
	Position   mdwast.Position
	Err        error
}

func (e *LiteralConversionError) Error() string {
	return fmt.Sprintf("%s at %s: cannot convert %q to a finite number: %v",
		e.Production, e.Position, e.Text, e.Err)
}

func (e *LiteralConversionError) Unwrap() error {
	return e.Err
}
