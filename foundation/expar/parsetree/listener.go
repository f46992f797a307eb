// File: listener.go
// Title: Parse Tree Listener and Walker
// Description: Event interface for depth-first traversal of a parse tree and
//              the walker that drives it. Listeners receive enter/exit events
//              per production kind and one event per token.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial listener and walker
// - 2026-10-17 v0.1.1: MalformedError for nil children and unknown kinds

package parsetree

import (
	"errors"
	"fmt"
)

// ErrMalformed matches every *MalformedError with errors.Is
var ErrMalformed = errors.New("parsetree: malformed tree")

// MalformedError reports a tree the walker cannot traverse: a nil production,
// a nil child or a production kind outside the grammar
type MalformedError struct {
	Production string
	Position   Position
	Reason     string
}

func (e *MalformedError) Error() string {
	if e.Production == "" {
		return fmt.Sprintf("parsetree: %s", e.Reason)
	}
	return fmt.Sprintf("parsetree: %s in %s at %s", e.Reason, e.Production, e.Position)
}

// Is makes errors.Is(err, ErrMalformed) hold
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

// Listener receives traversal events. A non-nil error aborts the walk.
type Listener interface {
	EnterValue(t *Tree) error
	ExitValue(t *Tree) error
	EnterUnary(t *Tree) error
	ExitUnary(t *Tree) error
	EnterFunctionCall(t *Tree) error
	ExitFunctionCall(t *Tree) error
	EnterScope(t *Tree) error
	ExitScope(t *Tree) error
	EnterBracket(t *Tree) error
	ExitBracket(t *Tree) error
	EnterOperator(t *Tree) error
	ExitOperator(t *Tree) error
	EnterAtom(t *Tree) error
	ExitAtom(t *Tree) error
	VisitTerminal(tok Token) error
}

// BaseListener implements Listener with no-ops. Embed it and override
// the events of interest.
type BaseListener struct{}

func (BaseListener) EnterValue(*Tree) error        { return nil }
func (BaseListener) ExitValue(*Tree) error         { return nil }
func (BaseListener) EnterUnary(*Tree) error        { return nil }
func (BaseListener) ExitUnary(*Tree) error         { return nil }
func (BaseListener) EnterFunctionCall(*Tree) error { return nil }
func (BaseListener) ExitFunctionCall(*Tree) error  { return nil }
func (BaseListener) EnterScope(*Tree) error        { return nil }
func (BaseListener) ExitScope(*Tree) error         { return nil }
func (BaseListener) EnterBracket(*Tree) error      { return nil }
func (BaseListener) ExitBracket(*Tree) error       { return nil }
func (BaseListener) EnterOperator(*Tree) error     { return nil }
func (BaseListener) ExitOperator(*Tree) error      { return nil }
func (BaseListener) EnterAtom(*Tree) error         { return nil }
func (BaseListener) ExitAtom(*Tree) error          { return nil }
func (BaseListener) VisitTerminal(Token) error     { return nil }

// Walk traverses t depth-first, left to right: enter, children, exit.
// It stops at the first error returned by l.
func Walk(l Listener, t *Tree) error {
	if t == nil {
		return &MalformedError{Reason: "walk of nil tree"}
	}
	if !t.Kind.IsValid() {
		return &MalformedError{
			Production: t.Kind.String(),
			Position:   t.Position(),
			Reason:     "unknown production",
		}
	}
	for i, child := range t.Children {
		if IsNil(child) {
			return &MalformedError{
				Production: t.Kind.String(),
				Position:   t.Position(),
				Reason:     fmt.Sprintf("nil child %d", i),
			}
		}
	}
	if err := enter(l, t); err != nil {
		return err
	}
	for _, child := range t.Children {
		switch c := child.(type) {
		case *Tree:
			if err := Walk(l, c); err != nil {
				return err
			}
		case *Terminal:
			if err := l.VisitTerminal(c.Token); err != nil {
				return err
			}
		}
	}
	return exit(l, t)
}

func enter(l Listener, t *Tree) error {
	switch t.Kind {
	case KindValue:
		return l.EnterValue(t)
	case KindUnary:
		return l.EnterUnary(t)
	case KindFunctionCall:
		return l.EnterFunctionCall(t)
	case KindScope:
		return l.EnterScope(t)
	case KindBracket:
		return l.EnterBracket(t)
	case KindOperator:
		return l.EnterOperator(t)
	case KindAtom:
		return l.EnterAtom(t)
	}
	return fmt.Errorf("parsetree: unknown production %s", t.Kind)
}

func exit(l Listener, t *Tree) error {
	switch t.Kind {
	case KindValue:
		return l.ExitValue(t)
	case KindUnary:
		return l.ExitUnary(t)
	case KindFunctionCall:
		return l.ExitFunctionCall(t)
	case KindScope:
		return l.ExitScope(t)
	case KindBracket:
		return l.ExitBracket(t)
	case KindOperator:
		return l.ExitOperator(t)
	case KindAtom:
		return l.ExitAtom(t)
	}
	return fmt.Errorf("parsetree: unknown production %s", t.Kind)
}
