// File: builder.go
// Title: Stack-Based AST Builder
// Description: Listens to a parse tree walk and assembles the expression AST.
//              Operator, unary, scope and function call productions open a
//              frame on the construction stack; atoms are attached directly
//              to the frame on top. Frames are checked and turned into
//              immutable nodes when their production exits.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial builder implementation

package lower

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	mdwast "github.com/msto63/expar/foundation/expar/ast"
	pt "github.com/msto63/expar/foundation/expar/parsetree"
)

type frameKind int

const (
	frameBinary frameKind = iota
	frameUnary
	frameScope
	frameCall
)

var frameKindNames = [...]string{
	frameBinary: "binary",
	frameUnary:  "unary",
	frameScope:  "scope",
	frameCall:   "function call",
}

func (k frameKind) String() string {
	return frameKindNames[k]
}

// slots is the number of children a frame accepts, -1 for unlimited
func (k frameKind) slots() int {
	switch k {
	case frameBinary:
		return 2
	case frameUnary, frameScope:
		return 1
	}
	return -1
}

// frame is an AST node under construction
type frame struct {
	kind       frameKind
	production string
	pos        mdwast.Position
	op         mdwast.Operator
	scope      mdwast.ScopeType
	closed     bool // scope saw its closing bracket
	name       string
	children   []mdwast.Node
}

// Builder implements pt.Listener. A Builder lowers exactly one tree and is
// not safe for concurrent use.
type Builder struct {
	pt.BaseListener
	stack   []*frame
	root    mdwast.Node
	hasRoot bool
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Result returns the finished tree. It fails while frames are still open or
// when no root was produced.
func (b *Builder) Result() (mdwast.Node, error) {
	if len(b.stack) > 0 {
		top := b.stack[len(b.stack)-1]
		return nil, &StructuralError{
			Production: top.production,
			Position:   top.pos,
			Reason:     fmt.Sprintf("lowering finished with %d open frame(s)", len(b.stack)),
		}
	}
	if !b.hasRoot {
		return nil, &StructuralError{Reason: "lowering finished without a root"}
	}
	return b.root, nil
}

// Depth returns the number of open frames
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Stack events

func (b *Builder) push(f *frame) {
	b.stack = append(b.stack, f)
}

func (b *Builder) top() *frame {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

func (b *Builder) pop(t *pt.Tree, kind frameKind) (*frame, error) {
	f := b.top()
	if f == nil {
		return nil, structural(t, "pop on empty stack")
	}
	if f.kind != kind {
		return nil, structural(t, fmt.Sprintf("exit of %s production while %s frame is open", kind, f.kind))
	}
	b.stack = b.stack[:len(b.stack)-1]
	return f, nil
}

// attach places node into the next free slot of the stack top, or records it
// as root when the stack is empty
func (b *Builder) attach(t *pt.Tree, node mdwast.Node) error {
	f := b.top()
	if f == nil {
		if b.hasRoot {
			return structural(t, "root already set")
		}
		b.root = node
		b.hasRoot = true
		return nil
	}
	if limit := f.kind.slots(); limit >= 0 && len(f.children) >= limit {
		return structural(t, fmt.Sprintf("%s frame already has %d child(ren)", f.kind, limit))
	}
	f.children = append(f.children, node)
	return nil
}

// closeFrame checks a popped frame and attaches the node it describes
func (b *Builder) closeFrame(t *pt.Tree, kind frameKind) error {
	f, err := b.pop(t, kind)
	if err != nil {
		return err
	}
	node, err := f.materialize()
	if err != nil {
		return err
	}
	return b.attach(t, node)
}

func (f *frame) incomplete(reason string) error {
	return &StructuralError{Production: f.production, Position: f.pos, Reason: reason}
}

func (f *frame) materialize() (mdwast.Node, error) {
	factory := mdwast.At(f.pos)
	switch f.kind {
	case frameBinary:
		if !f.op.IsValid() {
			return nil, f.incomplete("binary operator never resolved")
		}
		if len(f.children) != 2 {
			return nil, f.incomplete(fmt.Sprintf("binary expression has %d of 2 operands", len(f.children)))
		}
		return factory.Binary(f.op, f.children[0], f.children[1]), nil
	case frameUnary:
		if !f.op.IsValid() {
			return nil, f.incomplete("unary operator never resolved")
		}
		if len(f.children) != 1 {
			return nil, f.incomplete("unary expression has no operand")
		}
		return factory.Unary(f.op, f.children[0]), nil
	case frameScope:
		if !f.scope.IsValid() {
			return nil, f.incomplete("scope kind never resolved")
		}
		if !f.closed {
			return nil, f.incomplete(fmt.Sprintf("scope %s never closed", f.scope.Open()))
		}
		if len(f.children) != 1 {
			return nil, f.incomplete("scope has no inner expression")
		}
		return factory.Scope(f.scope, f.children[0]), nil
	}
	return factory.Function(f.name, f.children...), nil
}

// Listener events

// isBinary reports whether a value production is "value value_operator value"
func isBinary(t *pt.Tree) bool {
	_, hasOperator := t.Subtree(pt.KindOperator)
	return hasOperator && len(t.Subtrees(pt.KindValue)) == 2
}

func (b *Builder) open(t *pt.Tree, kind frameKind) *frame {
	f := &frame{kind: kind, production: t.Kind.String(), pos: position(t.Position())}
	b.push(f)
	return f
}

func (b *Builder) EnterValue(t *pt.Tree) error {
	if isBinary(t) {
		b.open(t, frameBinary)
	}
	return nil
}

func (b *Builder) ExitValue(t *pt.Tree) error {
	if isBinary(t) {
		return b.closeFrame(t, frameBinary)
	}
	return nil
}

func (b *Builder) EnterUnary(t *pt.Tree) error {
	b.open(t, frameUnary)
	return nil
}

func (b *Builder) ExitUnary(t *pt.Tree) error {
	return b.closeFrame(t, frameUnary)
}

func (b *Builder) EnterScope(t *pt.Tree) error {
	b.open(t, frameScope)
	return nil
}

func (b *Builder) ExitScope(t *pt.Tree) error {
	return b.closeFrame(t, frameScope)
}

func (b *Builder) EnterFunctionCall(t *pt.Tree) error {
	name, ok := t.Token(pt.TokenID)
	if !ok || name.Text == "" {
		return structural(t, "function call without a name")
	}
	b.open(t, frameCall).name = name.Text
	return nil
}

func (b *Builder) ExitFunctionCall(t *pt.Tree) error {
	return b.closeFrame(t, frameCall)
}

// EnterOperator resolves the operator of the binary or unary frame on top
func (b *Builder) EnterOperator(t *pt.Tree) error {
	f := b.top()
	if f == nil {
		return structural(t, "operator outside of any expression")
	}

	var resolveFn func([]pt.Token) (mdwast.Operator, bool)
	switch f.kind {
	case frameBinary:
		resolveFn = ResolveBinary
	case frameUnary:
		resolveFn = ResolveUnary
	default:
		return structural(t, fmt.Sprintf("operator inside %s frame", f.kind))
	}
	if f.op != mdwast.OpNone {
		return structural(t, fmt.Sprintf("%s operator already resolved as %s", f.kind, f.op.Name()))
	}

	tokens := t.DirectTokens()
	op, ok := resolveFn(tokens)
	if !ok {
		return disambiguation(t, tokens, fmt.Sprintf("no %s operator matches", f.kind))
	}
	f.op = op
	return nil
}

// EnterBracket resolves the scope kind on the first bracket and checks the
// second against it
func (b *Builder) EnterBracket(t *pt.Tree) error {
	f := b.top()
	if f == nil || f.kind != frameScope {
		return structural(t, "bracket outside of a scope")
	}

	tokens := t.DirectTokens()
	if len(tokens) != 1 {
		return disambiguation(t, tokens, "a bracket production needs exactly one bracket")
	}
	scope, opening, ok := ResolveScope(tokens[0])
	if !ok {
		return disambiguation(t, tokens, "not a bracket")
	}

	switch {
	case f.scope == mdwast.ScpNone:
		if !opening {
			return disambiguation(t, tokens, "scope starts with a closing bracket")
		}
		f.scope = scope
	case f.closed:
		return structural(t, fmt.Sprintf("scope %s already closed", f.scope))
	default:
		if opening || scope != f.scope {
			return disambiguation(t, tokens, fmt.Sprintf("expected '%s'", f.scope.Close()))
		}
		f.closed = true
	}
	return nil
}

// EnterAtom builds a leaf and attaches it to the stack top
func (b *Builder) EnterAtom(t *pt.Tree) error {
	tokens := t.DirectTokens()
	if len(tokens) != 1 {
		return disambiguation(t, tokens, "an atom needs exactly one token")
	}
	tok := tokens[0]
	factory := mdwast.At(position(tok.Pos))

	var leaf mdwast.Node
	switch tok.Type {
	case pt.TokenNumber:
		value, err := ConvertNumber(tok.Text)
		if err != nil {
			return &LiteralConversionError{
				Production: t.Kind.String(),
				Text:       tok.Text,
				Position:   position(tok.Pos),
				Err:        err,
			}
		}
		leaf = factory.Number(value)
	case pt.TokenID, pt.TokenHex, pt.TokenPercentage:
		leaf = factory.Variable(tok.Text)
	default:
		return disambiguation(t, tokens, fmt.Sprintf("%s is not an atom", tok.Type))
	}
	return b.attach(t, leaf)
}

// ConvertNumber parses a decimal literal with an optional trailing SI prefix
// letter ("4.7k" is 4700). The prefix is folded into the decimal exponent so
// that "4.7u" yields the same float64 as "4.7e-6". The result must be finite.
func ConvertNumber(text string) (float64, error) {
	if n := len(text); n > 1 && isASCIILetter(text[n-1]) {
		prefix := mdwast.SiPrefixFromLetter(text[n-1])
		if prefix == mdwast.SiNone {
			return 0, fmt.Errorf("unknown SI prefix %q", text[n-1])
		}
		mantissa, exponent := text[:n-1], 0
		if i := strings.IndexAny(mantissa, "eE"); i >= 0 {
			e, err := strconv.Atoi(mantissa[i+1:])
			if err != nil {
				return 0, err
			}
			mantissa, exponent = mantissa[:i], e
		}
		exponent += int(math.Round(math.Log10(prefix.ScalingFactor())))
		text = mantissa + "e" + strconv.Itoa(exponent)
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("value out of range")
	}
	return value, nil
}

func isASCIILetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// Helpers

func position(p pt.Position) mdwast.Position {
	return mdwast.Position{Line: p.Line, Column: p.Column, Offset: p.Offset}
}

func structural(t *pt.Tree, reason string) error {
	return &StructuralError{Production: t.Kind.String(), Position: position(t.Position()), Reason: reason}
}

func disambiguation(t *pt.Tree, tokens []pt.Token, reason string) error {
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	return &DisambiguationError{
		Production: t.Kind.String(),
		Tokens:     texts,
		Position:   position(t.Position()),
		Reason:     reason,
	}
}
