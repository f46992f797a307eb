// File: nodes.go
// Title: Expression AST Node Definitions
// Description: Defines the six node kinds of the expression AST (binary,
//              unary, scope, function call, variable, number literal), the
//              Factory used to construct them and per-node validation.
//              Nodes are immutable once constructed.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"math"
	"strings"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns the symbolic rendering of the node
	String() string

	// Accept dispatches to the visitor method for the concrete node kind
	Accept(visitor Visitor) error

	// Position returns the source position of the node
	Position() Position

	// Validate checks the node's own invariants (children are not visited)
	Validate() error
}

// Position represents a position in the source expression
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// BinaryExpr represents "left op right"
type BinaryExpr struct {
	op    Operator
	left  Node
	right Node
	pos   Position
}

// UnaryExpr represents "op operand"
type UnaryExpr struct {
	op      Operator
	operand Node
	pos     Position
}

// ScopeExpr represents a bracketed sub-expression
type ScopeExpr struct {
	scope ScopeType
	inner Node
	pos   Position
}

// FunctionCall represents "name(arg, ...)"
type FunctionCall struct {
	name string
	args []Node
	pos  Position
}

// Variable represents an identifier, hex constant or percentage atom
type Variable struct {
	name string
	pos  Position
}

// NumberLiteral represents a decimal numeric literal
type NumberLiteral struct {
	value float64
	pos   Position
}

// Factory constructs AST nodes stamped with Pos
type Factory struct {
	Pos Position
}

// At returns a factory that stamps nodes with pos
func At(pos Position) Factory {
	return Factory{Pos: pos}
}

func (f Factory) Binary(op Operator, left, right Node) *BinaryExpr {
	return &BinaryExpr{op: op, left: left, right: right, pos: f.Pos}
}

func (f Factory) Unary(op Operator, operand Node) *UnaryExpr {
	return &UnaryExpr{op: op, operand: operand, pos: f.Pos}
}

func (f Factory) Scope(scope ScopeType, inner Node) *ScopeExpr {
	return &ScopeExpr{scope: scope, inner: inner, pos: f.Pos}
}

// Function copies args so later changes to the caller's slice are not observed
func (f Factory) Function(name string, args ...Node) *FunctionCall {
	copied := make([]Node, len(args))
	copy(copied, args)
	return &FunctionCall{name: name, args: copied, pos: f.Pos}
}

func (f Factory) Variable(name string) *Variable {
	return &Variable{name: name, pos: f.Pos}
}

func (f Factory) Number(value float64) *NumberLiteral {
	return &NumberLiteral{value: value, pos: f.Pos}
}

// BinaryExpr

func (e *BinaryExpr) Operator() Operator { return e.op }
func (e *BinaryExpr) Left() Node         { return e.left }
func (e *BinaryExpr) Right() Node        { return e.right }

func (e *BinaryExpr) String() string {
	return ASTToString(e)
}

func (e *BinaryExpr) Accept(visitor Visitor) error {
	return visitor.VisitBinaryExpr(e)
}

func (e *BinaryExpr) Position() Position {
	return e.pos
}

func (e *BinaryExpr) Validate() error {
	if !e.op.IsValid() {
		return fmt.Errorf("binary expression has no operator")
	}
	if e.left == nil {
		return fmt.Errorf("binary expression %s is missing its left operand", e.op)
	}
	if e.right == nil {
		return fmt.Errorf("binary expression %s is missing its right operand", e.op)
	}
	return nil
}

// UnaryExpr

func (e *UnaryExpr) Operator() Operator { return e.op }
func (e *UnaryExpr) Operand() Node      { return e.operand }

func (e *UnaryExpr) String() string {
	return ASTToString(e)
}

func (e *UnaryExpr) Accept(visitor Visitor) error {
	return visitor.VisitUnaryExpr(e)
}

func (e *UnaryExpr) Position() Position {
	return e.pos
}

func (e *UnaryExpr) Validate() error {
	if !e.op.IsValid() {
		return fmt.Errorf("unary expression has no operator")
	}
	if e.operand == nil {
		return fmt.Errorf("unary expression %s is missing its operand", e.op)
	}
	return nil
}

// ScopeExpr

func (e *ScopeExpr) Scope() ScopeType { return e.scope }
func (e *ScopeExpr) Inner() Node      { return e.inner }

func (e *ScopeExpr) String() string {
	return ASTToString(e)
}

func (e *ScopeExpr) Accept(visitor Visitor) error {
	return visitor.VisitScopeExpr(e)
}

func (e *ScopeExpr) Position() Position {
	return e.pos
}

func (e *ScopeExpr) Validate() error {
	if !e.scope.IsValid() {
		return fmt.Errorf("scope expression has no bracket type")
	}
	if e.inner == nil {
		return fmt.Errorf("scope expression %s is empty", e.scope)
	}
	return nil
}

// FunctionCall

func (e *FunctionCall) Name() string { return e.name }

// Args returns a copy of the arguments in source order
func (e *FunctionCall) Args() []Node {
	args := make([]Node, len(e.args))
	copy(args, e.args)
	return args
}

// NumArgs returns the number of arguments
func (e *FunctionCall) NumArgs() int { return len(e.args) }

// Arg returns the i-th argument
func (e *FunctionCall) Arg(i int) Node { return e.args[i] }

func (e *FunctionCall) String() string {
	return ASTToString(e)
}

func (e *FunctionCall) Accept(visitor Visitor) error {
	return visitor.VisitFunctionCall(e)
}

func (e *FunctionCall) Position() Position {
	return e.pos
}

func (e *FunctionCall) Validate() error {
	if strings.TrimSpace(e.name) == "" {
		return fmt.Errorf("function call has no name")
	}
	for i, arg := range e.args {
		if arg == nil {
			return fmt.Errorf("function %s: argument %d is missing", e.name, i)
		}
	}
	return nil
}

// Variable

func (e *Variable) Name() string { return e.name }

func (e *Variable) String() string {
	return e.name
}

func (e *Variable) Accept(visitor Visitor) error {
	return visitor.VisitVariable(e)
}

func (e *Variable) Position() Position {
	return e.pos
}

func (e *Variable) Validate() error {
	if strings.TrimSpace(e.name) == "" {
		return fmt.Errorf("variable name is required")
	}
	return nil
}

// NumberLiteral

func (e *NumberLiteral) Value() float64 { return e.value }

func (e *NumberLiteral) String() string {
	return FormatNumber(e.value)
}

func (e *NumberLiteral) Accept(visitor Visitor) error {
	return visitor.VisitNumberLiteral(e)
}

func (e *NumberLiteral) Position() Position {
	return e.pos
}

func (e *NumberLiteral) Validate() error {
	if math.IsNaN(e.value) || math.IsInf(e.value, 0) {
		return fmt.Errorf("number literal %v is not finite", e.value)
	}
	return nil
}
