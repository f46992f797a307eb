// File: visitor.go
// Title: Expression AST Visitor Pattern Implementation
// Description: Implements double dispatch over the six AST node kinds. Provides
//              the Visitor interface, a BaseVisitor with structural depth-first
//              recursion and the stock visitors used by printers and
//              analyzers (symbolic, debug and tree rendering, collection,
//              validation).
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial visitor framework and stock visitors

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Visitor receives one callback per concrete node kind. Returning a non-nil
// error stops the traversal and is propagated to the caller of Accept.
type Visitor interface {
	VisitBinaryExpr(expr *BinaryExpr) error
	VisitUnaryExpr(expr *UnaryExpr) error
	VisitScopeExpr(expr *ScopeExpr) error
	VisitFunctionCall(expr *FunctionCall) error
	VisitVariable(expr *Variable) error
	VisitNumberLiteral(expr *NumberLiteral) error
}

// BaseVisitor provides structural recursion for every node kind: left then
// right, operand, inner, arguments in order. Leaves are no-ops.
//
// Embed it in concrete visitors and call Bind with the embedding visitor so
// that recursion below the first level reaches the overridden methods.
type BaseVisitor struct {
	self Visitor
}

// Bind routes child dispatch through v
func (bv *BaseVisitor) Bind(v Visitor) {
	bv.self = v
}

func (bv *BaseVisitor) dispatcher() Visitor {
	if bv.self != nil {
		return bv.self
	}
	return bv
}

func (bv *BaseVisitor) VisitBinaryExpr(expr *BinaryExpr) error {
	v := bv.dispatcher()
	if expr.left != nil {
		if err := expr.left.Accept(v); err != nil {
			return err
		}
	}
	if expr.right != nil {
		return expr.right.Accept(v)
	}
	return nil
}

func (bv *BaseVisitor) VisitUnaryExpr(expr *UnaryExpr) error {
	if expr.operand != nil {
		return expr.operand.Accept(bv.dispatcher())
	}
	return nil
}

func (bv *BaseVisitor) VisitScopeExpr(expr *ScopeExpr) error {
	if expr.inner != nil {
		return expr.inner.Accept(bv.dispatcher())
	}
	return nil
}

func (bv *BaseVisitor) VisitFunctionCall(expr *FunctionCall) error {
	v := bv.dispatcher()
	for _, arg := range expr.args {
		if arg == nil {
			continue
		}
		if err := arg.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

func (bv *BaseVisitor) VisitVariable(expr *Variable) error {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitNumberLiteral(expr *NumberLiteral) error {
	return nil // Terminal node
}

// Walk dispatches node to v. A nil node is ignored.
func Walk(v Visitor, node Node) error {
	if node == nil {
		return nil
	}
	return node.Accept(v)
}

// WalkChildren visits the direct children of node with v in declaration order,
// without calling v for node itself.
func WalkChildren(v Visitor, node Node) error {
	base := &BaseVisitor{self: v}
	switch n := node.(type) {
	case *BinaryExpr:
		return base.VisitBinaryExpr(n)
	case *UnaryExpr:
		return base.VisitUnaryExpr(n)
	case *ScopeExpr:
		return base.VisitScopeExpr(n)
	case *FunctionCall:
		return base.VisitFunctionCall(n)
	}
	return nil
}

// FormatNumber renders a literal value in its shortest round-trip form
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// StringVisitor renders the symbolic form of an expression ("(1+2)*3")
type StringVisitor struct {
	BaseVisitor
	buffer strings.Builder
}

// NewStringVisitor creates a new string visitor
func NewStringVisitor() *StringVisitor {
	sv := &StringVisitor{}
	sv.Bind(sv)
	return sv
}

// String returns the rendered expression
func (sv *StringVisitor) String() string {
	return sv.buffer.String()
}

// Reset clears the internal buffer
func (sv *StringVisitor) Reset() {
	sv.buffer.Reset()
}

func (sv *StringVisitor) child(node Node) error {
	if node == nil {
		sv.buffer.WriteString("NULL")
		return nil
	}
	return node.Accept(sv)
}

func (sv *StringVisitor) VisitBinaryExpr(expr *BinaryExpr) error {
	if err := sv.child(expr.left); err != nil {
		return err
	}
	sv.buffer.WriteString(expr.op.String())
	return sv.child(expr.right)
}

func (sv *StringVisitor) VisitUnaryExpr(expr *UnaryExpr) error {
	sv.buffer.WriteString(expr.op.String())
	return sv.child(expr.operand)
}

func (sv *StringVisitor) VisitScopeExpr(expr *ScopeExpr) error {
	sv.buffer.WriteString(expr.scope.Open())
	if err := sv.child(expr.inner); err != nil {
		return err
	}
	sv.buffer.WriteString(expr.scope.Close())
	return nil
}

func (sv *StringVisitor) VisitFunctionCall(expr *FunctionCall) error {
	sv.buffer.WriteString(expr.name)
	sv.buffer.WriteString("(")
	for i, arg := range expr.args {
		if i > 0 {
			sv.buffer.WriteString(", ")
		}
		if err := sv.child(arg); err != nil {
			return err
		}
	}
	sv.buffer.WriteString(")")
	return nil
}

func (sv *StringVisitor) VisitVariable(expr *Variable) error {
	sv.buffer.WriteString(expr.name)
	return nil
}

func (sv *StringVisitor) VisitNumberLiteral(expr *NumberLiteral) error {
	sv.buffer.WriteString(FormatNumber(expr.value))
	return nil
}

// DebugVisitor renders every node wrapped in its kind name
// ("Binary[Number[1]+Number[2]]")
type DebugVisitor struct {
	StringVisitor
}

// NewDebugVisitor creates a new debug visitor
func NewDebugVisitor() *DebugVisitor {
	dv := &DebugVisitor{}
	dv.Bind(dv)
	return dv
}

func (dv *DebugVisitor) child(node Node) error {
	if node == nil {
		dv.buffer.WriteString("NULL")
		return nil
	}
	return node.Accept(dv)
}

func (dv *DebugVisitor) VisitBinaryExpr(expr *BinaryExpr) error {
	dv.buffer.WriteString("Binary[")
	if err := dv.child(expr.left); err != nil {
		return err
	}
	dv.buffer.WriteString(expr.op.String())
	if err := dv.child(expr.right); err != nil {
		return err
	}
	dv.buffer.WriteString("]")
	return nil
}

func (dv *DebugVisitor) VisitUnaryExpr(expr *UnaryExpr) error {
	dv.buffer.WriteString("Unary[")
	dv.buffer.WriteString(expr.op.String())
	if err := dv.child(expr.operand); err != nil {
		return err
	}
	dv.buffer.WriteString("]")
	return nil
}

func (dv *DebugVisitor) VisitScopeExpr(expr *ScopeExpr) error {
	dv.buffer.WriteString("Scope[")
	dv.buffer.WriteString(expr.scope.Open())
	if err := dv.child(expr.inner); err != nil {
		return err
	}
	dv.buffer.WriteString(expr.scope.Close())
	dv.buffer.WriteString("]")
	return nil
}

func (dv *DebugVisitor) VisitFunctionCall(expr *FunctionCall) error {
	dv.buffer.WriteString("Function[")
	dv.buffer.WriteString(expr.name)
	dv.buffer.WriteString("(")
	for i, arg := range expr.args {
		if i > 0 {
			dv.buffer.WriteString(", ")
		}
		if err := dv.child(arg); err != nil {
			return err
		}
	}
	dv.buffer.WriteString(")]")
	return nil
}

func (dv *DebugVisitor) VisitVariable(expr *Variable) error {
	dv.buffer.WriteString(fmt.Sprintf("Variable[%s]", expr.name))
	return nil
}

func (dv *DebugVisitor) VisitNumberLiteral(expr *NumberLiteral) error {
	dv.buffer.WriteString(fmt.Sprintf("Number[%s]", FormatNumber(expr.value)))
	return nil
}

// TreeVisitor renders one node per line, children indented below their parent
type TreeVisitor struct {
	BaseVisitor
	buffer strings.Builder
	indent int
}

// NewTreeVisitor creates a new tree visitor
func NewTreeVisitor() *TreeVisitor {
	tv := &TreeVisitor{}
	tv.Bind(tv)
	return tv
}

// String returns the rendered tree
func (tv *TreeVisitor) String() string {
	return tv.buffer.String()
}

func (tv *TreeVisitor) line(format string, args ...interface{}) {
	for i := 0; i < tv.indent; i++ {
		tv.buffer.WriteString("  ")
	}
	tv.buffer.WriteString(fmt.Sprintf(format, args...))
	tv.buffer.WriteString("\n")
}

func (tv *TreeVisitor) nested(fn func() error) error {
	tv.indent++
	defer func() { tv.indent-- }()
	return fn()
}

func (tv *TreeVisitor) VisitBinaryExpr(expr *BinaryExpr) error {
	tv.line("BinaryExpr %s (%s)", expr.op.Name(), expr.op)
	return tv.nested(func() error { return tv.BaseVisitor.VisitBinaryExpr(expr) })
}

func (tv *TreeVisitor) VisitUnaryExpr(expr *UnaryExpr) error {
	tv.line("UnaryExpr %s (%s)", expr.op.Name(), expr.op)
	return tv.nested(func() error { return tv.BaseVisitor.VisitUnaryExpr(expr) })
}

func (tv *TreeVisitor) VisitScopeExpr(expr *ScopeExpr) error {
	tv.line("ScopeExpr %s (%s)", expr.scope.Name(), expr.scope)
	return tv.nested(func() error { return tv.BaseVisitor.VisitScopeExpr(expr) })
}

func (tv *TreeVisitor) VisitFunctionCall(expr *FunctionCall) error {
	tv.line("FunctionCall %s/%d", expr.name, len(expr.args))
	return tv.nested(func() error { return tv.BaseVisitor.VisitFunctionCall(expr) })
}

func (tv *TreeVisitor) VisitVariable(expr *Variable) error {
	tv.line("Variable %s", expr.name)
	return nil
}

func (tv *TreeVisitor) VisitNumberLiteral(expr *NumberLiteral) error {
	tv.line("NumberLiteral %s", FormatNumber(expr.value))
	return nil
}

// CollectorVisitor collects leaves and function calls in traversal order
type CollectorVisitor struct {
	BaseVisitor
	Variables []*Variable
	Functions []*FunctionCall
	Numbers   []*NumberLiteral
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	cv := &CollectorVisitor{
		Variables: make([]*Variable, 0),
		Functions: make([]*FunctionCall, 0),
		Numbers:   make([]*NumberLiteral, 0),
	}
	cv.Bind(cv)
	return cv
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Variables = cv.Variables[:0]
	cv.Functions = cv.Functions[:0]
	cv.Numbers = cv.Numbers[:0]
}

// VariableNames returns the distinct variable names in first-seen order
func (cv *CollectorVisitor) VariableNames() []string {
	seen := make(map[string]bool, len(cv.Variables))
	names := make([]string, 0, len(cv.Variables))
	for _, v := range cv.Variables {
		if !seen[v.name] {
			seen[v.name] = true
			names = append(names, v.name)
		}
	}
	return names
}

func (cv *CollectorVisitor) VisitFunctionCall(expr *FunctionCall) error {
	cv.Functions = append(cv.Functions, expr)
	return cv.BaseVisitor.VisitFunctionCall(expr)
}

func (cv *CollectorVisitor) VisitVariable(expr *Variable) error {
	cv.Variables = append(cv.Variables, expr)
	return nil
}

func (cv *CollectorVisitor) VisitNumberLiteral(expr *NumberLiteral) error {
	cv.Numbers = append(cv.Numbers, expr)
	return nil
}

// ValidationVisitor validates every node of a tree and collects the failures
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	vv := &ValidationVisitor{errors: make([]error, 0)}
	vv.Bind(vv)
	return vv
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) check(node Node) {
	if err := node.Validate(); err != nil {
		vv.errors = append(vv.errors, fmt.Errorf("%s: %w", node.Position(), err))
	}
}

func (vv *ValidationVisitor) VisitBinaryExpr(expr *BinaryExpr) error {
	vv.check(expr)
	return vv.BaseVisitor.VisitBinaryExpr(expr)
}

func (vv *ValidationVisitor) VisitUnaryExpr(expr *UnaryExpr) error {
	vv.check(expr)
	return vv.BaseVisitor.VisitUnaryExpr(expr)
}

func (vv *ValidationVisitor) VisitScopeExpr(expr *ScopeExpr) error {
	vv.check(expr)
	return vv.BaseVisitor.VisitScopeExpr(expr)
}

func (vv *ValidationVisitor) VisitFunctionCall(expr *FunctionCall) error {
	vv.check(expr)
	return vv.BaseVisitor.VisitFunctionCall(expr)
}

func (vv *ValidationVisitor) VisitVariable(expr *Variable) error {
	vv.check(expr)
	return nil
}

func (vv *ValidationVisitor) VisitNumberLiteral(expr *NumberLiteral) error {
	vv.check(expr)
	return nil
}

// Utility functions for working with visitors

// ASTToString returns the symbolic rendering of node
func ASTToString(node Node) string {
	visitor := NewStringVisitor()
	_ = Walk(visitor, node)
	return visitor.String()
}

// ASTToDebugString returns the kind-tagged rendering of node
func ASTToDebugString(node Node) string {
	visitor := NewDebugVisitor()
	_ = Walk(visitor, node)
	return visitor.String()
}

// ASTToTree returns the indented multi-line rendering of node
func ASTToTree(node Node) string {
	visitor := NewTreeVisitor()
	_ = Walk(visitor, node)
	return visitor.String()
}

// ValidateAST validates every node reachable from node
func ValidateAST(node Node) []error {
	if node == nil {
		return []error{fmt.Errorf("tree is empty")}
	}
	visitor := NewValidationVisitor()
	_ = Walk(visitor, node)
	return visitor.Errors()
}

// CollectNodes collects leaves and function calls of the tree under node
func CollectNodes(node Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	_ = Walk(visitor, node)
	return visitor
}
