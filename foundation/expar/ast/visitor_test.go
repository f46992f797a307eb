// File: visitor_test.go
// Title: Expression AST Visitor Unit Tests
// Description: Unit tests for the visitor framework covering dispatch per
//              node kind, left-to-right depth-first order, override routing
//              through Bind, early termination on error and the stock
//              rendering, collecting and validating visitors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial visitor test suite

package ast

import (
	"errors"
	"strings"
	"testing"
)

// Helper functions for creating test AST nodes

// ((1+2)+3)+4
func createLeftChain() Node {
	f := Factory{}
	return f.Binary(OpPlus,
		f.Binary(OpPlus,
			f.Binary(OpPlus, f.Number(1), f.Number(2)),
			f.Number(3)),
		f.Number(4))
}

// (1+2)*(3+4)
func createScopedProduct() Node {
	f := Factory{}
	return f.Binary(OpMult,
		f.Scope(ScpRound, f.Binary(OpPlus, f.Number(1), f.Number(2))),
		f.Scope(ScpRound, f.Binary(OpPlus, f.Number(3), f.Number(4))))
}

// -1+(-2)
func createUnarySum() Node {
	f := Factory{}
	return f.Binary(OpPlus,
		f.Unary(OpMinus, f.Number(1)),
		f.Scope(ScpRound, f.Unary(OpMinus, f.Number(2))))
}

// A(1, 2, 3)
func createCall() Node {
	f := Factory{}
	return f.Function("A", f.Number(1), f.Number(2), f.Number(3))
}

// orderVisitor records a label for every node it reaches
type orderVisitor struct {
	BaseVisitor
	seen []string
}

func newOrderVisitor() *orderVisitor {
	ov := &orderVisitor{}
	ov.Bind(ov)
	return ov
}

func (ov *orderVisitor) VisitBinaryExpr(expr *BinaryExpr) error {
	ov.seen = append(ov.seen, expr.Operator().String())
	return ov.BaseVisitor.VisitBinaryExpr(expr)
}

func (ov *orderVisitor) VisitUnaryExpr(expr *UnaryExpr) error {
	ov.seen = append(ov.seen, "u"+expr.Operator().String())
	return ov.BaseVisitor.VisitUnaryExpr(expr)
}

func (ov *orderVisitor) VisitScopeExpr(expr *ScopeExpr) error {
	ov.seen = append(ov.seen, expr.Scope().String())
	return ov.BaseVisitor.VisitScopeExpr(expr)
}

func (ov *orderVisitor) VisitFunctionCall(expr *FunctionCall) error {
	ov.seen = append(ov.seen, expr.Name())
	return ov.BaseVisitor.VisitFunctionCall(expr)
}

func (ov *orderVisitor) VisitVariable(expr *Variable) error {
	ov.seen = append(ov.seen, expr.Name())
	return nil
}

func (ov *orderVisitor) VisitNumberLiteral(expr *NumberLiteral) error {
	ov.seen = append(ov.seen, expr.String())
	return nil
}

// Test cases for BaseVisitor

func TestBaseVisitor_VisitsAllNodeKinds(t *testing.T) {
	visitor := &BaseVisitor{}

	tests := []struct {
		name string
		node Node
	}{
		{"left chain", createLeftChain()},
		{"scoped product", createScopedProduct()},
		{"unary sum", createUnarySum()},
		{"function call", createCall()},
		{"variable", Factory{}.Variable("x")},
		{"number", Factory{}.Number(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.node.Accept(visitor); err != nil {
				t.Errorf("Expected nil result, got %v", err)
			}
		})
	}
}

func TestBaseVisitor_SkipsMissingChildren(t *testing.T) {
	f := Factory{}
	ov := newOrderVisitor()

	node := f.Function("g", f.Binary(OpPlus, nil, f.Number(1)), f.Unary(OpMinus, nil), f.Scope(ScpRound, nil))
	if err := Walk(ov, node); err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := "g + 1 u- ()"
	if got := strings.Join(ov.seen, " "); got != want {
		t.Errorf("Visit order = %q, want %q", got, want)
	}
}

func TestWalk_LeftToRightDepthFirst(t *testing.T) {
	f := Factory{}

	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{"left chain", createLeftChain(), "+ + + 1 2 3 4"},
		{"scoped product", createScopedProduct(), "* () + 1 2 () + 3 4"},
		{"unary sum", createUnarySum(), "+ u- 1 () u- 2"},
		{"function call", createCall(), "A 1 2 3"},
		{"nested call", f.Function("f", f.Variable("x"), f.Function("g", f.Variable("y")), f.Variable("z")), "f x g y z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ov := newOrderVisitor()
			if err := Walk(ov, tt.node); err != nil {
				t.Fatalf("Walk() error = %v", err)
			}
			if got := strings.Join(ov.seen, " "); got != tt.expected {
				t.Errorf("Visit order = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestWalk_NilNode(t *testing.T) {
	ov := newOrderVisitor()
	if err := Walk(ov, nil); err != nil {
		t.Errorf("Walk(nil) error = %v", err)
	}
	if len(ov.seen) != 0 {
		t.Errorf("Expected no visits, got %v", ov.seen)
	}
}

func TestWalkChildren_SkipsNodeItself(t *testing.T) {
	ov := newOrderVisitor()
	if err := WalkChildren(ov, createScopedProduct()); err != nil {
		t.Fatalf("WalkChildren() error = %v", err)
	}
	want := "() + 1 2 () + 3 4"
	if got := strings.Join(ov.seen, " "); got != want {
		t.Errorf("Visit order = %q, want %q", got, want)
	}

	ov = newOrderVisitor()
	if err := WalkChildren(ov, Factory{}.Number(1)); err != nil || len(ov.seen) != 0 {
		t.Errorf("WalkChildren(leaf) = %v with visits %v", err, ov.seen)
	}
}

// unboundCounter overrides a leaf method without calling Bind
type unboundCounter struct {
	BaseVisitor
	numbers int
}

func (uc *unboundCounter) VisitNumberLiteral(*NumberLiteral) error {
	uc.numbers++
	return nil
}

func TestBaseVisitor_BindRoutesOverrides(t *testing.T) {
	root := createLeftChain()

	unbound := &unboundCounter{}
	_ = Walk(unbound, root)
	if unbound.numbers != 0 {
		t.Errorf("Unbound visitor counted %d numbers below the root, want 0", unbound.numbers)
	}

	bound := &unboundCounter{}
	bound.Bind(bound)
	_ = Walk(bound, root)
	if bound.numbers != 4 {
		t.Errorf("Bound visitor counted %d numbers, want 4", bound.numbers)
	}
}

// stopVisitor fails on the first variable with the given name
type stopVisitor struct {
	BaseVisitor
	stopAt  string
	visited []string
}

var errStop = errors.New("stop")

func (sv *stopVisitor) VisitVariable(expr *Variable) error {
	sv.visited = append(sv.visited, expr.Name())
	if expr.Name() == sv.stopAt {
		return errStop
	}
	return nil
}

func TestWalk_StopsOnError(t *testing.T) {
	f := Factory{}
	root := f.Binary(OpPlus,
		f.Function("f", f.Variable("a"), f.Variable("b"), f.Variable("c")),
		f.Variable("d"))

	sv := &stopVisitor{stopAt: "b"}
	sv.Bind(sv)

	err := Walk(sv, root)
	if !errors.Is(err, errStop) {
		t.Fatalf("Walk() error = %v, want errStop", err)
	}
	if got := strings.Join(sv.visited, ","); got != "a,b" {
		t.Errorf("Visited = %q, want a,b", got)
	}
}

// Test cases for StringVisitor

func TestStringVisitor(t *testing.T) {
	f := Factory{}

	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{"left chain", createLeftChain(), "1+2+3+4"},
		{"scoped product", createScopedProduct(), "(1+2)*(3+4)"},
		{"unary sum", createUnarySum(), "-1+(-2)"},
		{"function call", createCall(), "A(1, 2, 3)"},
		{"variable sum", f.Binary(OpPlus, f.Variable("M1"), f.Number(2.5)), "M1+2.5"},
		{"band", f.Binary(OpBand, f.Number(2), f.Number(5)), "2&5"},
		{"power", f.Binary(OpPow, f.Number(1), f.Number(2.5)), "1^2.5"},
		{"curly", f.Scope(ScpCurly, f.Variable("x")), "{x}"},
		{"missing child", f.Binary(OpPlus, nil, f.Number(1)), "NULL+1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ASTToString(tt.node); got != tt.expected {
				t.Errorf("ASTToString() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStringVisitor_Reset(t *testing.T) {
	sv := NewStringVisitor()
	_ = Walk(sv, createCall())
	sv.Reset()
	if sv.String() != "" {
		t.Errorf("Expected empty buffer after Reset, got %q", sv.String())
	}
	_ = Walk(sv, Factory{}.Number(7))
	if sv.String() != "7" {
		t.Errorf("Expected 7, got %q", sv.String())
	}
}

// Test cases for DebugVisitor

func TestDebugVisitor(t *testing.T) {
	f := Factory{}

	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{"binary", f.Binary(OpPlus, f.Number(1), f.Number(2)), "Binary[Number[1]+Number[2]]"},
		{"unary sum", createUnarySum(), "Binary[Unary[-Number[1]]+Scope[(Unary[-Number[2]])]]"},
		{"function call", createCall(), "Function[A(Number[1], Number[2], Number[3])]"},
		{"variable", f.Variable("M1"), "Variable[M1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ASTToDebugString(tt.node); got != tt.expected {
				t.Errorf("ASTToDebugString() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// Test cases for TreeVisitor

func TestTreeVisitor(t *testing.T) {
	expected := strings.Join([]string{
		"BinaryExpr op_mult (*)",
		"  ScopeExpr scp_round (())",
		"    BinaryExpr op_plus (+)",
		"      NumberLiteral 1",
		"      NumberLiteral 2",
		"  FunctionCall f/1",
		"    Variable x",
		"",
	}, "\n")

	f := Factory{}
	root := f.Binary(OpMult,
		f.Scope(ScpRound, f.Binary(OpPlus, f.Number(1), f.Number(2))),
		f.Function("f", f.Variable("x")))

	if got := ASTToTree(root); got != expected {
		t.Errorf("ASTToTree() =\n%s\nwant\n%s", got, expected)
	}
}

// Test cases for CollectorVisitor

func TestCollectorVisitor(t *testing.T) {
	f := Factory{}
	root := f.Binary(OpPlus,
		f.Function("max", f.Variable("x"), f.Number(3), f.Function("min", f.Variable("y"), f.Variable("x"))),
		f.Unary(OpMinus, f.Variable("z")))

	collector := CollectNodes(root)

	if len(collector.Functions) != 2 {
		t.Errorf("Expected 2 functions, got %d", len(collector.Functions))
	} else if collector.Functions[0].Name() != "max" || collector.Functions[1].Name() != "min" {
		t.Errorf("Expected functions max, min, got %s, %s", collector.Functions[0].Name(), collector.Functions[1].Name())
	}

	if len(collector.Variables) != 4 {
		t.Errorf("Expected 4 variables, got %d", len(collector.Variables))
	}
	if got := strings.Join(collector.VariableNames(), ","); got != "x,y,z" {
		t.Errorf("VariableNames() = %q, want x,y,z", got)
	}
	if len(collector.Numbers) != 1 || collector.Numbers[0].Value() != 3 {
		t.Errorf("Expected one number 3, got %v", collector.Numbers)
	}

	collector.Reset()
	if len(collector.Variables)+len(collector.Functions)+len(collector.Numbers) != 0 {
		t.Error("Expected empty collector after Reset")
	}
}

// Test cases for ValidationVisitor

func TestValidateAST(t *testing.T) {
	f := At(Position{Line: 1, Column: 3})

	tests := []struct {
		name       string
		node       Node
		wantErrors int
	}{
		{"valid chain", createLeftChain(), 0},
		{"valid call", createCall(), 0},
		{"nil root", nil, 1},
		{"missing operand deep", f.Binary(OpPlus, f.Number(1), f.Scope(ScpRound, f.Unary(OpMinus, nil))), 1},
		{"two failures", f.Binary(OpNone, f.Variable(""), f.Number(1)), 2},
		{"empty function name", f.Function("", f.Number(1)), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateAST(tt.node)
			if len(errs) != tt.wantErrors {
				t.Errorf("Expected %d errors, got %d: %v", tt.wantErrors, len(errs), errs)
			}
		})
	}
}

func TestValidationVisitor_ReportsPosition(t *testing.T) {
	f := At(Position{Line: 1, Column: 7})
	vv := NewValidationVisitor()

	_ = Walk(vv, f.Unary(OpNone, f.Number(1)))
	if !vv.HasErrors() {
		t.Fatal("Expected validation errors")
	}
	if msg := vv.Errors()[0].Error(); !strings.HasPrefix(msg, "1:7: ") {
		t.Errorf("Expected error prefixed with position, got %q", msg)
	}

	vv.Reset()
	if vv.HasErrors() {
		t.Error("Expected no errors after Reset")
	}
}
