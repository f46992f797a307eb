// File: doc.go
// Title: Expression Abstract Syntax Tree Package Documentation
// Description: Defines the strongly-typed expression AST produced by the
//              lowering engine, its operator and scope enumerations and the
//              double-dispatch visitor framework used to traverse it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial expression AST package

/*
Package ast defines the Abstract Syntax Tree for arithmetic and logical
expressions.

A tree is built from six node kinds:
  • BinaryExpr    - "left op right"
  • UnaryExpr     - "op operand"
  • ScopeExpr     - a bracketed sub-expression: (x), [x], {x}
  • FunctionCall  - "name(arg, ...)"
  • Variable      - identifiers, hex constants and percentages
  • NumberLiteral - decimal numbers, optionally SI-scaled

Nodes are immutable once built. They are created through a Factory, which
stamps the source position on every node:

	f := ast.At(ast.Position{Line: 1, Column: 1})
	sum := f.Binary(ast.OpPlus, f.Number(1), f.Number(2))

Consumers process trees through the Visitor interface. BaseVisitor supplies
left-to-right depth-first recursion; embed it and call Bind with the embedding
visitor so that overridden methods are reached at every depth:

	type counter struct {
		ast.BaseVisitor
		n int
	}

	func (c *counter) VisitNumberLiteral(*ast.NumberLiteral) error { c.n++; return nil }

	c := &counter{}
	c.Bind(c)
	_ = ast.Walk(c, root)

Stock visitors render trees symbolically (ASTToString), with kind tags
(ASTToDebugString) or as an indented tree (ASTToTree), collect leaves
(CollectNodes) and check node invariants (ValidateAST).
*/
package ast
