// File: doc.go
// Title: Parse Tree Package Documentation
// Description: Package documentation for the generic expression parse tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial package documentation

/*
Package parsetree defines the grammar-shaped tree exchanged between the
expression parser and the lowering engine.

A Tree is one grammar production (value, value_unary, value_function_call,
value_scope, value_bracket, value_operator, value_atom) with ordered
children; a Terminal is one matched token. Walk drives a Listener over the
tree depth-first with enter, terminal and exit events, which is the only
contract the lowering engine relies on.

The grammar surface:

	value               := value_unary | value_function_call | value_scope
	                     | value_atom | value value_operator value
	value_unary         := value_operator value
	value_function_call := ID '(' [value (',' value)*] ')'
	value_scope         := value_bracket value value_bracket
	value_atom          := NUMBER | ID | HEX | PERCENTAGE
*/
package parsetree
