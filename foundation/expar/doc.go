// Package expar turns expression text into a validated abstract syntax tree.
//
// Package: expar
// Title: Expression Engine
// Description: Combines the parser, the parse tree lowering engine and the
//              AST validation visitor behind one Engine type. Every call is
//              tagged with a correlation id that appears in log entries and
//              on returned errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// Usage:
//
//	engine, err := expar.New(expar.Options{SIPrefixes: true})
//	if err != nil {
//		return err
//	}
//
//	root, err := engine.Parse("(1+2)*(3+4)")
//	if mdwerror.HasCode(err, mdwerror.CodeExparSyntax) {
//		// show the position to the user
//	}
//	fmt.Println(ast.ASTToString(root)) // (1+2)*(3+4)
//
//	for _, r := range engine.ParseAll(lines) {
//		if !r.OK() {
//			fmt.Println(r.ID, r.Err)
//		}
//	}
//
// Render prints a tree in one of the Formats. Options.Cache may be set to any
// concurrency-safe store; accepted trees are kept by input text and returned
// as-is on the next Parse of the same text.
package expar
