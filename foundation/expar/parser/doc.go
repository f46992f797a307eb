// File: doc.go
// Title: Expression Parser Package Documentation
// Description: Implements the lexical analyzer and parser for expressions.
//              Converts expression strings into grammar-shaped parse trees
//              with position information and syntax error reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial parser implementation

/*
Package parser provides lexical analysis and parsing for expressions.

The parser produces a parsetree.Tree that mirrors the grammar productions and
leaves every semantic decision to the lowering engine:

  • all binary operators share one precedence level and associate left
  • adjacent operator tokens form one value_operator production ("**", "&&",
    "<=", "!="); trailing '+' and '-' of a longer run become unary signs
  • brackets must pair up: (…), […], {…}

Numbers may carry an exponent ("2.5e2"), a percent sign ("50%") or, when
Options.SIPrefixes is set, an SI suffix letter ("10k", "4.7u").

Syntax failures are reported as *ParseError with line, column and offset.
*/
package parser
