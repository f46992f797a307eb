// File: doc.go
// Title: Lowering Engine Package Documentation
// Description: Package documentation for the parse tree to AST lowering engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial package documentation

/*
Package lower turns a grammar-shaped parse tree into the expression AST.

Lowering walks the parse tree once, depth-first. A Builder keeps a stack of
open frames: binary value productions, unary, scope and function call
productions each push one frame on entry and pop it on exit. Atoms become
leaves and are attached to the frame on top at once. When a frame is popped
it is checked for completeness, turned into an immutable ast node and
attached to the new top, or becomes the root when the stack is empty.

Attachment slots:
  • unary    - operand, once
  • binary   - left, then right
  • scope    - inner expression, once
  • function - arguments, appended in order

Operator and scope kinds are resolved lazily when the value_operator or
value_bracket production below an open frame is entered. Operator tokens are
matched as a multiset against a fixed rule table (see BinaryRules), so "&"
is bitwise and, "&&" logical and, "**" and "^" both power.

Failures are typed:
  • *DisambiguationError     - tokens that map to no operator or scope
  • *StructuralError         - attachment or resolution against a wrong stack top
  • *LiteralConversionError  - a number that is not a finite float64
*/
package lower
