// File: helpers_test.go
// Title: Lowering Test Helpers
// Description: Builders for hand-made parse trees used to drive the lowering
//              engine through paths the parser never produces.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test helpers

package lower

import (
	"testing"

	mdwlog "github.com/msto63/expar/foundation/core/log"
	mdwast "github.com/msto63/expar/foundation/expar/ast"
	"github.com/msto63/expar/foundation/expar/parser"
	pt "github.com/msto63/expar/foundation/expar/parsetree"
)

func token(tt pt.TokenType, text string) pt.Token {
	return pt.Token{Type: tt, Text: text, Pos: pt.Position{Line: 1, Column: 1}}
}

func val(children ...pt.Node) *pt.Tree {
	return pt.NewTree(pt.KindValue, children...)
}

func num(text string) *pt.Tree {
	return pt.NewTree(pt.KindAtom, &pt.Terminal{Token: token(pt.TokenNumber, text)})
}

func ident(text string) *pt.Tree {
	return pt.NewTree(pt.KindAtom, &pt.Terminal{Token: token(pt.TokenID, text)})
}

// op builds a value_operator production with one token per symbol character
func op(symbols string) *pt.Tree {
	tree := pt.NewTree(pt.KindOperator)
	for i := 0; i < len(symbols); i++ {
		tt, _ := pt.LookupPunctuation(symbols[i])
		tree.AddToken(token(tt, symbols[i:i+1]))
	}
	return tree
}

func bracket(ch byte) *pt.Tree {
	tt, _ := pt.LookupPunctuation(ch)
	tree := pt.NewTree(pt.KindBracket)
	tree.AddToken(token(tt, string(ch)))
	return tree
}

func tokens(symbols string) []pt.Token {
	return op(symbols).DirectTokens()
}

// lowerText parses and lowers input
func lowerText(t *testing.T, input string, si bool) (mdwast.Node, error) {
	t.Helper()
	p, err := parser.New(parser.Options{Logger: mdwlog.GetDefault(), SIPrefixes: si})
	if err != nil {
		t.Fatalf("parser.New() error = %v", err)
	}
	tree, err := p.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", input, err)
	}
	return Lower(tree, Options{})
}
