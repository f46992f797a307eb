// File: disambiguate.go
// Title: Operator and Scope Disambiguation
// Description: Maps the tokens matched by an operator or bracket production
//              to exactly one operator or scope kind. Operator tokens are
//              compared as multisets against an ordered rule table; the first
//              exact match wins.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial rule tables

package lower

import (
	mdwast "github.com/msto63/expar/foundation/expar/ast"
	pt "github.com/msto63/expar/foundation/expar/parsetree"
)

// Rule maps one token multiset, written as its symbols, to an operator
type Rule struct {
	Symbols  string
	Operator mdwast.Operator
	counts   map[pt.TokenType]int
}

func newRules(specs ...Rule) []Rule {
	for i := range specs {
		counts := make(map[pt.TokenType]int)
		for j := 0; j < len(specs[i].Symbols); j++ {
			tt, ok := pt.LookupPunctuation(specs[i].Symbols[j])
			if !ok || !tt.IsOperator() {
				panic("lower: rule symbol is not an operator token: " + specs[i].Symbols)
			}
			counts[tt]++
		}
		specs[i].counts = counts
	}
	return specs
}

// Binary operator rules in priority order. "**" is consulted before "^" so
// that both spellings of power resolve through the star family first.
var binaryRules = newRules(
	Rule{Symbols: "+", Operator: mdwast.OpPlus},
	Rule{Symbols: "-", Operator: mdwast.OpMinus},
	Rule{Symbols: "/", Operator: mdwast.OpDiv},
	Rule{Symbols: "%", Operator: mdwast.OpMod},
	Rule{Symbols: "*", Operator: mdwast.OpMult},
	Rule{Symbols: "**", Operator: mdwast.OpPow},
	Rule{Symbols: "^", Operator: mdwast.OpPow},
	Rule{Symbols: "^^", Operator: mdwast.OpXor},
	Rule{Symbols: "|", Operator: mdwast.OpBor},
	Rule{Symbols: "||", Operator: mdwast.OpOr},
	Rule{Symbols: "&", Operator: mdwast.OpBand},
	Rule{Symbols: "&&", Operator: mdwast.OpAnd},
	Rule{Symbols: "<", Operator: mdwast.OpLt},
	Rule{Symbols: "<<", Operator: mdwast.OpBsl},
	Rule{Symbols: "<=", Operator: mdwast.OpLe},
	Rule{Symbols: ">", Operator: mdwast.OpGt},
	Rule{Symbols: ">>", Operator: mdwast.OpBsr},
	Rule{Symbols: ">=", Operator: mdwast.OpGe},
	Rule{Symbols: "==", Operator: mdwast.OpEq},
	Rule{Symbols: "=", Operator: mdwast.OpAssign},
	Rule{Symbols: "!", Operator: mdwast.OpNot},
	Rule{Symbols: "!=", Operator: mdwast.OpNeq},
)

var unaryRules = newRules(
	Rule{Symbols: "+", Operator: mdwast.OpPlus},
	Rule{Symbols: "-", Operator: mdwast.OpMinus},
)

// BinaryRules returns the binary operator table in priority order
func BinaryRules() []Rule {
	return append([]Rule(nil), binaryRules...)
}

// UnaryRules returns the unary operator table
func UnaryRules() []Rule {
	return append([]Rule(nil), unaryRules...)
}

// ResolveBinary maps the tokens of a binary value_operator production to an
// operator. The order of the tokens is irrelevant, only their multiplicity.
func ResolveBinary(tokens []pt.Token) (mdwast.Operator, bool) {
	return resolve(binaryRules, tokens)
}

// ResolveUnary maps the tokens of a unary value_operator production to an operator
func ResolveUnary(tokens []pt.Token) (mdwast.Operator, bool) {
	return resolve(unaryRules, tokens)
}

func resolve(rules []Rule, tokens []pt.Token) (mdwast.Operator, bool) {
	if len(tokens) == 0 {
		return mdwast.OpNone, false
	}
	counts := make(map[pt.TokenType]int, len(tokens))
	for _, tok := range tokens {
		counts[tok.Type]++
	}
	for _, rule := range rules {
		if sameCounts(rule.counts, counts) {
			return rule.Operator, true
		}
	}
	return mdwast.OpNone, false
}

func sameCounts(a, b map[pt.TokenType]int) bool {
	if len(a) != len(b) {
		return false
	}
	for tt, n := range a {
		if b[tt] != n {
			return false
		}
	}
	return true
}

var brackets = map[pt.TokenType]struct {
	scope   mdwast.ScopeType
	opening bool
}{
	pt.TokenOpenRound:   {mdwast.ScpRound, true},
	pt.TokenCloseRound:  {mdwast.ScpRound, false},
	pt.TokenOpenSquare:  {mdwast.ScpSquare, true},
	pt.TokenCloseSquare: {mdwast.ScpSquare, false},
	pt.TokenOpenCurly:   {mdwast.ScpCurly, true},
	pt.TokenCloseCurly:  {mdwast.ScpCurly, false},
}

// ResolveScope maps a bracket token to its scope kind and reports whether it
// opens the scope
func ResolveScope(tok pt.Token) (scope mdwast.ScopeType, opening bool, ok bool) {
	b, ok := brackets[tok.Type]
	if !ok {
		return mdwast.ScpNone, false, false
	}
	return b.scope, b.opening, true
}
