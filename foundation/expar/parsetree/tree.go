// File: tree.go
// Title: Generic Expression Parse Tree
// Description: Defines the grammar-shaped parse tree handed from the parser to
//              the lowering engine: production kinds, token types, terminal
//              leaves and production nodes with ordered children and typed
//              accessors. The tree carries no semantics beyond the grammar.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial parse tree contract
// - 2026-10-17 v0.1.1: Accessors skip nil children

package parsetree

import (
	"fmt"
	"strings"
)

// Kind identifies the grammar production of a Tree
type Kind int

const (
	KindValue Kind = iota
	KindUnary
	KindFunctionCall
	KindScope
	KindBracket
	KindOperator
	KindAtom
)

var kindNames = [...]string{
	KindValue:        "value",
	KindUnary:        "value_unary",
	KindFunctionCall: "value_function_call",
	KindScope:        "value_scope",
	KindBracket:      "value_bracket",
	KindOperator:     "value_operator",
	KindAtom:         "value_atom",
}

// String returns the grammar name of the production
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsValid reports whether k is one of the grammar productions
func (k Kind) IsValid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Literals
	TokenNumber     // 12, 2.5, 1e3, 4.7k
	TokenID         // M1, sin
	TokenHex        // 0xFF
	TokenPercentage // 50%

	// Operator tokens
	TokenPlus        // +
	TokenMinus       // -
	TokenStar        // *
	TokenSlash       // /
	TokenPercent     // %
	TokenPipe        // |
	TokenAmpersand   // &
	TokenCaret       // ^
	TokenExclamation // !
	TokenEqual       // =
	TokenLessThan    // <
	TokenGreaterThan // >

	// Delimiters
	TokenOpenRound   // (
	TokenCloseRound  // )
	TokenOpenSquare  // [
	TokenCloseSquare // ]
	TokenOpenCurly   // {
	TokenCloseCurly  // }
	TokenComma       // ,
)

var tokenNames = [...]string{
	TokenEOF:         "EOF",
	TokenIllegal:     "ILLEGAL",
	TokenNumber:      "NUMBER",
	TokenID:          "ID",
	TokenHex:         "HEX",
	TokenPercentage:  "PERCENTAGE",
	TokenPlus:        "PLUS",
	TokenMinus:       "MINUS",
	TokenStar:        "STAR",
	TokenSlash:       "SLASH",
	TokenPercent:     "PERCENT",
	TokenPipe:        "PIPE",
	TokenAmpersand:   "AMPERSAND",
	TokenCaret:       "CARET",
	TokenExclamation: "EXCLAMATION_MARK",
	TokenEqual:       "EQUAL",
	TokenLessThan:    "LESS_THAN",
	TokenGreaterThan: "GREATER_THAN",
	TokenOpenRound:   "OPEN_ROUND",
	TokenCloseRound:  "CLOSE_ROUND",
	TokenOpenSquare:  "OPEN_SQUARE",
	TokenCloseSquare: "CLOSE_SQUARE",
	TokenOpenCurly:   "OPEN_CURLY",
	TokenCloseCurly:  "CLOSE_CURLY",
	TokenComma:       "COMMA",
}

var punctuation = map[byte]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'%': TokenPercent,
	'|': TokenPipe,
	'&': TokenAmpersand,
	'^': TokenCaret,
	'!': TokenExclamation,
	'=': TokenEqual,
	'<': TokenLessThan,
	'>': TokenGreaterThan,
	'(': TokenOpenRound,
	')': TokenCloseRound,
	'[': TokenOpenSquare,
	']': TokenCloseSquare,
	'{': TokenOpenCurly,
	'}': TokenCloseCurly,
	',': TokenComma,
}

// LookupPunctuation returns the type of a single-character operator,
// bracket or comma token
func LookupPunctuation(ch byte) (TokenType, bool) {
	tt, ok := punctuation[ch]
	return tt, ok
}

// String returns the grammar name of the token type
func (tt TokenType) String() string {
	if tt < 0 || int(tt) >= len(tokenNames) {
		return fmt.Sprintf("TokenType(%d)", int(tt))
	}
	return tokenNames[tt]
}

// IsOperator reports whether tokens of this type may appear in a value_operator production
func (tt TokenType) IsOperator() bool {
	return tt >= TokenPlus && tt <= TokenGreaterThan
}

// IsBracket reports whether tokens of this type open or close a scope
func (tt TokenType) IsBracket() bool {
	return tt >= TokenOpenRound && tt <= TokenCloseCurly
}

// Position locates a token in the source text
type Position struct {
	Offset int // Byte offset (0-based)
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexical token with position information
type Token struct {
	Type TokenType
	Text string
	Pos  Position
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %s", t.Type, t.Text, t.Pos)
}

// Node is either a *Tree (production) or a *Terminal (token)
type Node interface {
	Position() Position
	Text() string
	node()
}

// Terminal is a token leaf of the parse tree
type Terminal struct {
	Token Token
}

func (t *Terminal) Position() Position { return t.Token.Pos }
func (t *Terminal) Text() string       { return t.Token.Text }
func (t *Terminal) node()              {}

// Tree is a production node with its ordered children
type Tree struct {
	Kind     Kind
	Children []Node
}

func (t *Tree) node() {}

// NewTree creates a production node of the given kind
func NewTree(kind Kind, children ...Node) *Tree {
	return &Tree{Kind: kind, Children: children}
}

// Add appends children in order
func (t *Tree) Add(children ...Node) {
	t.Children = append(t.Children, children...)
}

// AddToken appends a terminal child
func (t *Tree) AddToken(tok Token) {
	t.Children = append(t.Children, &Terminal{Token: tok})
}

// Position returns the position of the first token under t
func (t *Tree) Position() Position {
	for _, child := range t.Children {
		if !IsNil(child) {
			return child.Position()
		}
	}
	return Position{}
}

// IsNil reports whether n is a nil interface or a typed nil *Tree or *Terminal
func IsNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Tree:
		return n == nil
	case *Terminal:
		return n == nil
	}
	return false
}

// Text returns the matched source text with tokens concatenated
func (t *Tree) Text() string {
	var sb strings.Builder
	for _, tok := range t.Terminals() {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

// Subtrees returns the direct child productions of the given kind in order
func (t *Tree) Subtrees(kind Kind) []*Tree {
	var out []*Tree
	for _, child := range t.Children {
		if sub, ok := child.(*Tree); ok && sub != nil && sub.Kind == kind {
			out = append(out, sub)
		}
	}
	return out
}

// Subtree returns the first direct child production of the given kind
func (t *Tree) Subtree(kind Kind) (*Tree, bool) {
	for _, child := range t.Children {
		if sub, ok := child.(*Tree); ok && sub != nil && sub.Kind == kind {
			return sub, true
		}
	}
	return nil, false
}

// Tokens returns the direct terminal children of the given type in order
func (t *Tree) Tokens(tt TokenType) []Token {
	var out []Token
	for _, child := range t.Children {
		if term, ok := child.(*Terminal); ok && term != nil && term.Token.Type == tt {
			out = append(out, term.Token)
		}
	}
	return out
}

// Token returns the first direct terminal child of the given type
func (t *Tree) Token(tt TokenType) (Token, bool) {
	for _, child := range t.Children {
		if term, ok := child.(*Terminal); ok && term != nil && term.Token.Type == tt {
			return term.Token, true
		}
	}
	return Token{}, false
}

// DirectTokens returns every direct terminal child in order
func (t *Tree) DirectTokens() []Token {
	var out []Token
	for _, child := range t.Children {
		if term, ok := child.(*Terminal); ok && term != nil {
			out = append(out, term.Token)
		}
	}
	return out
}

// Terminals returns every token under t in source order
func (t *Tree) Terminals() []Token {
	var out []Token
	var collect func(n Node)
	collect = func(n Node) {
		if IsNil(n) {
			return
		}
		switch n := n.(type) {
		case *Terminal:
			out = append(out, n.Token)
		case *Tree:
			for _, child := range n.Children {
				collect(child)
			}
		}
	}
	collect(t)
	return out
}

// Dump renders the tree one production or token per line for diagnostics
func Dump(t *Tree) string {
	var sb strings.Builder
	var write func(n Node, depth int)
	write = func(n Node, depth int) {
		sb.WriteString(strings.Repeat("  ", depth))
		if IsNil(n) {
			sb.WriteString("<nil>\n")
			return
		}
		switch n := n.(type) {
		case *Tree:
			sb.WriteString(n.Kind.String())
			sb.WriteString("\n")
			for _, child := range n.Children {
				write(child, depth+1)
			}
		case *Terminal:
			sb.WriteString(fmt.Sprintf("%s %q\n", n.Token.Type, n.Token.Text))
		default:
			sb.WriteString("<nil>\n")
		}
	}
	if t != nil {
		write(t, 0)
	}
	return sb.String()
}
