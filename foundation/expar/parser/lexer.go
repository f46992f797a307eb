// File: lexer.go
// Title: Expression Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of expression parsing.
//              Converts expression strings into streams of parse tree tokens
//              with line, column and byte offset information. Recognizes
//              decimal, hex, percentage and optionally SI-suffixed numbers.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial lexer implementation
// - 2026-10-17 v0.1.1: Multi-byte characters lexed as one illegal token

package parser

import (
	"fmt"
	"unicode/utf8"

	mdwast "github.com/msto63/expar/foundation/expar/ast"
	pt "github.com/msto63/expar/foundation/expar/parsetree"
)

// Lexer performs lexical analysis of expression input
type Lexer struct {
	input      string // Input string
	position   int    // Current position in input (points to current char)
	readPos    int    // Current reading position (after current char)
	ch         byte   // Current char under examination
	line       int    // Current line number (1-based)
	column     int    // Current column number (1-based)
	siPrefixes bool   // Accept an SI prefix letter after a number
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar() // Initialize first character
	return l
}

// WithSIPrefixes enables or disables SI suffixes on numbers ("10k", "4.7u")
func (l *Lexer) WithSIPrefixes(enabled bool) *Lexer {
	l.siPrefixes = enabled
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() pt.Token {
	l.skipWhitespace()

	pos := pt.Position{Offset: l.position, Line: l.line, Column: l.column}

	switch {
	case l.ch == 0 && l.position >= len(l.input):
		return pt.Token{Type: pt.TokenEOF, Text: "", Pos: pos}
	case l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') && isHexDigit(l.peekCharAt(2)):
		return pt.Token{Type: pt.TokenHex, Text: l.readHex(), Pos: pos}
	case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())):
		return l.readNumber(pos)
	case isLetter(l.ch):
		return pt.Token{Type: pt.TokenID, Text: l.readIdentifier(), Pos: pos}
	}

	if l.ch >= utf8.RuneSelf {
		return l.readIllegalRune(pos)
	}

	tokType, ok := pt.LookupPunctuation(l.ch)
	if !ok {
		tokType = pt.TokenIllegal
	}
	tok := pt.Token{Type: tokType, Text: string(l.ch), Pos: pos}
	l.readChar()
	return tok
}

// readIllegalRune consumes one multi-byte character as a single illegal
// token. Invalid UTF-8 is consumed one byte at a time.
func (l *Lexer) readIllegalRune(pos pt.Position) pt.Token {
	_, size := utf8.DecodeRuneInString(l.input[l.position:])
	tok := pt.Token{Type: pt.TokenIllegal, Text: l.input[l.position : l.position+size], Pos: pos}
	for i := 0; i < size; i++ {
		l.readChar()
	}
	// Columns count characters, not bytes
	if l.ch != '\n' {
		l.column -= size - 1
	}
	return tok
}

// Tokenize returns all tokens from the input as a slice
func (l *Lexer) Tokenize() ([]pt.Token, error) {
	var tokens []pt.Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == pt.TokenEOF {
			break
		}

		if tok.Type == pt.TokenIllegal {
			return tokens, fmt.Errorf("illegal character '%s' at line %d, column %d (position %d)",
				tok.Text, tok.Pos.Line, tok.Pos.Column, tok.Pos.Offset)
		}
	}

	return tokens, nil
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL character represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	// Update line and column tracking
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	return l.peekCharAt(1)
}

// peekCharAt returns the character n positions ahead of the current one
func (l *Lexer) peekCharAt(n int) byte {
	idx := l.position + n
	if idx >= len(l.input) {
		return 0
	}
	return l.input[idx]
}

// readIdentifier reads an identifier (letters, digits, underscores)
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readHex reads a 0x-prefixed hexadecimal constant
func (l *Lexer) readHex() string {
	start := l.position
	l.readChar() // 0
	l.readChar() // x
	for isHexDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a decimal literal, a percentage or an SI-suffixed number
func (l *Lexer) readNumber(pos pt.Position) pt.Token {
	start := l.position

	// Read integer part
	for isDigit(l.ch) {
		l.readChar()
	}

	// Read fraction
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	// Read exponent
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekCharAt(2))) {
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}

	// A trailing '%' is a percentage unless an operand follows it ("50%2" is a modulo)
	if l.ch == '%' && !isOperandStart(l.peekChar()) {
		l.readChar()
		return pt.Token{Type: pt.TokenPercentage, Text: l.input[start:l.position], Pos: pos}
	}

	if l.siPrefixes && mdwast.SiPrefixFromLetter(l.ch) != mdwast.SiNone {
		next := l.peekChar()
		if !isLetter(next) && !isDigit(next) {
			l.readChar()
		}
	}

	return pt.Token{Type: pt.TokenNumber, Text: l.input[start:l.position], Pos: pos}
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// Utility functions

// isLetter checks if the character may start an identifier
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}

// isOperandStart checks if the character can begin a primary expression
func isOperandStart(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '.' || ch == '(' || ch == '[' || ch == '{'
}

// TokenizeInput is a convenience function that tokenizes input and returns tokens or error
func TokenizeInput(input string) ([]pt.Token, error) {
	lexer := NewLexer(input)
	return lexer.Tokenize()
}
