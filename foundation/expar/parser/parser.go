// File: parser.go
// Title: Expression Recursive Descent Parser
// Description: Implements the parsing phase of expression processing.
//              Converts token streams into grammar-shaped parse trees using
//              recursive descent. Operators share one precedence level and
//              associate to the left; operator tokens are grouped into runs
//              whose meaning is decided later by the lowering engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial parser implementation

package parser

import (
	"errors"
	"fmt"

	mdwlog "github.com/msto63/expar/foundation/core/log"
	pt "github.com/msto63/expar/foundation/expar/parsetree"
)

// DefaultMaxInputLength is used when Options.MaxInputLength is zero
const DefaultMaxInputLength = 4096

// ErrInputTooLong is returned for input longer than Options.MaxInputLength
var ErrInputTooLong = errors.New("input exceeds maximum length")

// Parser implements recursive descent parsing for expressions. A Parser holds
// only configuration and may be shared between goroutines.
type Parser struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int
	SIPrefixes     bool // Accept SI suffixes on numbers ("10k")
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Message string
	Line    int
	Column  int
	Offset  int
	Token   pt.Token
}

func (pe *ParseError) Error() string {
	if pe.Token.Type == pt.TokenEOF {
		return fmt.Sprintf("parse error at line %d, column %d: %s (at end of input)",
			pe.Line, pe.Column, pe.Message)
	}
	return fmt.Sprintf("parse error at line %d, column %d: %s (near '%s')",
		pe.Line, pe.Column, pe.Message, pe.Token.Text)
}

// New creates a new expression parser with the given options
func New(opts Options) (*Parser, error) {
	// Set defaults
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.MaxInputLength < 0 {
		return nil, fmt.Errorf("invalid maximum input length: %d", opts.MaxInputLength)
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "expar-parser"),
		options: opts,
	}, nil
}

// state is the cursor of a single Parse call
type state struct {
	lexer   *Lexer
	current pt.Token // Current token
}

// Parse parses an expression and returns its parse tree
func (p *Parser) Parse(input string) (*pt.Tree, error) {
	// Validate input length
	if len(input) > p.options.MaxInputLength {
		return nil, fmt.Errorf("%w: %d > %d",
			ErrInputTooLong, len(input), p.options.MaxInputLength)
	}

	s := &state{lexer: NewLexer(input).WithSIPrefixes(p.options.SIPrefixes)}
	s.advance() // Load first token

	p.logger.Debug("Starting expression parsing", mdwlog.Fields{
		"input":  input,
		"length": len(input),
	})

	if s.current.Type == pt.TokenEOF {
		return nil, s.parseError("empty expression")
	}

	tree, err := s.parseValue()
	if err == nil {
		// Ensure we've consumed all input
		switch s.current.Type {
		case pt.TokenEOF:
		case pt.TokenIllegal:
			err = s.parseError(fmt.Sprintf("illegal character '%s'", s.current.Text))
		default:
			err = s.parseError(fmt.Sprintf("unexpected %s after expression", s.current.Type))
		}
	}
	if err != nil {
		p.logger.Debug("Expression parsing failed", mdwlog.Fields{
			"input": input,
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("Expression parsing completed successfully", mdwlog.Fields{
		"input":  input,
		"tokens": len(tree.Terminals()),
	})

	return tree, nil
}

// parseValue parses "primary (value_operator primary)*" into a left-leaning
// chain of value productions
func (s *state) parseValue() (*pt.Tree, error) {
	left, err := s.parseOperand()
	if err != nil {
		return nil, err
	}

	for s.current.Type.IsOperator() {
		op := s.parseOperatorRun()

		right, err := s.parseOperand()
		if err != nil {
			return nil, err
		}

		left = pt.NewTree(pt.KindValue, left, op, right)
	}

	return left, nil
}

// parseOperand parses a primary wrapped in its own value production
func (s *state) parseOperand() (*pt.Tree, error) {
	primary, err := s.parsePrimary()
	if err != nil {
		return nil, err
	}
	return pt.NewTree(pt.KindValue, primary), nil
}

// parsePrimary parses unary, function call, scope and atom productions
func (s *state) parsePrimary() (*pt.Tree, error) {
	switch s.current.Type {
	case pt.TokenPlus, pt.TokenMinus:
		op := pt.NewTree(pt.KindOperator)
		op.AddToken(s.current)
		s.advance()

		operand, err := s.parseOperand()
		if err != nil {
			return nil, err
		}
		return pt.NewTree(pt.KindUnary, op, operand), nil

	case pt.TokenID:
		name := s.current
		s.advance()

		// Check for function call
		if s.current.Type == pt.TokenOpenRound {
			return s.parseFunctionCall(name)
		}

		atom := pt.NewTree(pt.KindAtom)
		atom.AddToken(name)
		return atom, nil

	case pt.TokenNumber, pt.TokenHex, pt.TokenPercentage:
		atom := pt.NewTree(pt.KindAtom)
		atom.AddToken(s.current)
		s.advance()
		return atom, nil

	case pt.TokenOpenRound, pt.TokenOpenSquare, pt.TokenOpenCurly:
		return s.parseScope()

	case pt.TokenEOF:
		return nil, s.parseError("unexpected end of expression")

	case pt.TokenIllegal:
		return nil, s.parseError(fmt.Sprintf("illegal character '%s'", s.current.Text))

	default:
		return nil, s.parseError(fmt.Sprintf("unexpected token in expression: %s", s.current.Text))
	}
}

// parseOperatorRun groups adjacent operator tokens into one value_operator
// production. Trailing '+' and '-' tokens of a longer run are left for a
// unary operand, so "1*-2" is "1 * (-2)" and "1--2" is "1 - (-2)".
func (s *state) parseOperatorRun() *pt.Tree {
	var run []pt.Token
	for i := 0; ; i++ {
		tok := s.lookahead(i)
		if !tok.Type.IsOperator() {
			break
		}
		run = append(run, tok)
	}
	for len(run) > 1 {
		last := run[len(run)-1].Type
		if last != pt.TokenPlus && last != pt.TokenMinus {
			break
		}
		run = run[:len(run)-1]
	}

	op := pt.NewTree(pt.KindOperator)
	for range run {
		op.AddToken(s.current)
		s.advance()
	}
	return op
}

// parseFunctionCall parses "ID '(' [value (',' value)*] ')'"
func (s *state) parseFunctionCall(name pt.Token) (*pt.Tree, error) {
	call := pt.NewTree(pt.KindFunctionCall)
	call.AddToken(name)
	call.AddToken(s.current) // '('
	s.advance()

	if s.current.Type != pt.TokenCloseRound {
		// Parse first argument
		arg, err := s.parseValue()
		if err != nil {
			return nil, fmt.Errorf("function %s argument: %w", name.Text, err)
		}
		call.Add(arg)

		// Parse additional arguments
		for s.current.Type == pt.TokenComma {
			call.AddToken(s.current)
			s.advance() // consume ','

			arg, err := s.parseValue()
			if err != nil {
				return nil, fmt.Errorf("function %s argument: %w", name.Text, err)
			}
			call.Add(arg)
		}
	}

	if s.current.Type != pt.TokenCloseRound {
		return nil, s.parseError("expected ')' after function arguments")
	}
	call.AddToken(s.current)
	s.advance() // consume ')'

	return call, nil
}

var closingBracket = map[pt.TokenType]pt.TokenType{
	pt.TokenOpenRound:  pt.TokenCloseRound,
	pt.TokenOpenSquare: pt.TokenCloseSquare,
	pt.TokenOpenCurly:  pt.TokenCloseCurly,
}

// parseScope parses "value_bracket value value_bracket" with matching brackets
func (s *state) parseScope() (*pt.Tree, error) {
	open := s.current
	s.advance()

	inner, err := s.parseValue()
	if err != nil {
		return nil, err
	}

	if s.current.Type != closingBracket[open.Type] {
		return nil, s.parseError(fmt.Sprintf("expected closing bracket for '%s' opened at line %d, column %d",
			open.Text, open.Pos.Line, open.Pos.Column))
	}
	closer := s.current
	s.advance()

	openTree := pt.NewTree(pt.KindBracket)
	openTree.AddToken(open)
	closeTree := pt.NewTree(pt.KindBracket)
	closeTree.AddToken(closer)

	return pt.NewTree(pt.KindScope, openTree, inner, closeTree), nil
}

// Utility methods

// advance moves to the next token
func (s *state) advance() {
	s.current = s.lexer.NextToken()
}

// lookahead returns the token n positions after the current one without consuming
func (s *state) lookahead(n int) pt.Token {
	if n == 0 {
		return s.current
	}
	saved := *s.lexer
	var tok pt.Token
	for i := 0; i < n; i++ {
		tok = s.lexer.NextToken()
	}
	*s.lexer = saved
	return tok
}

// parseError creates a parse error with current position
func (s *state) parseError(message string) error {
	return &ParseError{
		Message: message,
		Line:    s.current.Pos.Line,
		Column:  s.current.Pos.Column,
		Offset:  s.current.Pos.Offset,
		Token:   s.current,
	}
}
