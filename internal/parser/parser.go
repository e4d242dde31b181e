// Package parser turns a token stream into an expression tree by
// recursive descent over four precedence levels, low to high: or, xor,
// and, not.
package parser

import (
	"fmt"

	"github.com/pborges/boolmin/internal/expr"
	"github.com/pborges/boolmin/internal/lexer"
)

// ErrorKind classifies why parsing failed.
type ErrorKind int

const (
	// MissingClosingParen means a '(' was never matched by a ')'.
	MissingClosingParen ErrorKind = iota
	// UnexpectedEnd means an operand was required but the token stream
	// ran out or the next token cannot start an operand.
	UnexpectedEnd
	// UnexpectedTrailingTokens means tokens remained after a complete
	// expression was parsed.
	UnexpectedTrailingTokens
)

func (k ErrorKind) String() string {
	switch k {
	case MissingClosingParen:
		return "missing closing paren"
	case UnexpectedEnd:
		return "unexpected end of input"
	case UnexpectedTrailingTokens:
		return "unexpected trailing tokens"
	default:
		return "unknown parse error"
	}
}

// Error reports a parse failure. Position is the index of the offending
// token within the token stream produced by the lexer.
type Error struct {
	Kind     ErrorKind
	Position int
}

func (e Error) Error() string {
	return fmt.Sprintf("parser: %s at token %d", e.Kind, e.Position)
}

// Parse lexes and parses src into an expression tree.
func Parse(src string) (expr.Tree, error) {
	return ParseTokens(lexer.Tokenize(src))
}

// ParseTokens parses a pre-lexed token stream, which must end in a
// lexer.EOF token as lexer.Tokenize always produces.
func ParseTokens(tokens []lexer.Token) (expr.Tree, error) {
	p := &parser{tokens: tokens}
	tree, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.current().Kind != lexer.EOF {
		return nil, Error{Kind: UnexpectedTrailingTokens, Position: p.pos}
	}
	return tree, nil
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

func (p *parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Kind: lexer.EOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) advance() lexer.Token {
	t := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

// parseOr handles: or-expr -> xor-expr (OR xor-expr)*
func (p *parser) parseOr() (expr.Tree, error) {
	left, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == lexer.Or {
		p.advance()
		right, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		left = expr.Or{L: left, R: right}
	}
	return left, nil
}

// parseXor handles: xor-expr -> and-expr (XOR and-expr)*
func (p *parser) parseXor() (expr.Tree, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == lexer.Xor {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = expr.Xor{L: left, R: right}
	}
	return left, nil
}

// parseAnd handles: and-expr -> not-expr (AND not-expr)*
func (p *parser) parseAnd() (expr.Tree, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == lexer.And {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = expr.And{L: left, R: right}
	}
	return left, nil
}

// parseNot handles: not-expr -> NOT not-expr | primary
func (p *parser) parseNot() (expr.Tree, error) {
	if p.current().Kind == lexer.Not {
		p.advance()
		x, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return expr.Not{X: x}, nil
	}
	return p.parsePrimary()
}

// parsePrimary handles: primary -> IDENT | CONST | '(' or-expr ')'
func (p *parser) parsePrimary() (expr.Tree, error) {
	tok := p.current()
	switch tok.Kind {
	case lexer.Ident:
		p.advance()
		return expr.Var{Name: tok.Text}, nil
	case lexer.ConstTrue:
		p.advance()
		return expr.Const{Value: true}, nil
	case lexer.ConstFalse:
		p.advance()
		return expr.Const{Value: false}, nil
	case lexer.LParen:
		openPos := p.pos
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.current().Kind != lexer.RParen {
			return nil, Error{Kind: MissingClosingParen, Position: openPos}
		}
		p.advance()
		return inner, nil
	case lexer.EOF:
		return nil, Error{Kind: UnexpectedEnd, Position: p.pos}
	default:
		return nil, Error{Kind: UnexpectedEnd, Position: p.pos}
	}
}
