package parser

import (
	"fmt"

	"LFront/internal/ast"
	"LFront/internal/lexer"
)

// NextToken advances to the next token, serving the lookahead first.
// Lexer failures are wrapped so errors.Is matches both ErrLexical and the
// lexer's own sentinel.
func (p *Parser) NextToken() error {
	if p.peeked {
		p.curToken = p.peekToken
		p.peeked = false
		return nil
	}

	tok, err := p.Lexer.NextToken()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLexical, err)
	}
	p.curToken = tok
	return nil
}

func (p *Parser) peek() (lexer.Token, error) {
	if !p.peeked {
		tok, err := p.Lexer.NextToken()
		if err != nil {
			return lexer.Token{}, fmt.Errorf("%w: %w", ErrLexical, err)
		}
		p.peekToken = tok
		p.peeked = true
	}
	return p.peekToken, nil
}

// ParseStatement returns the next top-level statement. Tokens that cannot
// start a statement are skipped. A nil statement with a nil error means the
// input is exhausted.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	for {
		if err := p.NextToken(); err != nil {
			return nil, err
		}

		switch p.curToken.Kind {
		case lexer.KindEndOfInput:
			return nil, nil
		case lexer.KindKeyword:
			return p.parseKeywordStatement()
		case lexer.KindIdentifier:
			return p.parseIdentifierStatement()
		case lexer.KindOperator:
			if p.curToken.Is(lexer.OpUnknown) {
				return nil, p.unexpected("a statement")
			}
		}
	}
}

// ParseProgram parses statements until end of input. The first failure
// aborts the whole program.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{Statements: []ast.Statement{}}

	for {
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			return program, nil
		}
		program.Statements = append(program.Statements, stmt)
	}
}
