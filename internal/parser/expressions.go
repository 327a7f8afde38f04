package parser

import (
	"LFront/internal/ast"
	"LFront/internal/lexer"
)

// parseInitializer returns nil when no initializer follows the type. An
// explicit '=' must be followed by an expression; a bare literal is taken
// as the initializer directly.
func (p *Parser) parseInitializer() (ast.Expression, error) {
	next, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch {
	case next.Is(lexer.OpEquals):
		if err := p.NextToken(); err != nil {
			return nil, err
		}
		return p.parseExpression()
	case isLiteral(next):
		if err := p.NextToken(); err != nil {
			return nil, err
		}
		return p.parseLiteral(), nil
	}
	return nil, nil
}

func (p *Parser) parseExpression() (ast.Expression, error) {
	if err := p.NextToken(); err != nil {
		return nil, err
	}

	switch {
	case isLiteral(p.curToken):
		return p.parseLiteral(), nil
	case p.curToken.Kind == lexer.KindIdentifier:
		return &ast.Identifier{Name: p.curToken.Symbol, Pos: p.curToken.Line}, nil
	}
	return nil, p.unexpected("expression")
}

// parseLiteral expects curToken to satisfy isLiteral.
func (p *Parser) parseLiteral() ast.Expression {
	tok := p.curToken
	switch tok.Kind {
	case lexer.KindInteger:
		return &ast.IntegerLiteral{Value: tok.Int, Pos: tok.Line}
	case lexer.KindFloat:
		return &ast.FloatLiteral{Value: tok.Float, Pos: tok.Line}
	default:
		return &ast.StringLiteral{Value: tok.Text, Pos: tok.Line}
	}
}

func isLiteral(tok lexer.Token) bool {
	switch tok.Kind {
	case lexer.KindInteger, lexer.KindFloat, lexer.KindString:
		return true
	}
	return false
}
