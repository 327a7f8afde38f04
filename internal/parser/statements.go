package parser

import (
	"LFront/internal/ast"
	"LFront/internal/lexer"
)

func (p *Parser) parseKeywordStatement() (ast.Statement, error) {
	switch p.curToken.Keyword {
	case lexer.KeywordLet:
		stmt, err := p.parseVariableDeclare()
		if err != nil {
			return nil, err
		}
		return stmt, nil
	default:
		return nil, p.errorf(ErrUnsupported, "no statement starts with keyword '%s'", p.curToken.Keyword)
	}
}

// parseVariableDeclare handles
//
//	let name : type [= expression | literal] [;]
func (p *Parser) parseVariableDeclare() (*ast.VariableDeclare, error) {
	start := p.curToken.Line

	if err := p.NextToken(); err != nil {
		return nil, err
	}
	if p.curToken.Kind != lexer.KindIdentifier {
		return nil, p.unexpected("variable name after 'let'")
	}
	name := p.curToken.Symbol

	if err := p.NextToken(); err != nil {
		return nil, err
	}
	if !p.curToken.Is(lexer.OpColon) {
		return nil, p.unexpected("':' after variable name")
	}

	if err := p.NextToken(); err != nil {
		return nil, err
	}
	if p.curToken.Kind != lexer.KindKeyword && p.curToken.Kind != lexer.KindIdentifier {
		return nil, p.unexpected("type name after ':'")
	}
	typ := p.curToken

	init, err := p.parseInitializer()
	if err != nil {
		return nil, err
	}

	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	if next.Is(lexer.OpEndLine) {
		if err := p.NextToken(); err != nil {
			return nil, err
		}
	}

	return &ast.VariableDeclare{
		Name: name,
		Type: typ,
		Init: init,
		Pos:  start,
	}, nil
}

// parseIdentifierStatement is where assignments and calls will go.
func (p *Parser) parseIdentifierStatement() (ast.Statement, error) {
	return nil, p.errorf(ErrUnsupported, "statements starting with %s are not supported yet", p.describe(p.curToken))
}
