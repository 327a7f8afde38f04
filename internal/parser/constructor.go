package parser

import l "LFront/internal/lexer"

// NewParser pulls tokens from l lazily; nothing is read until the first
// parse call.
func NewParser(l *l.Lexer) *Parser {
	return &Parser{
		Lexer: l,
	}
}
