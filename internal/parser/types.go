package parser

import "LFront/internal/lexer"

// Parser is a single-pass recursive-descent parser with one token of
// lookahead on top of the current token.
type Parser struct {
	Lexer     *lexer.Lexer
	curToken  lexer.Token
	peekToken lexer.Token
	peeked    bool
}
