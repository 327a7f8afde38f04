// Package frontend ties one input to its own lexer, parser and symbol
// table. Callers that want names shared across inputs (a REPL) pass a
// table in; everything else gets a fresh one.
package frontend

import (
	"fmt"
	"io"
	"strings"

	"LFront/internal/ast"
	"LFront/internal/lexer"
	"LFront/internal/logger"
	"LFront/internal/parser"
	"LFront/internal/symbols"

	"github.com/google/uuid"
)

type Options struct {
	// Symbols is reused when set.
	Symbols  *symbols.Table
	MaxRunes int
	Logger   *logger.Logger
}

type Session struct {
	ID      string
	symbols *symbols.Table
	lexer   *lexer.Lexer
	parser  *parser.Parser
	logger  *logger.Logger
}

func NewSession(r io.Reader, opts Options) *Session {
	table := opts.Symbols
	if table == nil {
		table = symbols.NewTable()
	}

	log := opts.Logger
	if log == nil {
		log = logger.Get("frontend")
	}

	var lexOpts []lexer.Option
	if opts.MaxRunes > 0 {
		lexOpts = append(lexOpts, lexer.WithMaxRunes(opts.MaxRunes))
	}

	l := lexer.NewLexer(r, table, lexOpts...)
	s := &Session{
		ID:      uuid.NewString(),
		symbols: table,
		lexer:   l,
		parser:  parser.NewParser(l),
		logger:  log,
	}
	s.logger.Debug("session %s opened", s.ID)
	return s
}

func NewStringSession(source string, opts Options) *Session {
	return NewSession(strings.NewReader(source), opts)
}

func (s *Session) Symbols() *symbols.Table {
	return s.symbols
}

// Tokens lexes the remaining input. The returned slice ends with the
// EndOfInput token unless an error stopped it early.
func (s *Session) Tokens() ([]lexer.Token, error) {
	tokens := []lexer.Token{}
	for {
		tok, err := s.lexer.NextToken()
		if err != nil {
			s.logger.Error("session %s: lex failed after %d tokens: %v", s.ID, len(tokens), err)
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == lexer.KindEndOfInput {
			s.logger.Debug("session %s: %d tokens", s.ID, len(tokens))
			return tokens, nil
		}
	}
}

// Parse parses the whole input into a program.
func (s *Session) Parse() (*ast.Program, error) {
	program, err := s.parser.ParseProgram()
	if err != nil {
		s.logger.Error("session %s: parse failed: %v", s.ID, err)
		return nil, fmt.Errorf("parse: %w", err)
	}

	s.logger.Debug("session %s: parsed %d statements", s.ID, len(program.Statements))
	return program, nil
}

// Next parses one statement; nil, nil means the input is exhausted.
func (s *Session) Next() (ast.Statement, error) {
	stmt, err := s.parser.ParseStatement()
	if err != nil {
		s.logger.Error("session %s: statement failed: %v", s.ID, err)
		return nil, fmt.Errorf("parse: %w", err)
	}
	return stmt, nil
}
