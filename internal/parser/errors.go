package parser

import (
	"errors"
	"fmt"

	"LFront/internal/lexer"
)

var (
	ErrSyntax      = errors.New("syntax error")
	ErrUnsupported = errors.New("unsupported construct")
	ErrLexical     = errors.New("lexical error")
)

// Error is a failed production. Err is one of the Err* values above.
type Error struct {
	Line   int
	Token  lexer.Token
	Err    error
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (p *Parser) errorf(kind error, format string, args ...any) error {
	return &Error{
		Line:   p.curToken.Line,
		Token:  p.curToken,
		Err:    kind,
		Detail: fmt.Sprintf(format, args...),
	}
}

// unexpected builds the error for a token that does not fit the production.
// Unknown punctuation is reported as a lexical problem rather than a
// grammar one.
func (p *Parser) unexpected(want string) error {
	if p.curToken.Is(lexer.OpUnknown) {
		return p.errorf(ErrLexical, "unrecognized punctuation where %s was expected", want)
	}
	return p.errorf(ErrSyntax, "expected %s, got %s", want, p.describe(p.curToken))
}

func (p *Parser) describe(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.KindEndOfInput:
		return "end of input"
	case lexer.KindKeyword:
		return fmt.Sprintf("keyword '%s'", tok.Source(nil))
	case lexer.KindIdentifier:
		return fmt.Sprintf("identifier '%s'", tok.Source(p.Lexer.Symbols()))
	case lexer.KindOperator:
		return fmt.Sprintf("operator '%s'", tok.Source(nil))
	case lexer.KindInteger:
		return fmt.Sprintf("integer %s", tok.Source(nil))
	case lexer.KindFloat:
		return fmt.Sprintf("float %s", tok.Source(nil))
	case lexer.KindString:
		return fmt.Sprintf("string %s", tok.Source(nil))
	}
	return tok.String()
}
