package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedNumber     = errors.New("malformed numeric literal")
	ErrUnterminatedString  = errors.New("unterminated string literal")
	ErrUnterminatedComment = errors.New("unterminated block comment")
	ErrUnknownEscape       = errors.New("unknown escape sequence")
	ErrInvalidCharacter    = errors.New("invalid character")
	ErrInputTooLarge       = errors.New("input exceeds rune limit")
)

// Error is a lexical error with the line it was found on. Use errors.Is
// against the Err* values to classify it.
type Error struct {
	Line   int
	Err    error
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}
