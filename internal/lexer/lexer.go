package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"LFront/internal/symbols"
)

const eof rune = -1

// Lexer turns a character stream into tokens, one per NextToken call.
// It reads through an io.RuneScanner so a single character can be pushed
// back after a numeric literal or a lookahead.
type Lexer struct {
	src     io.RuneScanner
	symbols *symbols.Table
	line    int

	maxRunes int
	consumed int

	done bool
	err  error
}

type Option func(*Lexer)

// WithMaxRunes bounds how many characters the lexer will read. Zero means
// unbounded.
func WithMaxRunes(n int) Option {
	return func(l *Lexer) {
		l.maxRunes = n
	}
}

// NewLexer wraps r in a bufio.Reader unless it already supports pushback.
// Identifiers are interned into table.
func NewLexer(r io.Reader, table *symbols.Table, opts ...Option) *Lexer {
	src, ok := r.(io.RuneScanner)
	if !ok {
		src = bufio.NewReader(r)
	}

	l := &Lexer{
		src:     src,
		symbols: table,
		line:    1,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func NewStringLexer(input string, table *symbols.Table, opts ...Option) *Lexer {
	return NewLexer(strings.NewReader(input), table, opts...)
}

func (l *Lexer) Line() int {
	return l.line
}

func (l *Lexer) Symbols() *symbols.Table {
	return l.symbols
}

// NextToken returns the next token. Once the input is exhausted every call
// returns an EndOfInput token.
func (l *Lexer) NextToken() (Token, error) {
	if l.done {
		return l.at(EndOfInputToken(), l.line), nil
	}

	for {
		ch := l.next()
		line := l.line

		switch {
		case ch == eof:
			l.done = true
			if l.err != nil {
				return Token{}, l.err
			}
			return l.at(EndOfInputToken(), line), nil
		case ch == '\n':
			l.line++
		case ch == ' ' || ch == '\t' || ch == '\r':
		case ch == '"':
			return l.readString(line)
		case isLetter(ch):
			return l.at(l.readIdentifier(ch), line), nil
		case isDigit(ch):
			l.unread()
			return l.readNumber(line)
		case isPunct(ch):
			tok, err := l.readOperator(ch)
			if err != nil {
				return Token{}, err
			}
			if tok.Is(OpComment) {
				continue
			}
			return l.at(tok, line), nil
		default:
			return Token{}, l.fail(line, ErrInvalidCharacter, "%q", ch)
		}
	}
}

func (l *Lexer) readIdentifier(first rune) Token {
	var sb strings.Builder
	sb.WriteRune(first)
	for isIdentContinue(l.peek()) {
		sb.WriteRune(l.next())
	}

	text := sb.String()
	if kw, ok := LookupKeyword(text); ok {
		return KeywordToken(kw)
	}
	return IdentifierToken(l.symbols.Intern(text))
}

var escapes = map[rune]rune{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\\': '\\',
	'?':  '?',
	'\'': '\'',
	'"':  '"',
	'0':  0,
}

// readString is entered just after the opening quote.
func (l *Lexer) readString(line int) (Token, error) {
	var sb strings.Builder
	for {
		ch := l.next()
		switch ch {
		case eof:
			return Token{}, l.eofFailure(line, ErrUnterminatedString)
		case '"':
			return l.at(StringToken(sb.String()), line), nil
		case '\n':
			l.line++
			sb.WriteRune(ch)
		case '\\':
			esc := l.next()
			if esc == eof {
				return Token{}, l.eofFailure(line, ErrUnterminatedString)
			}
			decoded, ok := escapes[esc]
			if !ok {
				return Token{}, l.fail(l.line, ErrUnknownEscape, `"\%c"`, esc)
			}
			sb.WriteRune(decoded)
		default:
			sb.WriteRune(ch)
		}
	}
}

func (l *Lexer) readOperator(ch rune) (Token, error) {
	switch ch {
	case '!':
		return OperatorToken(l.pick('=', OpNotEquals, OpNot)), nil
	case '+':
		if l.match('=') {
			return OperatorToken(OpPlusEquals), nil
		}
		return OperatorToken(l.pick('+', OpPlusPlus, OpPlus)), nil
	case '-':
		if l.match('=') {
			return OperatorToken(OpMinusEquals), nil
		}
		return OperatorToken(l.pick('-', OpMinusMinus, OpMinus)), nil
	case '*':
		return OperatorToken(l.pick('=', OpAsteriskEquals, OpAsterisk)), nil
	case '/':
		switch {
		case l.match('*'):
			return l.skipBlockComment()
		case l.match('/'):
			l.skipLineComment()
			return OperatorToken(OpComment), nil
		case l.match('='):
			return OperatorToken(OpSlashEquals), nil
		}
		return OperatorToken(OpSlash), nil
	case '=':
		return OperatorToken(l.pick('=', OpEqualsEquals, OpEquals)), nil
	}

	if op, ok := singleCharOperators[ch]; ok {
		return OperatorToken(op), nil
	}
	return OperatorToken(OpUnknown), nil
}

// skipBlockComment is entered after "/*" and stops right after the first
// "*/" pair.
func (l *Lexer) skipBlockComment() (Token, error) {
	start := l.line
	for {
		switch l.next() {
		case eof:
			return Token{}, l.eofFailure(start, ErrUnterminatedComment)
		case '\n':
			l.line++
		case '*':
			if l.match('/') {
				return OperatorToken(OpComment), nil
			}
		}
	}
}

// skipLineComment leaves the newline in the stream so the main loop counts it.
func (l *Lexer) skipLineComment() {
	for {
		ch := l.peek()
		if ch == '\n' || ch == eof {
			return
		}
		l.next()
	}
}

func (l *Lexer) readNumber(line int) (Token, error) {
	var sb strings.Builder
	isFloat := false

	for {
		ch := l.next()
		if isDigit(ch) {
			sb.WriteRune(ch)
			continue
		}
		if ch == '.' && !isFloat {
			isFloat = true
			sb.WriteRune(ch)
			continue
		}
		if isLetter(ch) {
			sb.WriteRune(ch)
			return Token{}, l.fail(line, ErrMalformedNumber, "%q", sb.String())
		}
		if ch != eof {
			l.unread()
		}
		break
	}

	if l.err != nil {
		return Token{}, l.err
	}

	text := sb.String()
	if !isFloat {
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Token{}, l.fail(line, ErrMalformedNumber, "%q out of range", text)
		}
		return l.at(IntegerToken(v), line), nil
	}

	if strings.HasSuffix(text, ".") {
		text += "0"
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, l.fail(line, ErrMalformedNumber, "%q out of range", text)
	}
	return l.at(FloatToken(v), line), nil
}

func (l *Lexer) next() rune {
	if l.err != nil {
		return eof
	}

	ch, _, err := l.src.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			l.err = fmt.Errorf("read source: %w", err)
		}
		return eof
	}

	l.consumed++
	if l.maxRunes > 0 && l.consumed > l.maxRunes {
		l.err = &Error{Line: l.line, Err: ErrInputTooLarge, Detail: strconv.Itoa(l.maxRunes)}
		return eof
	}
	return ch
}

// unread pushes back the rune returned by the last next call.
func (l *Lexer) unread() {
	if err := l.src.UnreadRune(); err != nil {
		l.err = fmt.Errorf("unread source: %w", err)
		return
	}
	l.consumed--
}

func (l *Lexer) peek() rune {
	ch := l.next()
	if ch != eof {
		l.unread()
	}
	return ch
}

func (l *Lexer) match(want rune) bool {
	if l.peek() != want {
		return false
	}
	l.next()
	return true
}

func (l *Lexer) pick(want rune, matched, otherwise Operator) Operator {
	if l.match(want) {
		return matched
	}
	return otherwise
}

func (l *Lexer) at(tok Token, line int) Token {
	tok.Line = line
	return tok
}

func (l *Lexer) fail(line int, kind error, format string, args ...any) error {
	return &Error{Line: line, Err: kind, Detail: fmt.Sprintf(format, args...)}
}

// eofFailure reports a read error in preference to the construct that was
// cut short by it.
func (l *Lexer) eofFailure(line int, kind error) error {
	l.done = true
	if l.err != nil {
		return l.err
	}
	return &Error{Line: line, Err: kind}
}

func isLetter(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentContinue(ch rune) bool {
	return isLetter(ch) || isDigit(ch)
}

// isPunct reports ASCII punctuation. Quote and underscore are routed
// elsewhere before this is consulted.
func isPunct(ch rune) bool {
	return ch < unicode.MaxASCII && (unicode.IsPunct(ch) || unicode.IsSymbol(ch))
}
