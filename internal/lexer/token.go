package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"LFront/internal/symbols"
)

type Kind int

const (
	KindKeyword Kind = iota
	KindIdentifier
	KindOperator
	KindInteger
	KindFloat
	KindString
	KindEndOfInput
)

func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "KEYWORD"
	case KindIdentifier:
		return "IDENT"
	case KindOperator:
		return "OPERATOR"
	case KindInteger:
		return "INT"
	case KindFloat:
		return "FLOAT"
	case KindString:
		return "STRING"
	case KindEndOfInput:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Token is one lexical unit. Only the payload field matching Kind is
// meaningful; the constructors leave the others zeroed.
type Token struct {
	Kind    Kind
	Keyword Keyword
	Symbol  symbols.Handle
	Op      Operator
	Int     int64
	Float   float64
	Text    string

	// Line is the 1-based line the token starts on. It is not part of the
	// token's identity.
	Line int
}

func KeywordToken(k Keyword) Token {
	return Token{Kind: KindKeyword, Keyword: k}
}

func IdentifierToken(h symbols.Handle) Token {
	return Token{Kind: KindIdentifier, Symbol: h}
}

func OperatorToken(op Operator) Token {
	return Token{Kind: KindOperator, Op: op}
}

func IntegerToken(v int64) Token {
	return Token{Kind: KindInteger, Int: v}
}

func FloatToken(v float64) Token {
	return Token{Kind: KindFloat, Float: v}
}

func StringToken(text string) Token {
	return Token{Kind: KindString, Text: text}
}

func EndOfInputToken() Token {
	return Token{Kind: KindEndOfInput}
}

// Equal compares kind and the active payload.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}

	switch t.Kind {
	case KindKeyword:
		return t.Keyword == o.Keyword
	case KindIdentifier:
		return t.Symbol == o.Symbol
	case KindOperator:
		return t.Op == o.Op
	case KindInteger:
		return t.Int == o.Int
	case KindFloat:
		return t.Float == o.Float
	case KindString:
		return t.Text == o.Text
	case KindEndOfInput:
		return true
	}
	return false
}

func (t Token) Is(op Operator) bool {
	return t.Kind == KindOperator && t.Op == op
}

func (t Token) IsKeyword(k Keyword) bool {
	return t.Kind == KindKeyword && t.Keyword == k
}

func (t Token) String() string {
	switch t.Kind {
	case KindKeyword:
		return fmt.Sprintf("KEYWORD(%s)", t.Keyword)
	case KindIdentifier:
		return fmt.Sprintf("IDENT(#%d)", t.Symbol)
	case KindOperator:
		return fmt.Sprintf("OPERATOR(%s)", t.Op)
	case KindInteger:
		return fmt.Sprintf("INT(%d)", t.Int)
	case KindFloat:
		return fmt.Sprintf("FLOAT(%s)", formatFloat(t.Float))
	case KindString:
		return fmt.Sprintf("STRING(%s)", quote(t.Text))
	case KindEndOfInput:
		return "EOF"
	}
	return "UNKNOWN"
}

// Source renders the token back into text the lexer reads as an equal
// token. Identifier names come from table; a nil table prints the handle.
//
// Floats whose shortest form is beyond int64 digits or that need an
// exponent are rendered positionally and may not survive a re-lex.
func (t Token) Source(table *symbols.Table) string {
	switch t.Kind {
	case KindKeyword:
		return t.Keyword.String()
	case KindIdentifier:
		if table != nil {
			if name, ok := table.Name(t.Symbol); ok {
				return name
			}
		}
		return fmt.Sprintf("#%d", t.Symbol)
	case KindOperator:
		return t.Op.String()
	case KindInteger:
		return strconv.FormatInt(t.Int, 10)
	case KindFloat:
		return formatFloat(t.Float)
	case KindString:
		return quote(t.Text)
	}
	return ""
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

var unescapes = map[rune]rune{
	'\a': 'a',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'\v': 'v',
	'\\': '\\',
	'"':  '"',
	0:    '0',
}

func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		if e, ok := unescapes[r]; ok {
			sb.WriteByte('\\')
			sb.WriteRune(e)
			continue
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('"')
	return sb.String()
}
