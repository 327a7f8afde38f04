package lexer

type Operator int

const (
	OpUnknown Operator = iota
	// OpComment is produced for skipped comments and never leaves the lexer.
	OpComment
	OpNot
	OpNotEquals
	OpPlus
	OpPlusEquals
	OpPlusPlus
	OpMinus
	OpMinusEquals
	OpMinusMinus
	OpAsterisk
	OpAsteriskEquals
	OpSlash
	OpSlashEquals
	OpEquals
	OpEqualsEquals
	OpOpenParen
	OpCloseParen
	OpOpenBracket
	OpCloseBracket
	OpOpenBrace
	OpCloseBrace
	OpColon
	OpEndLine
)

var operatorText = [...]string{
	OpUnknown:        "?",
	OpComment:        "//",
	OpNot:            "!",
	OpNotEquals:      "!=",
	OpPlus:           "+",
	OpPlusEquals:     "+=",
	OpPlusPlus:       "++",
	OpMinus:          "-",
	OpMinusEquals:    "-=",
	OpMinusMinus:     "--",
	OpAsterisk:       "*",
	OpAsteriskEquals: "*=",
	OpSlash:          "/",
	OpSlashEquals:    "/=",
	OpEquals:         "=",
	OpEqualsEquals:   "==",
	OpOpenParen:      "(",
	OpCloseParen:     ")",
	OpOpenBracket:    "[",
	OpCloseBracket:   "]",
	OpOpenBrace:      "{",
	OpCloseBrace:     "}",
	OpColon:          ":",
	OpEndLine:        ";",
}

var singleCharOperators = map[rune]Operator{
	'(': OpOpenParen,
	')': OpCloseParen,
	'[': OpOpenBracket,
	']': OpCloseBracket,
	'{': OpOpenBrace,
	'}': OpCloseBrace,
	':': OpColon,
	';': OpEndLine,
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(operatorText) {
		return "?"
	}
	return operatorText[op]
}
