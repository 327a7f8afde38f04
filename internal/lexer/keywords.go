package lexer

// Keyword is the stable index of a reserved word. The order of keywordText
// defines the index and must never be reshuffled.
type Keyword int

const (
	KeywordLet Keyword = iota
	KeywordVoid
	KeywordBool
	KeywordShort
	KeywordUShort
	KeywordInt
	KeywordUInt
	KeywordLong
	KeywordULong
	KeywordDouble
	KeywordUDouble
	KeywordString
	KeywordCast
	KeywordConst
	KeywordStatic
	KeywordMutable
	KeywordStruct
	KeywordNamespace
	KeywordUsing
	KeywordEnum
)

var keywordText = [...]string{
	KeywordLet:       "let",
	KeywordVoid:      "void",
	KeywordBool:      "bool",
	KeywordShort:     "short",
	KeywordUShort:    "ushort",
	KeywordInt:       "int",
	KeywordUInt:      "uint",
	KeywordLong:      "long",
	KeywordULong:     "ulong",
	KeywordDouble:    "double",
	KeywordUDouble:   "udouble",
	KeywordString:    "string",
	KeywordCast:      "cast",
	KeywordConst:     "const",
	KeywordStatic:    "static",
	KeywordMutable:   "mutable",
	KeywordStruct:    "struct",
	KeywordNamespace: "namespace",
	KeywordUsing:     "using",
	KeywordEnum:      "enum",
}

var keywords = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordText))
	for i, text := range keywordText {
		m[text] = Keyword(i)
	}
	return m
}()

// LookupKeyword matches whole words only and is case sensitive.
func LookupKeyword(text string) (Keyword, bool) {
	kw, ok := keywords[text]
	return kw, ok
}

// Keywords returns the reserved words in index order.
func Keywords() []string {
	out := make([]string, len(keywordText))
	copy(out, keywordText[:])
	return out
}

func (k Keyword) Valid() bool {
	return k >= 0 && int(k) < len(keywordText)
}

func (k Keyword) String() string {
	if !k.Valid() {
		return "keyword(?)"
	}
	return keywordText[k]
}
