package token

import (
	"sort"

	"golang.org/x/exp/maps"
)

var operators = map[string]Type{
	"+":  PLUS,
	"-":  MINUS,
	"/":  DIV,
	"*":  MUL,
	"%":  MOD,
	"&":  AND,
	"|":  OR,
	"^":  HAT,
	"~":  NOT,
	"!":  BOOL_NOT,
	"<":  BOOL_LT,
	">":  BOOL_GT,
	"(":  LPAREN,
	")":  RPAREN,
	"[":  LBRACKET,
	"]":  RBRACKET,
	"{":  LBRACE,
	"}":  RBRACE,
	"=":  EQUALS,
	",":  COMMA,
	".":  DOT,
	":":  COLON,
	";":  SEMI,
	"?":  QUESTION,
	"@":  AT,
	"#":  HASH,
	"\\": BACKSLASH,

	"**": POW,
	"+=": PLUS_EQ,
	"-=": MINUS_EQ,
	"/=": DIV_EQ,
	"*=": MUL_EQ,
	"%=": MOD_EQ,
	"<<": SHL,
	">>": SHR,
	"==": BOOL_EQ,
	"!=": BOOL_NE,
	"<=": BOOL_LTE,
	">=": BOOL_GTE,
	"&&": BOOL_AND,
	"||": BOOL_OR,
	"::": NAMESPACE,
	"->": POINTER,
	"=>": ARROW,
	"//": LINE_COMMENT,
	"/*": MULTILINE_COMMENT_START,
	"*/": MULTILINE_COMMENT_END,
}

var keywords = map[string]Keyword{
	"null":     Null,
	"true":     True,
	"false":    False,
	"if":       If,
	"else":     Else,
	"while":    While,
	"for":      For,
	"return":   Return,
	"import":   Import,
	"as":       As,
	"from":     From,
	"break":    Break,
	"continue": Continue,
	"fn":       Fn,
}

// IsSymbol reports whether ch can start or continue an operator or
// punctuation token.
func IsSymbol(ch rune) bool {
	switch ch {
	case '(', ')', '[', ']', '{', '}', '=', '@', '#', ',', '.', ':', ';', '?', '\\',
		'+', '-', '/', '*', '%', '&', '|', '^', '<', '>', '!', '~':
		return true
	}
	return false
}

// IsComment reports whether typ is one of the comment markers.
func IsComment(typ Type) bool {
	return typ == LINE_COMMENT || typ == MULTILINE_COMMENT_START || typ == MULTILINE_COMMENT_END
}

// LookupOperator returns the type of a one or two character symbol
// sequence, or UNKNOWN if the sequence is not an operator.
func LookupOperator(s string) Type {
	if typ, ok := operators[s]; ok {
		return typ
	}
	return UNKNOWN
}

// LookupKeyword returns the reserved word spelled ident, or NoKeyword.
func LookupKeyword(ident string) Keyword {
	return keywords[ident]
}

// LookupIdent checks the keywords table for an identifier.
// If the identifier is a keyword, it returns KEYWORD and the keyword.
// Otherwise, it returns ID and NoKeyword.
func LookupIdent(ident string) (Type, Keyword) {
	if kw, ok := keywords[ident]; ok {
		return KEYWORD, kw
	}
	return ID, NoKeyword
}

// Keywords returns the reserved words in sorted order.
func Keywords() []string {
	words := maps.Keys(keywords)
	sort.Strings(words)
	return words
}
