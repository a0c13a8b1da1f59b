package token

import (
	"fmt"
	"strconv"
)

// Type is the type of a token.
type Type string

// Keyword is the reserved word carried by a KEYWORD token.
type Keyword string

// Location is a position in a source file. Line and Column are 1-based.
type Location struct {
	File   string
	Line   int
	Column int
}

// NewLocation returns the location of the first character of file.
func NewLocation(file string) Location {
	return Location{File: file, Line: 1, Column: 1}
}

// Advance returns the location following ch.
func (l Location) Advance(ch rune) Location {
	if ch == '\n' {
		l.Line++
		l.Column = 1
		return l
	}
	l.Column++
	return l
}

func (l Location) String() string {
	return l.File + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
}

// Token represents a lexical token.
type Token struct {
	Type    Type
	Keyword Keyword // Set only when Type is KEYWORD.
	Literal string  // Decoded text for strings, raw lexeme otherwise.
	Loc     Location
	Int     int64   // Value of an INT literal.
	Float   float64 // Value of a FLOAT literal.
}

// Is reports whether the token has type t.
func (t Token) Is(typ Type) bool { return t.Type == typ }

// Equal reports whether t and other have the same type, keyword and literal.
// Locations and numeric payloads are not compared.
func (t Token) Equal(other Token) bool {
	return t.Type == other.Type && t.Keyword == other.Keyword && t.Literal == other.Literal
}

func (t Token) String() string {
	return fmt.Sprintf("%s: (%s): %s", t.Loc, t.Type, t.Literal)
}

const (
	// Special tokens
	UNKNOWN      Type = "UNKNOWN" // Not an operator; never emitted
	NEW_LINE     Type = "NEW_LINE"
	END_OF_INPUT Type = "END_OF_INPUT"

	// Arithmetic
	PLUS  Type = "PLUS"  // +
	MINUS Type = "MINUS" // -
	DIV   Type = "DIV"   // /
	MUL   Type = "MUL"   // *
	MOD   Type = "MOD"   // %
	POW   Type = "POW"   // **

	// Compound assignment
	PLUS_EQ  Type = "PLUS_EQ"  // +=
	MINUS_EQ Type = "MINUS_EQ" // -=
	DIV_EQ   Type = "DIV_EQ"   // /=
	MUL_EQ   Type = "MUL_EQ"   // *=
	MOD_EQ   Type = "MOD_EQ"   // %=

	// Bitwise
	AND Type = "AND" // &
	OR  Type = "OR"  // |
	HAT Type = "HAT" // ^
	SHL Type = "SHL" // <<
	SHR Type = "SHR" // >>
	NOT Type = "NOT" // ~

	// Boolean and comparison
	BOOL_NOT Type = "BOOL_NOT" // !
	BOOL_EQ  Type = "BOOL_EQ"  // ==
	BOOL_NE  Type = "BOOL_NE"  // !=
	BOOL_LT  Type = "BOOL_LT"  // <
	BOOL_GT  Type = "BOOL_GT"  // >
	BOOL_LTE Type = "BOOL_LTE" // <=
	BOOL_GTE Type = "BOOL_GTE" // >=
	BOOL_AND Type = "BOOL_AND" // &&
	BOOL_OR  Type = "BOOL_OR"  // ||

	// Names
	ID      Type = "ID"      // main, x, foo
	KEYWORD Type = "KEYWORD" // if, while, fn

	// Literals
	CHAR   Type = "CHAR"   // Reserved; quoted literals are always STRING
	STRING Type = "STRING" // "hello world", 'hello world'
	INT    Type = "INT"    // 5, 0x1F, 0b101
	FLOAT  Type = "FLOAT"  // 6.9, 1e-3

	// Brackets
	LPAREN   Type = "LPAREN"   // (
	RPAREN   Type = "RPAREN"   // )
	LBRACKET Type = "LBRACKET" // [
	RBRACKET Type = "RBRACKET" // ]
	LBRACE   Type = "LBRACE"   // {
	RBRACE   Type = "RBRACE"   // }

	// Punctuation
	EQUALS    Type = "EQUALS"    // =
	COMMA     Type = "COMMA"     // ,
	DOT       Type = "DOT"       // .
	COLON     Type = "COLON"     // :
	NAMESPACE Type = "NAMESPACE" // ::
	SEMI      Type = "SEMI"      // ;
	QUESTION  Type = "QUESTION"  // ?
	AT        Type = "AT"        // @
	HASH      Type = "HASH"      // #
	POINTER   Type = "POINTER"   // ->
	ARROW     Type = "ARROW"     // =>
	BACKSLASH Type = "BACKSLASH" // \

	// Comment markers. The lexer skips comments, so these are never emitted.
	LINE_COMMENT            Type = "LINE_COMMENT"            // //
	MULTILINE_COMMENT_START Type = "MULTILINE_COMMENT_START" // /*
	MULTILINE_COMMENT_END   Type = "MULTILINE_COMMENT_END"   // */
)

// Reserved words.
const (
	NoKeyword Keyword = ""
	Null      Keyword = "null"
	True      Keyword = "true"
	False     Keyword = "false"
	If        Keyword = "if"
	Else      Keyword = "else"
	While     Keyword = "while"
	For       Keyword = "for"
	Return    Keyword = "return"
	Import    Keyword = "import"
	As        Keyword = "as"
	From      Keyword = "from"
	Break     Keyword = "break"
	Continue  Keyword = "continue"
	Fn        Keyword = "fn"
)
