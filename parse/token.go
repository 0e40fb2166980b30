package parse

import "fmt"

// TokenKind classifies a lexical unit. Single-character literals use the
// character itself as the kind, so a token scanned from "," has Kind ",".
type TokenKind string

const (
	KindBool     TokenKind = "bool"
	KindComment  TokenKind = "comment"
	KindID       TokenKind = "id"
	KindSection  TokenKind = "section"
	KindString   TokenKind = "string"
	KindDatetime TokenKind = "datetime"
	KindFloat    TokenKind = "float"
	KindInt      TokenKind = "int"

	KindComma    TokenKind = ","
	KindLBracket TokenKind = "["
	KindRBracket TokenKind = "]"
	KindAssign   TokenKind = "="

	// KindEOF marks the synthetic end-of-input token fed after the last
	// scanned token. KindList marks a combined list value; it is produced
	// during parsing, never by the tokenizer.
	KindEOF  TokenKind = "eof"
	KindList TokenKind = "list"
)

// Token is one classified unit of input. Row is the 1-indexed line number,
// Col the 0-indexed offset within the trimmed line. Synthetic tokens carry
// zero positions.
type Token struct {
	Kind TokenKind
	Val  any
	Row  int
	Col  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%v)@%d:%d", t.Kind, t.Val, t.Row, t.Col)
}
