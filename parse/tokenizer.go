package parse

// Package parse implements the lexical layer of the tomless pipeline: it
// scans a configuration document line by line against a fixed, ordered set
// of anchored patterns and yields a flat token sequence for the parser in
// parse/toml to consume.
//
// Scope:
// - Ordered pattern disambiguation (bool before id, section before literal)
// - Positioned tokens (1-indexed row, 0-indexed column offset)
// - Fatal lex errors with line, offset, and line text
//
// Non-goals (by design):
// - Restartable or incremental scanning
// - Recovery after an unmatched character

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// =========================
// Patterns
// =========================

// kinds used only inside the pattern table; whitespace is discarded and a
// literal token takes its own character as its kind before emission.
const (
	kindWhitespace TokenKind = "whitespace"
	kindLiteral    TokenKind = "literal"
)

type pattern struct {
	kind    TokenKind
	re      *regexp.Regexp
	process func(string) (any, error)
}

// patterns is tried in order at every offset; the first anchored match wins.
// Order matters: bool must precede id (both match "true"), section must
// precede the bare "[" literal, datetime must precede float and int.
var patterns = []pattern{
	{KindBool, regexp.MustCompile(`^(true|false)`), func(s string) (any, error) {
		return s == "true", nil
	}},
	{KindComment, regexp.MustCompile(`^#[\s\S]*`), func(s string) (any, error) {
		return strings.TrimSpace(s[1:]), nil
	}},
	{KindID, regexp.MustCompile(`^[_a-zA-Z][a-zA-Z0-9_]*`), nil},
	{KindSection, regexp.MustCompile(`^\[[_a-zA-Z][a-zA-Z0-9_]*(\.[_a-zA-Z][a-zA-Z0-9_]*)*\]`), func(s string) (any, error) {
		return strings.TrimSpace(s[1 : len(s)-1]), nil
	}},
	{KindString, regexp.MustCompile(`^"[^"]*"`), func(s string) (any, error) {
		return unescape(strings.TrimSpace(s[1 : len(s)-1])), nil
	}},
	{kindWhitespace, regexp.MustCompile(`^\s+`), nil},
	{kindLiteral, regexp.MustCompile(`^[,\[\]=]`), nil},
	{KindDatetime, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}([-+]\d{2}:?\d{2}|Z)`), func(s string) (any, error) {
		return parseDatetime(s)
	}},
	{KindFloat, regexp.MustCompile(`^\d+\.\d+`), func(s string) (any, error) {
		return strconv.ParseFloat(s, 64)
	}},
	{KindInt, regexp.MustCompile(`^\d+`), func(s string) (any, error) {
		return strconv.ParseInt(s, 10, 64)
	}},
}

var unescaper = strings.NewReplacer(`\t`, "\t", `\n`, "\n", `\r`, "\r")

func unescape(s string) string {
	return unescaper.Replace(s)
}

// datetimeLayouts covers the offset spellings the pattern admits: Z or
// ±HH:MM via RFC3339, ±HHMM via the second layout.
var datetimeLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05-0700",
}

func parseDatetime(s string) (time.Time, error) {
	var err error
	for _, layout := range datetimeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// =========================
// Errors
// =========================

// LexError reports an offset where no pattern matched. It aborts the whole
// scan; there is no partial token sequence.
type LexError struct {
	Line   int
	Offset int
	Text   string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d %d: %s", e.Line, e.Offset, e.Text)
}

// =========================
// Tokenizer
// =========================

// Tokenize scans content into a token sequence. The document is trimmed of
// surrounding whitespace before splitting into lines, each line is trimmed
// before scanning, and rows are numbered from 1 over the trimmed lines.
func Tokenize(content string) ([]Token, error) {
	var tokens []Token
	for i, line := range strings.Split(strings.TrimSpace(content), "\n") {
		lineTokens, err := tokenizeLine(line, i+1)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, lineTokens...)
	}
	return tokens, nil
}

// TokenizeFile reads filename and tokenizes its contents.
func TokenizeFile(filename string) ([]Token, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Tokenize(string(content))
}

func tokenizeLine(line string, row int) ([]Token, error) {
	line = strings.TrimSpace(line)
	var tokens []Token
	offset := 0
	for offset < len(line) {
		matched := false
		for _, p := range patterns {
			content := p.re.FindString(line[offset:])
			if content == "" {
				continue
			}
			val := any(content)
			if p.process != nil {
				var err error
				val, err = p.process(content)
				if err != nil {
					return nil, fmt.Errorf("tokenize: line %d %d: %w", row, offset, err)
				}
			}
			switch p.kind {
			case kindWhitespace:
				// discard without emitting
			case kindLiteral:
				tokens = append(tokens, Token{Kind: TokenKind(content), Val: content, Row: row, Col: offset})
			default:
				tokens = append(tokens, Token{Kind: p.kind, Val: val, Row: row, Col: offset})
			}
			offset += len(content)
			matched = true
			break
		}
		if !matched {
			return nil, &LexError{Line: row, Offset: offset, Text: line}
		}
	}
	return tokens, nil
}
