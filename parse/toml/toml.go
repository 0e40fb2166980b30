package toml

// Package toml turns the token stream produced by the parse package into a
// nested map[string]any result tree. The parser is a finite-state machine
// with an explicit status stack: a state may be entered while another is
// suspended beneath it, and exiting the top state resumes the one beneath
// by re-running its entry logic with no argument.
//
// Scope:
// - Key/value assignments of bool, int, float, string, datetime
// - Dotted section headers opening nested maps
// - Lists, arbitrarily nested, combined via a sentinel marker on the
//   value stack
// - Permissive and strict diagnostic modes
//
// Non-goals (by design):
// - Inline tables, multi-line strings, arrays of tables
// - Streaming or incremental parsing
// - Error recovery after a lex error

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dzjyyds666/tomless/parse"
)

// =========================
// Options
// =========================

// Options configures a Parser. The zero value is permissive and silent.
type Options struct {
	// Logger receives parse diagnostics. Nil discards them.
	Logger *log.Logger
	// Strict turns anomalies the permissive mode absorbs, unrecognized
	// tokens and assignments with an empty value stack, into hard parse
	// failures.
	Strict bool
}

// =========================
// Public API
// =========================

type Parser struct {
	opts   Options
	logger *log.Logger
}

func NewParser(opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Parser{opts: opts, logger: logger}
}

// Parse reads all of r and parses it into a result tree.
func (p *Parser) Parse(r io.Reader) (map[string]any, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p.ParseString(string(content))
}

// ParseString parses content into a result tree. In permissive mode only a
// lex error fails the parse; everything else degrades the result and is
// reported through the logger.
func (p *Parser) ParseString(content string) (map[string]any, error) {
	tokens, err := parse.Tokenize(content)
	if err != nil {
		return nil, err
	}
	m := &machine{
		tokens:  tokens,
		result:  make(map[string]any),
		context: make(map[string]any),
		logger:  p.logger,
		strict:  p.opts.Strict,
	}
	return m.run()
}

// ParseFile reads filename and parses its contents.
func (p *Parser) ParseFile(filename string) (map[string]any, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return p.ParseString(string(content))
}

// Parse parses r with default options.
func Parse(r io.Reader) (map[string]any, error) {
	return NewParser(Options{}).Parse(r)
}

// ParseString parses content with default options.
func ParseString(content string) (map[string]any, error) {
	return NewParser(Options{}).ParseString(content)
}

// ParseFile parses the named file with default options.
func ParseFile(filename string) (map[string]any, error) {
	return NewParser(Options{}).ParseFile(filename)
}

// =========================
// State Machine
// =========================

type status uint8

const (
	statusBuildSection status = iota
	statusBuildValue
	statusBuildList
)

func (s status) String() string {
	switch s {
	case statusBuildSection:
		return "BuildSection"
	case statusBuildValue:
		return "BuildValue"
	case statusBuildList:
		return "BuildList"
	}
	return "Unknown"
}

// machine holds the working state of one parse invocation. Every stack is
// created fresh per invocation; only the result map outlives the run.
type machine struct {
	tokens []parse.Token

	result  map[string]any
	context map[string]any

	statusStack  []status
	sectionStack []string
	bracketStack []parse.Token
	valueStack   []parse.Token

	section string
	varName string
	row     int

	logger *log.Logger
	strict bool
	err    error
}

func (m *machine) run() (map[string]any, error) {
	m.logger.Debug("parse begin", "tokens", len(m.tokens))
	m.enter(statusBuildSection, "")
	for _, tok := range m.tokens {
		if tok.Kind == parse.KindComment {
			continue
		}
		m.row = tok.Row
		m.feed(tok)
		if m.strict && m.err != nil {
			return nil, m.err
		}
	}
	m.feed(parse.Token{Kind: parse.KindEOF, Val: ""})
	for len(m.statusStack) > 0 {
		m.exit()
	}
	if m.strict && m.err != nil {
		return nil, m.err
	}
	m.logger.Debug("parse end", "sections", m.sectionStack, "pending", len(m.valueStack))
	return m.result, nil
}

func (m *machine) current() status {
	return m.statusStack[len(m.statusStack)-1]
}

// enter pushes s and runs its entry logic. A nil arg means re-entry after a
// child state exited: BuildSection then reuses the previously pushed section
// name and BuildList pops its bracket bookkeeping instead of pushing.
func (m *machine) enter(s status, arg any) {
	m.statusStack = append(m.statusStack, s)
	m.logger.Debug("enter status", "status", s, "arg", arg)
	switch s {
	case statusBuildSection:
		m.enterSection(arg)
	case statusBuildValue:
		m.logger.Debug("build value", "var", m.varName)
	case statusBuildList:
		m.enterList(arg)
	}
}

// exit pops the current state, runs its exit logic, then resumes the state
// beneath it by re-running that state's entry with no argument.
func (m *machine) exit() {
	current := m.statusStack[len(m.statusStack)-1]
	m.statusStack = m.statusStack[:len(m.statusStack)-1]
	m.logger.Debug("exit status", "status", current)
	switch current {
	case statusBuildSection:
		m.syncResult(m.section)
	case statusBuildValue:
		m.exitValue()
	case statusBuildList:
		m.exitList()
	}
	if len(m.statusStack) > 0 {
		last := m.statusStack[len(m.statusStack)-1]
		m.statusStack = m.statusStack[:len(m.statusStack)-1]
		m.enter(last, nil)
	}
}

func (m *machine) feed(tok parse.Token) {
	switch m.current() {
	case statusBuildSection:
		m.feedSection(tok)
	case statusBuildValue:
		m.feedValue(tok)
	case statusBuildList:
		m.feedList(tok)
	}
}

// -------- BuildSection --------

func (m *machine) enterSection(arg any) {
	m.syncResult(m.section)
	name, ok := arg.(string)
	if !ok {
		if n := len(m.sectionStack); n > 0 {
			name = m.sectionStack[n-1]
			m.sectionStack = m.sectionStack[:n-1]
		}
	}
	m.sectionStack = append(m.sectionStack, name)
	m.section = name
	if name == "" {
		m.logger.Debug("in section", "name", "ROOT")
	} else {
		m.logger.Debug("in section", "name", name)
	}
}

func (m *machine) feedSection(tok parse.Token) {
	switch tok.Kind {
	case parse.KindID:
		m.varName = tok.Val.(string)
	case parse.KindAssign:
		m.enter(statusBuildValue, nil)
	case parse.KindSection:
		m.enter(statusBuildSection, tok.Val.(string))
	case parse.KindEOF:
		// the machine's own shutdown token; the drain does the flushing
	default:
		m.unrecognized("section", tok)
	}
}

// -------- BuildValue --------

func (m *machine) feedValue(tok parse.Token) {
	switch tok.Kind {
	case parse.KindID, parse.KindSection, parse.KindEOF:
		m.exit()
		if tok.Kind != parse.KindEOF {
			m.feed(tok)
		}
	case parse.KindInt, parse.KindFloat, parse.KindString, parse.KindDatetime, parse.KindBool:
		m.logger.Debug("push value", "kind", tok.Kind, "val", tok.Val)
		m.valueStack = append(m.valueStack, tok)
	case parse.KindLBracket:
		m.enter(statusBuildList, tok)
	default:
		m.unrecognized("value", tok)
	}
}

func (m *machine) exitValue() {
	if len(m.valueStack) == 0 {
		m.logger.Error("empty value stack", "var", m.varName)
		if m.strict && m.err == nil {
			m.err = m.errf(fmt.Sprintf("empty value for %q", m.varName))
		}
		return
	}
	val := m.combineValues("")
	m.logger.Debug("assign", "var", m.varName, "val", val.Val)
	m.context[m.varName] = val.Val
}

// -------- BuildList --------

func (m *machine) enterList(arg any) {
	tok, ok := arg.(parse.Token)
	if !ok {
		if n := len(m.bracketStack); n > 0 {
			m.bracketStack = m.bracketStack[:n-1]
		}
		return
	}
	m.bracketStack = append(m.bracketStack, tok)
	m.valueStack = append(m.valueStack, tok)
}

func (m *machine) feedList(tok parse.Token) {
	switch tok.Kind {
	case parse.KindComma:
		// separators carry no meaning beyond splitting pushed values
	case parse.KindLBracket:
		m.enter(statusBuildList, tok)
	case parse.KindRBracket:
		m.exit()
	case parse.KindInt, parse.KindFloat, parse.KindString, parse.KindDatetime, parse.KindBool:
		m.logger.Debug("push list value", "kind", tok.Kind, "val", tok.Val)
		m.valueStack = append(m.valueStack, tok)
	default:
		m.unrecognized("list", tok)
	}
}

func (m *machine) exitList() {
	val := m.combineValues(parse.KindLBracket)
	m.valueStack = append(m.valueStack, val)
	m.logger.Debug("combined list", "val", val.Val)
}

// combineValues pops one value when stop is empty. Otherwise it pops until
// the sentinel of kind stop is reached and discarded, restores source order,
// and wraps the values in a synthetic list token.
func (m *machine) combineValues(stop parse.TokenKind) parse.Token {
	if stop == "" {
		val := m.valueStack[len(m.valueStack)-1]
		m.valueStack = m.valueStack[:len(m.valueStack)-1]
		return val
	}
	vals := make([]any, 0)
	for len(m.valueStack) > 0 {
		val := m.valueStack[len(m.valueStack)-1]
		m.valueStack = m.valueStack[:len(m.valueStack)-1]
		if val.Kind == stop {
			break
		}
		vals = append(vals, val.Val)
	}
	for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
		vals[i], vals[j] = vals[j], vals[i]
	}
	return parse.Token{Kind: parse.KindList, Val: vals}
}

// =========================
// Result Assembly
// =========================

// syncResult merges the pending context into the result tree under name and
// clears it. An empty context is a no-op, so a section header followed by no
// assignments adds nothing. An empty name merges at the root; otherwise the
// dotted name is walked, creating nested maps on demand. A non-map value in
// the way is overwritten, consistent with last-assignment-wins.
func (m *machine) syncResult(name string) {
	if len(m.context) == 0 {
		return
	}
	m.logger.Debug("sync context", "section", name, "keys", len(m.context))
	target := m.result
	if name != "" {
		for _, part := range strings.Split(name, ".") {
			child, ok := target[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				target[part] = child
			}
			target = child
		}
	}
	for k, v := range m.context {
		target[k] = v
	}
	m.context = make(map[string]any)
}

// =========================
// Diagnostics
// =========================

func (m *machine) unrecognized(state string, tok parse.Token) {
	m.logger.Warn("unrecognized token", "state", state, "kind", tok.Kind, "val", tok.Val, "row", tok.Row, "col", tok.Col)
	if m.strict && m.err == nil {
		m.err = m.errf(fmt.Sprintf("unrecognized %s token %q", state, string(tok.Kind)))
	}
}

func (m *machine) errf(msg string) error {
	return fmt.Errorf("toml:%d: %s", m.row, msg)
}

// =========================
// Safe Access Helpers
// =========================

// Get walks root along path, descending through nested maps. Empty path
// elements are skipped.
func Get(root map[string]any, path ...string) (any, bool) {
	var cur any = root
	for _, p := range path {
		if len(p) == 0 {
			continue
		}
		t, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = t[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// GetPath is Get with a dotted path, matching section header spelling.
func GetPath(root map[string]any, path string) (any, bool) {
	return Get(root, strings.Split(path, ".")...)
}

func MustString(v any) string {
	return v.(string)
}

func MustInt(v any) int64 {
	return v.(int64)
}
