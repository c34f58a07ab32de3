package syntax

import (
	"regexp"
	"strings"

	"github.com/abdosharaf9/Simple-Compiler/report"
)

// segmentPattern splits a line into atomic segments.  The alternatives are
// tried leftmost-first so the longest atomic form wins: quoted strings,
// comments, decimals, word runs and two-character relational operators come
// before the single-rune fallback.
var segmentPattern = regexp.MustCompile(`"[^"]*"|#.*|[0-9]+\.[0-9]+|\w+|<=|>=|==|!=|\S`)

// classifyRule pairs a category with the pattern that recognises it.
type classifyRule struct {
	kind    Category
	pattern *regexp.Regexp
}

// classifyRules is the recognition rule set in priority order: the first rule
// that matches the whole segment decides its category.
var classifyRules = []classifyRule{
	{TOK_KEYWORD, anchored(`if|print`)},
	{TOK_DATATYPE, anchored(`int|float|double|char|bool|string`)},
	{TOK_ARITHOP, anchored(`[-+*/%]`)},
	{TOK_RELOP, anchored(`<=|>=|<|>|==|!=`)},
	{TOK_NUMBER, anchored(`\d+(\.\d+)?`)},
	{TOK_IDENT, anchored(`[a-zA-Z_][a-zA-Z0-9_]*`)},
	{TOK_LPAREN, anchored(`\(`)},
	{TOK_RPAREN, anchored(`\)`)},
	{TOK_LBRACE, anchored(`\{`)},
	{TOK_RBRACE, anchored(`\}`)},
	{TOK_ASSIGN, anchored(`=`)},
	{TOK_SEMI, anchored(`;`)},
	{TOK_COMMENT, anchored(`#.*`)},
}

// anchored compiles a pattern that must match an entire segment.
func anchored(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + pattern + `)$`)
}

// Lexer is responsible for tokenizing a source text.  Lexers are used once.
type Lexer struct {
	lines []string

	// line is the 1-based number of the line being lexed.
	line int

	toks []*Token
}

// NewLexer creates a new lexer for the given source text.
func NewLexer(src string) *Lexer {
	return &Lexer{lines: strings.Split(src, "\n")}
}

// Tokenize converts the whole source text into tokens.  Comments are
// recognised and dropped.  The first segment which matches no rule aborts
// tokenization with a lexical error and no tokens are returned.
func (l *Lexer) Tokenize() ([]*Token, error) {
	for i, text := range l.lines {
		l.line = i + 1

		if err := l.lexLine(text); err != nil {
			return nil, err
		}
	}

	return l.toks, nil
}

// lexLine segments and classifies a single source line.
func (l *Lexer) lexLine(text string) error {
	for _, seg := range segmentPattern.FindAllString(text, -1) {
		kind, ok := Classify(seg)
		if !ok {
			return report.RaiseLexical(l.line, seg)
		}

		if kind == TOK_COMMENT {
			continue
		}

		l.toks = append(l.toks, &Token{Kind: kind, Value: seg, Line: l.line})
	}

	return nil
}

// Classify returns the category of the first rule that fully matches seg.
func Classify(seg string) (Category, bool) {
	for _, rule := range classifyRules {
		if rule.pattern.MatchString(seg) {
			return rule.kind, true
		}
	}

	return 0, false
}

// Tokenize is a convenience wrapper around a one-shot Lexer.
func Tokenize(src string) ([]*Token, error) {
	return NewLexer(src).Tokenize()
}
