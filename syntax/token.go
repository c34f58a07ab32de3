package syntax

import "fmt"

// Category is the lexical category of a token.  The set of categories is
// closed: every token the classifier emits belongs to exactly one of them.
type Category int

// Token represents a single lexical token.
type Token struct {
	// The category of the token.  This must be one of the enumerated token
	// categories.
	Kind Category

	// The source text of the token.
	Value string

	// The 1-based line on which the token occurs.
	Line int
}

func (t *Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}

// Enumeration of token categories.  The order of the recognition rules lives
// in classifyRules, not here.
const (
	TOK_KEYWORD Category = iota
	TOK_DATATYPE
	TOK_IDENT
	TOK_NUMBER
	TOK_ARITHOP
	TOK_RELOP
	TOK_ASSIGN
	TOK_SEMI
	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_COMMENT

	// TOK_EOF is never produced by the classifier: it is the parser's end
	// marker.
	TOK_EOF
)

var categoryNames = [...]string{
	TOK_KEYWORD:  "KEYWORD",
	TOK_DATATYPE: "DATA_TYPE",
	TOK_IDENT:    "ID",
	TOK_NUMBER:   "NUMBER",
	TOK_ARITHOP:  "ARITH_OP",
	TOK_RELOP:    "REL_OP",
	TOK_ASSIGN:   "ASSIGN",
	TOK_SEMI:     "SEMICOLON",
	TOK_LPAREN:   "LPAREN",
	TOK_RPAREN:   "RPAREN",
	TOK_LBRACE:   "LBRACE",
	TOK_RBRACE:   "RBRACE",
	TOK_COMMENT:  "COMMENT",
	TOK_EOF:      "EOF",
}

var categoryTitles = [...]string{
	TOK_KEYWORD:  "Keyword",
	TOK_DATATYPE: "Data Type",
	TOK_IDENT:    "ID",
	TOK_NUMBER:   "Number",
	TOK_ARITHOP:  "Arithmetic Operator",
	TOK_RELOP:    "Relational Operator",
	TOK_ASSIGN:   "Assign Operator",
	TOK_SEMI:     "Semicolon",
	TOK_LPAREN:   "Left Parenthesis",
	TOK_RPAREN:   "Right Parenthesis",
	TOK_LBRACE:   "Left Brace",
	TOK_RBRACE:   "Right Brace",
	TOK_COMMENT:  "Comment",
	TOK_EOF:      "EOF",
}

// String returns the tag used for the category in diagnostics and trees.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}

	return categoryNames[c]
}

// Title returns the human-readable name of the category used in tables.
func (c Category) Title() string {
	if c < 0 || int(c) >= len(categoryTitles) {
		return c.String()
	}

	return categoryTitles[c]
}
