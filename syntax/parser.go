package syntax

import "github.com/abdosharaf9/Simple-Compiler/report"

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the grammar production they parse.

// Parser is a recursive descent parser over a token sequence with a single
// token of lookahead.  All parsing functions assume that they begin with the
// parser positioned on the first token of their production and must consume
// all tokens of their production, leaving the parser on the next token.  The
// first grammar violation is raised as a panic carrying a compile error and
// recovered by Parse: there is no error recovery.
type Parser struct {
	// toks is the token sequence being parsed.
	toks []*Token

	// ndx is the position of tok within toks.
	ndx int

	// tok is the current token the parser is positioned on.  Once the parser
	// has moved past the last token, this is the end marker.
	tok *Token
}

// NewParser creates a new parser for the given tokens.
func NewParser(toks []*Token) *Parser {
	return &Parser{toks: toks}
}

// Parse parses the token sequence and returns the root of the parse tree.
func (p *Parser) Parse() (root *Node, err error) {
	defer report.CatchErrors(&err)

	p.ndx = -1
	p.advance()

	return p.parseStmtList(), nil
}

// Parse is a convenience wrapper around a one-shot Parser.
func Parse(toks []*Token) (*Node, error) {
	return NewParser(toks).Parse()
}

// -----------------------------------------------------------------------------

// advance moves the parser forward one token.  Moving past the last token
// positions the parser on the end marker.
func (p *Parser) advance() {
	p.ndx++

	if p.ndx < len(p.toks) {
		p.tok = p.toks[p.ndx]
		return
	}

	line := 0
	if len(p.toks) > 0 {
		line = p.toks[len(p.toks)-1].Line
	}

	p.tok = &Token{Kind: TOK_EOF, Line: line}
}

// got returns true if the parser is on a token of the given kind.
func (p *Parser) got(kind Category) bool {
	return p.tok.Kind == kind
}

// expect asserts that the parser is on a token of the given kind, moves past
// it and returns it as a leaf.  This is the only place grammar is enforced
// on terminals.
func (p *Parser) expect(kind Category) *Node {
	if !p.got(kind) {
		p.reject(kind.String())
	}

	leaf := newLeaf(p.tok)
	p.advance()
	return leaf
}

// reject raises a syntax error on the current token.  expected names the
// category or grammar construct that the parser wanted.
func (p *Parser) reject(expected string) {
	lexeme := p.tok.Value
	if p.got(TOK_EOF) {
		lexeme = "end of input"
	}

	panic(report.RaiseSyntax(p.tok.Line, lexeme, expected, p.tok.Kind.String()))
}

// -----------------------------------------------------------------------------

// stmt_list := {stmt}
func (p *Parser) parseStmtList() *Node {
	node := newBranch(LabelStmtList)

	for !p.got(TOK_EOF) {
		node.add(p.parseStmt())
	}

	return node
}

// stmt := dec_stmt | assign_stmt | print_stmt | if_stmt
func (p *Parser) parseStmt() *Node {
	switch p.tok.Kind {
	case TOK_DATATYPE:
		return p.parseDecStmt()
	case TOK_IDENT:
		return p.parseAssignStmt()
	case TOK_KEYWORD:
		switch p.tok.Value {
		case "print":
			return p.parsePrintStmt()
		case "if":
			return p.parseIfStmt()
		}
	}

	p.reject("statement")
	return nil
}

// dec_stmt := DATA_TYPE ID [ASSIGN arith_expr] SEMICOLON
func (p *Parser) parseDecStmt() *Node {
	node := newBranch(LabelDecStmt)
	node.add(p.expect(TOK_DATATYPE))
	node.add(p.expect(TOK_IDENT))

	if p.got(TOK_ASSIGN) {
		node.add(p.expect(TOK_ASSIGN))
		node.add(p.parseArithExpr())
	}

	node.add(p.expect(TOK_SEMI))
	return node
}

// assign_stmt := ID ASSIGN arith_expr SEMICOLON
func (p *Parser) parseAssignStmt() *Node {
	node := newBranch(LabelAssignStmt)
	node.add(p.expect(TOK_IDENT))
	node.add(p.expect(TOK_ASSIGN))
	node.add(p.parseArithExpr())
	node.add(p.expect(TOK_SEMI))
	return node
}

// print_stmt := 'print' LPAREN ID RPAREN SEMICOLON
func (p *Parser) parsePrintStmt() *Node {
	node := newBranch(LabelPrintStmt)
	node.add(p.expect(TOK_KEYWORD))
	node.add(p.expect(TOK_LPAREN))
	node.add(p.expect(TOK_IDENT))
	node.add(p.expect(TOK_RPAREN))
	node.add(p.expect(TOK_SEMI))
	return node
}

// if_stmt := 'if' LPAREN rel_expr RPAREN LBRACE stmt RBRACE
func (p *Parser) parseIfStmt() *Node {
	node := newBranch(LabelIfStmt)
	node.add(p.expect(TOK_KEYWORD))
	node.add(p.expect(TOK_LPAREN))
	node.add(p.parseRelExpr())
	node.add(p.expect(TOK_RPAREN))
	node.add(p.expect(TOK_LBRACE))
	node.add(p.parseStmt())
	node.add(p.expect(TOK_RBRACE))
	return node
}

// rel_expr := arith_expr REL_OP arith_expr
func (p *Parser) parseRelExpr() *Node {
	node := newBranch(LabelRelExpr)
	node.add(p.parseArithExpr())
	node.add(p.expect(TOK_RELOP))
	node.add(p.parseArithExpr())
	return node
}

// arith_expr := term {ARITH_OP term}
func (p *Parser) parseArithExpr() *Node {
	node := newBranch(LabelArithExpr)
	node.add(p.parseTerm())

	for p.got(TOK_ARITHOP) {
		node.add(p.expect(TOK_ARITHOP))
		node.add(p.parseTerm())
	}

	return node
}

// term := ID | NUMBER | LPAREN arith_expr RPAREN
func (p *Parser) parseTerm() *Node {
	node := newBranch(LabelTerm)

	switch p.tok.Kind {
	case TOK_IDENT, TOK_NUMBER:
		node.add(p.expect(p.tok.Kind))
	case TOK_LPAREN:
		node.add(p.expect(TOK_LPAREN))
		node.add(p.parseArithExpr())
		node.add(p.expect(TOK_RPAREN))
	default:
		p.reject("term")
	}

	return node
}
