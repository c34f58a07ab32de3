package syntax

import (
	"testing"

	"github.com/abdosharaf9/Simple-Compiler/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindsOf(toks []*Token) []Category {
	kinds := make([]Category, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestTokenizeDeclaration(t *testing.T) {
	toks, err := Tokenize("int x = 5;")
	require.NoError(t, err)

	assert.Equal(t, []Category{TOK_DATATYPE, TOK_IDENT, TOK_ASSIGN, TOK_NUMBER, TOK_SEMI}, kindsOf(toks))
	assert.Equal(t, "DATA_TYPE(int)", toks[0].String())
	assert.Equal(t, "ID(x)", toks[1].String())
	assert.Equal(t, "5", toks[3].Value)
	for _, tok := range toks {
		assert.Equal(t, 1, tok.Line)
	}
}

func TestTokenizeLongestSegment(t *testing.T) {
	for _, test := range []struct {
		src   string
		kinds []Category
		vals  []string
	}{
		{"a<=b", []Category{TOK_IDENT, TOK_RELOP, TOK_IDENT}, []string{"a", "<=", "b"}},
		{"a < = b", []Category{TOK_IDENT, TOK_RELOP, TOK_ASSIGN, TOK_IDENT}, []string{"a", "<", "=", "b"}},
		{"x==10.25", []Category{TOK_IDENT, TOK_RELOP, TOK_NUMBER}, []string{"x", "==", "10.25"}},
		{"y!=2", []Category{TOK_IDENT, TOK_RELOP, TOK_NUMBER}, []string{"y", "!=", "2"}},
		{"(a%b)", []Category{TOK_LPAREN, TOK_IDENT, TOK_ARITHOP, TOK_IDENT, TOK_RPAREN}, []string{"(", "a", "%", "b", ")"}},
		{"iffy print_x printer", []Category{TOK_IDENT, TOK_IDENT, TOK_IDENT}, []string{"iffy", "print_x", "printer"}},
		{"if print float", []Category{TOK_KEYWORD, TOK_KEYWORD, TOK_DATATYPE}, []string{"if", "print", "float"}},
	} {
		toks, err := Tokenize(test.src)
		require.NoError(t, err, test.src)
		assert.Equal(t, test.kinds, kindsOf(toks), test.src)

		vals := make([]string, len(toks))
		for i, tok := range toks {
			vals[i] = tok.Value
		}
		assert.Equal(t, test.vals, vals, test.src)
	}
}

func TestTokenizeDropsCommentsAndTracksLines(t *testing.T) {
	src := `# This is a comment
x = 10.5 + y * (5 - 2.25); # trailing
if(x*2 >= 56/22) {
	print(z);
}`

	toks, err := Tokenize(src)
	require.NoError(t, err)

	for _, tok := range toks {
		assert.NotEqual(t, TOK_COMMENT, tok.Kind)
	}

	assert.Equal(t, 2, toks[0].Line)
	assert.Equal(t, "x", toks[0].Value)

	last := toks[len(toks)-1]
	assert.Equal(t, TOK_RBRACE, last.Kind)
	assert.Equal(t, 5, last.Line)

	// `print` on line 4
	var printTok *Token
	for _, tok := range toks {
		if tok.Value == "print" {
			printTok = tok
		}
	}
	require.NotNil(t, printTok)
	assert.Equal(t, TOK_KEYWORD, printTok.Kind)
	assert.Equal(t, 4, printTok.Line)
}

func TestTokenizeLexicalErrors(t *testing.T) {
	for _, test := range []struct {
		src     string
		segment string
		line    int
	}{
		{"x @ y;", "@", 1},
		{"int a;\nb = 5$;", "$", 2},
		{`string s = "hello";`, `"hello"`, 1},
		{"x = 12abc;", "12abc", 1},
		{"x = 3.;", ".", 1},
	} {
		toks, err := Tokenize(test.src)
		require.Error(t, err, test.src)
		assert.Nil(t, toks, test.src)
		require.True(t, report.IsKind(err, report.KindLexical), test.src)

		cerr := err.(*report.CompileError)
		assert.Equal(t, test.segment, cerr.Lexeme, test.src)
		assert.Equal(t, test.line, cerr.Line, test.src)
	}
}

func TestClassifyPriority(t *testing.T) {
	for seg, kind := range map[string]Category{
		"if":    TOK_KEYWORD,
		"int":   TOK_DATATYPE,
		"-":     TOK_ARITHOP,
		">=":    TOK_RELOP,
		"007":   TOK_NUMBER,
		"_tmp1": TOK_IDENT,
		"{":     TOK_LBRACE,
		"=":     TOK_ASSIGN,
		";":     TOK_SEMI,
		"# x":   TOK_COMMENT,
	} {
		got, ok := Classify(seg)
		require.True(t, ok, seg)
		assert.Equal(t, kind, got, seg)
	}

	_, ok := Classify("@")
	assert.False(t, ok)
}

func TestCategoryNames(t *testing.T) {
	assert.Equal(t, "REL_OP", TOK_RELOP.String())
	assert.Equal(t, "Relational Operator", TOK_RELOP.Title())
	assert.Equal(t, "Category(99)", Category(99).String())
}
