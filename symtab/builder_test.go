package symtab

import (
	"testing"

	"github.com/abdosharaf9/Simple-Compiler/report"
	"github.com/abdosharaf9/Simple-Compiler/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, src string) []*syntax.Token {
	toks, err := syntax.Tokenize(src)
	require.NoError(t, err)
	return toks
}

func buildTables(t *testing.T, src string) *Tables {
	tables, err := BuildSymbolTables(tokenize(t, src), DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, tables)
	return tables
}

func TestBuildSingleDeclaration(t *testing.T) {
	tables := buildTables(t, "int x = 5;")

	require.Equal(t, 1, tables.Base.Len())
	x, ok := tables.Base.Lookup("x")
	require.True(t, ok)

	assert.Equal(t, "x", x.Name)
	assert.Equal(t, "int", x.DataType)
	assert.Equal(t, 1, x.DeclLine)
	assert.Empty(t, x.RefLines)
	assert.Equal(t, 100, x.Address)
	assert.Equal(t, "0x00100", x.AddressString())
	assert.Equal(t, ScopeGlobal, x.Scope)
	assert.Equal(t, 1, x.Dimension)
}

func TestBuildUndeclaredIdentifier(t *testing.T) {
	tables, err := BuildSymbolTables(tokenize(t, "x = 5;"), DefaultOptions())
	require.Error(t, err)
	assert.Nil(t, tables)
	require.True(t, report.IsKind(err, report.KindSemantic))
	assert.Equal(t, "x", err.(*report.CompileError).Lexeme)
	assert.Equal(t, 1, err.(*report.CompileError).Line)
}

func TestBuildLocalReference(t *testing.T) {
	src := "int x = 1;\nif (x > 2) {\n\tprint(x);\n}"
	tables := buildTables(t, src)

	x, ok := tables.Base.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, ScopeGlobal, x.Scope)
	assert.Equal(t, []int{2, 3}, x.RefLines)
	assert.Equal(t, []Scope{ScopeGlobal, ScopeLocal}, x.RefScopes)
}

func TestBuildAddressesAreMonotonic(t *testing.T) {
	opts := Options{BaseAddress: 500, AddressStep: 4, RenumberOrdered: true}
	tables, err := BuildSymbolTables(tokenize(t, "int b; float a; b = a; char c;"), opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a", "c"}, tables.Base.Names())

	addrs := []int{}
	for _, entry := range tables.Base.Entries() {
		addrs = append(addrs, entry.Address)
	}
	assert.Equal(t, []int{500, 504, 508}, addrs)
}

func TestBuildRedeclarationIsReference(t *testing.T) {
	tables := buildTables(t, "int x;\nfloat x = 2;\nx = 3;")

	require.Equal(t, 1, tables.Base.Len())
	x, _ := tables.Base.Lookup("x")
	assert.Equal(t, "int", x.DataType)
	assert.Equal(t, 1, x.DeclLine)
	assert.Equal(t, []int{2, 3}, x.RefLines)

	require.Len(t, tables.Redeclarations, 1)
	assert.Equal(t, Redeclaration{Name: "x", DataType: "float", Line: 2}, tables.Redeclarations[0])
}

func TestBuildScopeTracksBraceDepth(t *testing.T) {
	src := `int g;
if (g > 0) {
	int a = 1;
}
if (g < 0) {
	if (g == 1) {
		float b;
	}
}
int h;`

	toks := tokenize(t, src)
	tables, err := BuildSymbolTables(toks, DefaultOptions())
	require.NoError(t, err)

	// Recompute, per declaring token, whether it sits inside a brace pair.
	depth := 0
	inside := map[int]bool{}
	for i, tok := range toks {
		switch tok.Kind {
		case syntax.TOK_LBRACE:
			depth++
		case syntax.TOK_RBRACE:
			depth--
		case syntax.TOK_IDENT:
			if i > 0 && toks[i-1].Kind == syntax.TOK_DATATYPE {
				inside[tok.Line] = depth > 0
			}
		}
	}

	for _, entry := range tables.Base.Entries() {
		assert.Equal(t, inside[entry.DeclLine], entry.Scope == ScopeLocal, entry.Name)
	}

	for name, scope := range map[string]Scope{"g": ScopeGlobal, "a": ScopeLocal, "b": ScopeLocal, "h": ScopeGlobal} {
		entry, ok := tables.Base.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, scope, entry.Scope, name)
	}
}

func TestBuildPendingTypeIsConsumedOnce(t *testing.T) {
	tables, err := BuildSymbolTables(tokenize(t, "int x = y;"), DefaultOptions())
	require.Error(t, err)
	assert.Nil(t, tables)
	assert.Equal(t, "y", err.(*report.CompileError).Lexeme)
}
