package display

import (
	"testing"

	"github.com/abdosharaf9/Simple-Compiler/symtab"
	"github.com/abdosharaf9/Simple-Compiler/syntax"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const program = "int b = 2;\nint a = b;\nif (a > b) {\n\tprint(a);\n}"

func TestTokenRows(t *testing.T) {
	toks, err := syntax.Tokenize("int x = 5;")
	require.NoError(t, err)

	rows := TokenRows(toks)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"Line", "Lexeme", "Token"}, rows[0])
	assert.Equal(t, []string{"1", "int", "Data Type"}, rows[1])
	assert.Equal(t, []string{"1", ";", "Semicolon"}, rows[5])
}

func TestSymbolAndHashRows(t *testing.T) {
	toks, err := syntax.Tokenize(program)
	require.NoError(t, err)
	tables, err := symtab.BuildSymbolTables(toks, symtab.DefaultOptions())
	require.NoError(t, err)

	rows := SymbolRows(tables.Base)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"b", "int", "1", "2, 3", "0x00100", "Global", "1"}, rows[1])
	assert.Equal(t, []string{"a", "int", "2", "3, 4", "0x00101", "Global", "1"}, rows[2])

	ordered := SymbolRows(tables.Ordered)
	assert.Equal(t, "a", ordered[1][0])
	assert.Equal(t, "0x00100", ordered[1][4])

	hash := HashRows(tables.Hash)
	require.Len(t, hash, 3)
	// "a" -> (1+97)%2 = 0, "b" -> (1+98)%2 = 1
	assert.Equal(t, []string{"0", "a"}, hash[1])
	assert.Equal(t, []string{"1", "b"}, hash[2])
}

func TestSearchTreeList(t *testing.T) {
	st := symtab.NewSearchTree([]string{"m", "c", "x"})

	assert.Equal(t, pterm.LeveledList{
		{Level: 0, Text: "m"},
		{Level: 1, Text: "L: c"},
		{Level: 1, Text: "R: x"},
	}, SearchTreeList(st))
}

func TestParseTreeList(t *testing.T) {
	toks, err := syntax.Tokenize("x = 1;")
	require.NoError(t, err)
	root, err := syntax.Parse(toks)
	require.NoError(t, err)

	list := ParseTreeList(root)
	require.Len(t, list, 8)
	assert.Equal(t, pterm.LeveledListItem{Level: 0, Text: "stmt_list"}, list[0])
	assert.Equal(t, pterm.LeveledListItem{Level: 1, Text: "assign_stmt"}, list[1])
	assert.Equal(t, pterm.LeveledListItem{Level: 2, Text: "ID(x)"}, list[2])
	assert.Equal(t, pterm.LeveledListItem{Level: 4, Text: "NUMBER(1)"}, list[6])
}
