// Package display renders tokens, symbol tables, and trees to the terminal.
// It is a pure sink: nothing it does feeds back into compilation.
package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abdosharaf9/Simple-Compiler/symtab"
	"github.com/abdosharaf9/Simple-Compiler/syntax"
	"github.com/pterm/pterm"
)

// TokenRows builds the token table: one row per token below a header row.
func TokenRows(toks []*syntax.Token) pterm.TableData {
	data := pterm.TableData{{"Line", "Lexeme", "Token"}}
	for _, tok := range toks {
		data = append(data, []string{strconv.Itoa(tok.Line), tok.Value, tok.Kind.Title()})
	}

	return data
}

// RenderTokens prints the token count followed by the token table.
func RenderTokens(toks []*syntax.Token) error {
	fmt.Printf("Total number of lexemes and tokens: %d\n\n", len(toks))
	return pterm.DefaultTable.WithHasHeader().WithData(TokenRows(toks)).Render()
}

// -----------------------------------------------------------------------------

// SymbolRows builds the rows of a symbol table in table order.
func SymbolRows(table *symtab.Table) pterm.TableData {
	data := pterm.TableData{{"Name", "Type", "Declared", "References", "Address", "Scope", "Dimension"}}
	for _, entry := range table.Entries() {
		refs := make([]string, len(entry.RefLines))
		for i, line := range entry.RefLines {
			refs[i] = strconv.Itoa(line)
		}

		data = append(data, []string{
			entry.Name,
			entry.DataType,
			strconv.Itoa(entry.DeclLine),
			strings.Join(refs, ", "),
			entry.AddressString(),
			entry.Scope.String(),
			strconv.Itoa(entry.Dimension),
		})
	}

	return data
}

// RenderSymbolTable prints a titled symbol table.
func RenderSymbolTable(title string, table *symtab.Table) error {
	pterm.DefaultSection.WithLevel(2).Println(title)

	if table.Len() == 0 {
		fmt.Println("(no identifiers)")
		return nil
	}

	return pterm.DefaultTable.WithHasHeader().WithData(SymbolRows(table)).Render()
}

// HashRows builds one row per bucket of the hash index.
func HashRows(h *symtab.HashIndex) pterm.TableData {
	data := pterm.TableData{{"Bucket", "Names"}}
	for b := 0; b < h.Len(); b++ {
		data = append(data, []string{strconv.Itoa(b), strings.Join(h.Chain(b), " -> ")})
	}

	return data
}

// RenderHashIndex prints the buckets of the hash index.
func RenderHashIndex(h *symtab.HashIndex) error {
	pterm.DefaultSection.WithLevel(2).Println("Hash Table")

	if h.Len() == 0 {
		fmt.Println("(no buckets)")
		return nil
	}

	return pterm.DefaultTable.WithHasHeader().WithData(HashRows(h)).Render()
}

// -----------------------------------------------------------------------------

var sideMarkers = map[symtab.TreeSide]string{
	symtab.SideRoot:  "",
	symtab.SideLeft:  "L: ",
	symtab.SideRight: "R: ",
}

// SearchTreeList flattens the search tree into a leveled list, marking each
// child with the side it hangs from.
func SearchTreeList(st *symtab.SearchTree) pterm.LeveledList {
	var list pterm.LeveledList
	st.Walk(func(node *symtab.TreeNode, depth int, side symtab.TreeSide) {
		list = append(list, pterm.LeveledListItem{Level: depth, Text: sideMarkers[side] + node.Name})
	})

	return list
}

// RenderSearchTree prints the search tree.
func RenderSearchTree(st *symtab.SearchTree) error {
	pterm.DefaultSection.WithLevel(2).Println("Binary Search Tree")

	if st.Root == nil {
		fmt.Println("(empty)")
		return nil
	}

	return pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(SearchTreeList(st))).Render()
}

// ParseTreeList flattens the parse tree into a leveled list in pre-order.
func ParseTreeList(root *syntax.Node) pterm.LeveledList {
	var list pterm.LeveledList
	root.Walk(func(node *syntax.Node, depth int) {
		list = append(list, pterm.LeveledListItem{Level: depth, Text: node.Label})
	})

	return list
}

// RenderParseTree prints the parse tree.
func RenderParseTree(root *syntax.Node) error {
	return pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ParseTreeList(root))).Render()
}
