package symtab

import "github.com/abdosharaf9/Simple-Compiler/syntax"

// Tables holds the four views of a program's identifiers.  Ordered, Tree and
// Hash are derived from a snapshot of Base and share no entries with it.
type Tables struct {
	// Base is keyed in first-sighting order.
	Base *Table

	// Ordered is keyed in lexicographic name order.
	Ordered *Table

	Tree *SearchTree
	Hash *HashIndex

	// Redeclarations are typed sightings of already declared names.
	Redeclarations []Redeclaration
}

// BuildSymbolTables runs the scope-tracking pass over toks and derives the
// ordered, search tree, and hash views from its result.
func BuildSymbolTables(toks []*syntax.Token, opts Options) (*Tables, error) {
	b := NewBuilder(opts)

	base, err := b.Build(toks)
	if err != nil {
		return nil, err
	}

	snap, err := base.snapshot()
	if err != nil {
		return nil, err
	}

	names := base.Names()
	return &Tables{
		Base:           base,
		Ordered:        buildOrdered(snap, opts),
		Tree:           NewSearchTree(names),
		Hash:           NewHashIndex(names),
		Redeclarations: b.Redeclarations(),
	}, nil
}
