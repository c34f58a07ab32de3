package symtab

import (
	"github.com/abdosharaf9/Simple-Compiler/common"
	"github.com/abdosharaf9/Simple-Compiler/report"
	"github.com/abdosharaf9/Simple-Compiler/syntax"
)

// Options configures address assignment.
type Options struct {
	// BaseAddress is the address given to the first inserted name.
	BaseAddress int

	// AddressStep is added to the address after every new name.
	AddressStep int

	// RenumberOrdered makes the ordered view reassign addresses densely in
	// name order starting from BaseAddress.
	RenumberOrdered bool
}

// DefaultOptions returns the default addressing options.
func DefaultOptions() Options {
	return Options{
		BaseAddress:     common.DefaultBaseAddress,
		AddressStep:     common.DefaultAddressStep,
		RenumberOrdered: true,
	}
}

// Redeclaration records a typed sighting of a name that was already declared.
// Such sightings are treated as references.
type Redeclaration struct {
	Name     string
	DataType string
	Line     int
}

// scopeTracker is the running state of the builder's single pass.
type scopeTracker struct {
	// pendingType is the data type waiting for the next identifier.
	pendingType string
	hasPending  bool

	// depth is the current brace depth.
	depth int

	// scope is recomputed from depth after every token.
	scope Scope
}

// observe updates the tracker after a token has been handled.
func (st *scopeTracker) observe(tok *syntax.Token) {
	switch tok.Kind {
	case syntax.TOK_DATATYPE:
		st.pendingType = tok.Value
		st.hasPending = true
	case syntax.TOK_LBRACE:
		st.depth++
	case syntax.TOK_RBRACE:
		st.depth--
	}

	st.scope = scopeAt(st.depth)
}

// takeType consumes the pending data type if there is one.
func (st *scopeTracker) takeType() (string, bool) {
	if !st.hasPending {
		return "", false
	}

	typ := st.pendingType
	st.pendingType, st.hasPending = "", false
	return typ, true
}

// Builder builds the base symbol table in a single forward pass over the
// tokens.  It does not look at the parse tree.
type Builder struct {
	opts Options

	table    *Table
	nextAddr int
	tracker  scopeTracker

	redecls []Redeclaration
}

// NewBuilder creates a new builder.
func NewBuilder(opts Options) *Builder {
	return &Builder{
		opts:     opts,
		table:    newTable(),
		nextAddr: opts.BaseAddress,
	}
}

// Build runs the pass and returns the base table.  The first identifier used
// before any declaration aborts the pass with a semantic error.
func (b *Builder) Build(toks []*syntax.Token) (*Table, error) {
	for _, tok := range toks {
		if tok.Kind == syntax.TOK_IDENT {
			if err := b.identifier(tok); err != nil {
				return nil, err
			}
		}

		b.tracker.observe(tok)
	}

	return b.table, nil
}

// Redeclarations returns the typed sightings of already declared names seen
// during the pass.
func (b *Builder) Redeclarations() []Redeclaration {
	return b.redecls
}

// identifier handles a single identifier sighting.
func (b *Builder) identifier(tok *syntax.Token) error {
	entry, exists := b.table.Lookup(tok.Value)

	if typ, ok := b.tracker.takeType(); ok {
		if exists {
			b.redecls = append(b.redecls, Redeclaration{Name: tok.Value, DataType: typ, Line: tok.Line})
			entry.addReference(tok.Line, b.tracker.scope)
			return nil
		}

		b.table.insert(&Entry{
			Name:      tok.Value,
			DataType:  typ,
			DeclLine:  tok.Line,
			RefLines:  []int{},
			RefScopes: []Scope{},
			Address:   b.nextAddr,
			Scope:     b.tracker.scope,
			Dimension: 1,
		})
		b.nextAddr += b.opts.AddressStep
		return nil
	}

	if exists {
		entry.addReference(tok.Line, b.tracker.scope)
		return nil
	}

	return report.RaiseSemantic(tok.Line, tok.Value)
}
