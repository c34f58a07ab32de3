package symtab

import (
	"strconv"

	"github.com/abdosharaf9/Simple-Compiler/common"
)

// Scope is the lexical scope an identifier was seen in.
type Scope int

// Enumeration of scopes.  An identifier is Local whenever it appears inside
// any pair of braces.
const (
	ScopeGlobal Scope = iota
	ScopeLocal
)

func (s Scope) String() string {
	if s == ScopeLocal {
		return "Local"
	}

	return "Global"
}

// scopeAt returns the scope corresponding to a brace depth.
func scopeAt(depth int) Scope {
	if depth == 0 {
		return ScopeGlobal
	}

	return ScopeLocal
}

// Entry is a single identifier in the symbol table.
type Entry struct {
	Name string

	// DataType is the type named by the data type token preceding the
	// declaration.
	DataType string

	// DeclLine is the line of the declaring sighting.  It is never changed
	// after the entry is created.
	DeclLine int

	// RefLines lists the line of every sighting after the declaration in
	// source order.  RefScopes holds the scope of each of those sightings.
	RefLines  []int
	RefScopes []Scope

	Address int

	// Scope is the scope of the declaration.
	Scope Scope

	Dimension int
}

// addReference records a later sighting of the identifier.
func (e *Entry) addReference(line int, scope Scope) {
	e.RefLines = append(e.RefLines, line)
	e.RefScopes = append(e.RefScopes, scope)
}

// AddressString renders the address the way the symbol tables display it.
func (e *Entry) AddressString() string {
	return common.AddressPrefix + strconv.Itoa(e.Address)
}
