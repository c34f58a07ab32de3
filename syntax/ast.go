package syntax

import (
	"bufio"
	"io"
	"strings"
)

// Labels of the interior nodes of the parse tree: one per grammar production.
const (
	LabelStmtList   = "stmt_list"
	LabelDecStmt    = "dec_stmt"
	LabelAssignStmt = "assign_stmt"
	LabelPrintStmt  = "print_stmt"
	LabelIfStmt     = "if_stmt"
	LabelRelExpr    = "rel_expr"
	LabelArithExpr  = "arith_expr"
	LabelTerm       = "term"
)

// Node is a node of the concrete parse tree.  Each node exclusively owns its
// children.  Interior nodes are labeled with the production they represent;
// leaves hold the token they consumed.  Trees are never modified after Parse
// returns them.
type Node struct {
	// Label is the production name for interior nodes and the token's
	// `CATEGORY(text)` form for leaves.
	Label string

	// Tok is the consumed token.  It is nil for interior nodes.
	Tok *Token

	Children []*Node
}

// newBranch creates an interior node for the given production.
func newBranch(label string) *Node {
	return &Node{Label: label}
}

// newLeaf creates a leaf node for a consumed token.
func newLeaf(tok *Token) *Node {
	return &Node{Label: tok.String(), Tok: tok}
}

// add appends a child to the node.
func (n *Node) add(child *Node) {
	n.Children = append(n.Children, child)
}

// IsLeaf returns whether the node represents a terminal token.
func (n *Node) IsLeaf() bool {
	return n.Tok != nil
}

// Walk visits the tree in pre-order.  depth is zero at the node Walk was
// called on.
func (n *Node) Walk(visit func(node *Node, depth int)) {
	n.walk(visit, 0)
}

func (n *Node) walk(visit func(node *Node, depth int), depth int) {
	visit(n, depth)

	for _, child := range n.Children {
		child.walk(visit, depth+1)
	}
}

// Leaves returns the tokens at the leaves of the tree from left to right.
func (n *Node) Leaves() []*Token {
	var toks []*Token
	n.Walk(func(node *Node, _ int) {
		if node.IsLeaf() {
			toks = append(toks, node.Tok)
		}
	})

	return toks
}

// WriteTo writes the tree in pre-order, one node per line, indented by one tab
// per level of depth.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)

	var written int64
	var err error
	n.Walk(func(node *Node, depth int) {
		if err != nil {
			return
		}

		var c int
		c, err = bw.WriteString(strings.Repeat("\t", depth) + node.Label + "\n")
		written += int64(c)
	})

	if err != nil {
		return written, err
	}

	return written, bw.Flush()
}
