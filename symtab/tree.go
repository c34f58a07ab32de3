package symtab

// TreeNode is a node of the search tree.
type TreeNode struct {
	Name        string
	Left, Right *TreeNode
}

// SearchTree is an unbalanced binary search tree of identifier names.  Its
// shape depends on insertion order: the first name inserted is the root.
// Names equal to a node's name are placed in its right subtree.
type SearchTree struct {
	Root *TreeNode

	size int
}

// NewSearchTree builds a tree by inserting names in the given order.
func NewSearchTree(names []string) *SearchTree {
	st := &SearchTree{}
	for _, name := range names {
		st.Insert(name)
	}

	return st
}

// Insert adds a name to the tree without rebalancing.
func (st *SearchTree) Insert(name string) {
	st.size++

	node := &TreeNode{Name: name}
	if st.Root == nil {
		st.Root = node
		return
	}

	curr := st.Root
	for {
		if name < curr.Name {
			if curr.Left == nil {
				curr.Left = node
				return
			}

			curr = curr.Left
		} else {
			if curr.Right == nil {
				curr.Right = node
				return
			}

			curr = curr.Right
		}
	}
}

// Find returns the first node holding name.
func (st *SearchTree) Find(name string) (*TreeNode, bool) {
	for curr := st.Root; curr != nil; {
		switch {
		case name == curr.Name:
			return curr, true
		case name < curr.Name:
			curr = curr.Left
		default:
			curr = curr.Right
		}
	}

	return nil, false
}

// Len returns the number of names inserted.
func (st *SearchTree) Len() int {
	return st.size
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (st *SearchTree) Height() int {
	return height(st.Root)
}

func height(node *TreeNode) int {
	if node == nil {
		return 0
	}

	lh, rh := height(node.Left), height(node.Right)
	if lh > rh {
		return lh + 1
	}

	return rh + 1
}

// InOrder returns the names in sorted order.
func (st *SearchTree) InOrder() []string {
	names := make([]string, 0, st.size)

	var visit func(node *TreeNode)
	visit = func(node *TreeNode) {
		if node == nil {
			return
		}

		visit(node.Left)
		names = append(names, node.Name)
		visit(node.Right)
	}
	visit(st.Root)

	return names
}

// TreeSide says which child of its parent a node is.
type TreeSide int

// Enumeration of tree sides.
const (
	SideRoot TreeSide = iota
	SideLeft
	SideRight
)

// Walk visits the tree in pre-order (left before right).  The root has depth
// zero and side SideRoot.
func (st *SearchTree) Walk(visit func(node *TreeNode, depth int, side TreeSide)) {
	var walk func(node *TreeNode, depth int, side TreeSide)
	walk = func(node *TreeNode, depth int, side TreeSide) {
		if node == nil {
			return
		}

		visit(node, depth, side)
		walk(node.Left, depth+1, SideLeft)
		walk(node.Right, depth+1, SideRight)
	}
	walk(st.Root, 0, SideRoot)
}
