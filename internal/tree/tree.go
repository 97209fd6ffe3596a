package tree

// Options configures a tree instance.
type Options struct {
	// Instructions is exposed to assistive technology only.
	Instructions string
	// MenuTitle is the accessible name of the whole tree.
	MenuTitle string
	// ExpandAll is the initial expanded state of every branch.
	ExpandAll bool
	// SelectionFollowsFocus makes every focus move select the focused node.
	SelectionFollowsFocus bool
}

// Tree is one widget instance. Focus and selection are only changed through
// the instance's Controller.
type Tree struct {
	ID      string
	Options Options
	Roots   []*Node

	focused  *Node
	selected *Node
	index    map[string]*Node
	order    []*Node
	nav      *Controller
	snapshot Snapshot
}

// Node looks up a node by id.
func (t *Tree) Node(id string) *Node {
	if t == nil || id == "" {
		return nil
	}
	return t.index[id]
}

// Len returns the total number of nodes, visible or not.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Empty reports whether the tree has no nodes.
func (t *Tree) Empty() bool {
	return t.Len() == 0
}

// All returns every node in document order.
func (t *Tree) All() []*Node {
	if t == nil {
		return nil
	}
	out := make([]*Node, len(t.order))
	copy(out, t.order)
	return out
}

// Focused returns the node holding keyboard focus, or nil for an empty tree.
func (t *Tree) Focused() *Node {
	if t == nil {
		return nil
	}
	return t.focused
}

// Selected returns the selected node, if any.
func (t *Tree) Selected() *Node {
	if t == nil {
		return nil
	}
	return t.selected
}

// Controller returns the navigation controller owned by this tree.
func (t *Tree) Controller() *Controller {
	if t == nil {
		return nil
	}
	return t.nav
}

// Snapshot returns the accessibility attributes as of the last transition.
func (t *Tree) Snapshot() Snapshot {
	if t == nil {
		return Snapshot{}
	}
	return t.snapshot
}

// Visible walks the visible traversal order: each node, then the children of
// expanded branches. It is recomputed on every call.
func (t *Tree) Visible() []*Node {
	if t == nil {
		return nil
	}
	out := make([]*Node, 0, len(t.order))
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			out = append(out, n)
			if n.IsBranch() && n.Expanded {
				walk(n.Children)
			}
		}
	}
	walk(t.Roots)
	return out
}

// VisibleIndex returns the position of n in the visible order, or -1.
func (t *Tree) VisibleIndex(n *Node) int {
	if n == nil {
		return -1
	}
	for i, v := range t.Visible() {
		if v == n {
			return i
		}
	}
	return -1
}
