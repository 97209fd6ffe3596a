package tree

// Kind distinguishes expandable branches from plain leaves.
type Kind int

const (
	Leaf Kind = iota
	Branch
)

func (k Kind) String() string {
	if k == Branch {
		return "branch"
	}
	return "leaf"
}

// Item is one entry of the raw nested list a tree is built from.
type Item struct {
	Label    string `json:"label" yaml:"label"`
	Children []Item `json:"children,omitempty" yaml:"children,omitempty"`
}

// Node is a single treeitem. Level, Position and SetSize are fixed once the
// builder returns; only Expanded changes afterwards.
type Node struct {
	ID       string
	Label    string
	Level    int // 1 at the roots
	Position int // 1-based index among siblings
	SetSize  int
	Kind     Kind
	Expanded bool // meaningful for branches only
	Children []*Node
	Parent   *Node
}

// IsBranch reports whether the node has children.
func (n *Node) IsBranch() bool {
	return n != nil && n.Kind == Branch
}

// FirstChild returns the first child or nil for leaves.
func (n *Node) FirstChild() *Node {
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// Hidden reports whether any ancestor is a collapsed branch.
func (n *Node) Hidden() bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if !p.Expanded {
			return true
		}
	}
	return false
}

// Path returns the labels from the root down to n.
func (n *Node) Path() []string {
	var path []string
	for cur := n; cur != nil; cur = cur.Parent {
		path = append([]string{cur.Label}, path...)
	}
	return path
}
