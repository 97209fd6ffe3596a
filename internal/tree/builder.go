package tree

import (
	"fmt"
	"strings"

	"github.com/atomicstack/treemenu/internal/logging/events"
)

// Build converts a raw nested list into a tree. The counter supplies the
// instance number (tree0, tree1, ...) and is advanced exactly once. Items are
// assumed acyclic; an empty slice yields an empty tree.
func Build(counter *Counter, items []Item, opts Options) *Tree {
	if counter == nil {
		counter = NewCounter()
	}
	t := &Tree{
		ID:      fmt.Sprintf("tree%d", counter.Next()),
		Options: opts,
		index:   make(map[string]*Node),
	}
	t.Roots = t.buildLevel(items, nil, 1)
	if len(t.Roots) > 0 {
		t.focused = t.Roots[0]
	}
	t.nav = &Controller{tree: t}
	t.snapshot = Project(t)
	events.Tree.Built(t.ID, len(t.Roots), len(t.order), opts.ExpandAll)
	return t
}

func (t *Tree) buildLevel(items []Item, parent *Node, level int) []*Node {
	if len(items) == 0 {
		return nil
	}
	nodes := make([]*Node, 0, len(items))
	for i, item := range items {
		n := &Node{
			ID:       fmt.Sprintf("%s_menuitem_%d", t.ID, len(t.order)),
			Label:    normalizeLabel(item.Label),
			Level:    level,
			Position: i + 1,
			SetSize:  len(items),
			Parent:   parent,
		}
		t.order = append(t.order, n)
		t.index[n.ID] = n
		if len(item.Children) > 0 {
			n.Kind = Branch
			n.Expanded = t.Options.ExpandAll
			n.Children = t.buildLevel(item.Children, n, level+1)
		}
		nodes = append(nodes, n)
	}
	return nodes
}

func normalizeLabel(label string) string {
	return strings.Join(strings.Fields(label), " ")
}
