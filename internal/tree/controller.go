package tree

import "github.com/atomicstack/treemenu/internal/logging/events"

// Transition names passed to observers and trace events.
const (
	TransitionActivate  = "activate"
	TransitionMoveDown  = "move-down"
	TransitionMoveUp    = "move-up"
	TransitionMoveLeft  = "move-left"
	TransitionMoveRight = "move-right"
)

// Observer receives the refreshed attributes at the end of every transition
// that changed state.
type Observer func(transition string, snap Snapshot)

// Controller interprets semantic navigation events for one tree. Every
// transition re-projects the tree's Snapshot before returning, so callers
// never see state and attributes disagree. All methods report whether
// anything changed; out-of-range moves and empty trees are no-ops.
type Controller struct {
	tree      *Tree
	observers []Observer
}

// OnChange registers an observer. Observers run synchronously, in
// registration order, inside the transition.
func (c *Controller) OnChange(fn Observer) {
	if c == nil || fn == nil {
		return
	}
	c.observers = append(c.observers, fn)
}

// Tree returns the tree this controller drives.
func (c *Controller) Tree() *Tree {
	if c == nil {
		return nil
	}
	return c.tree
}

// MoveDown focuses the next visible node.
func (c *Controller) MoveDown() bool {
	return c.step(TransitionMoveDown, 1)
}

// MoveUp focuses the previous visible node.
func (c *Controller) MoveUp() bool {
	return c.step(TransitionMoveUp, -1)
}

// MoveLeft collapses an expanded branch, otherwise focuses the parent.
func (c *Controller) MoveLeft() bool {
	cur := c.current()
	if cur == nil {
		return false
	}
	if cur.IsBranch() && cur.Expanded {
		c.toggle(cur)
		return c.commit(TransitionMoveLeft)
	}
	if cur.Parent == nil {
		return false
	}
	c.focus(cur.Parent)
	return c.commit(TransitionMoveLeft)
}

// MoveRight expands a collapsed branch, otherwise focuses its first child.
// Leaves ignore it.
func (c *Controller) MoveRight() bool {
	cur := c.current()
	if cur == nil || !cur.IsBranch() {
		return false
	}
	if !cur.Expanded {
		c.toggle(cur)
		return c.commit(TransitionMoveRight)
	}
	c.focus(cur.FirstChild())
	return c.commit(TransitionMoveRight)
}

// Activate focuses the node, toggles it when it is a branch and makes it the
// selected node. Unknown ids and nodes inside a collapsed branch are ignored.
func (c *Controller) Activate(id string) bool {
	if c == nil || c.tree == nil {
		return false
	}
	n := c.tree.Node(id)
	if n == nil || n.Hidden() {
		return false
	}
	c.focus(n)
	c.toggle(n)
	c.selectNode(n)
	return c.commit(TransitionActivate)
}

func (c *Controller) current() *Node {
	if c == nil || c.tree == nil {
		return nil
	}
	return c.tree.focused
}

func (c *Controller) step(transition string, delta int) bool {
	cur := c.current()
	if cur == nil {
		return false
	}
	visible := c.tree.Visible()
	idx := -1
	for i, n := range visible {
		if n == cur {
			idx = i
			break
		}
	}
	next := idx + delta
	if idx < 0 || next < 0 || next >= len(visible) {
		return false
	}
	c.focus(visible[next])
	return c.commit(transition)
}

// toggle flips a branch; leaves are untouched.
func (c *Controller) toggle(n *Node) {
	if !n.IsBranch() {
		return
	}
	n.Expanded = !n.Expanded
	events.Nav.Toggle(c.tree.ID, n.ID, n.Expanded)
}

func (c *Controller) focus(n *Node) {
	if n == nil {
		return
	}
	c.tree.focused = n
	if c.tree.Options.SelectionFollowsFocus {
		c.selectNode(n)
	}
}

func (c *Controller) selectNode(n *Node) {
	c.tree.selected = n
}

// commit re-projects the attributes and notifies observers. It reports false
// when the projection is unchanged.
func (c *Controller) commit(transition string) bool {
	prev := c.tree.snapshot
	c.tree.snapshot = Project(c.tree)
	if prev.Equal(c.tree.snapshot) {
		return false
	}
	focused, selected := "", ""
	if c.tree.focused != nil {
		focused = c.tree.focused.ID
	}
	if c.tree.selected != nil {
		selected = c.tree.selected.ID
	}
	events.Nav.Transition(c.tree.ID, transition, focused, selected)
	for _, fn := range c.observers {
		fn(transition, c.tree.snapshot)
	}
	return true
}
