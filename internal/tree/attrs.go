package tree

import (
	"errors"
	"fmt"
)

// RoleTreeItem is the ARIA role carried by every node.
const RoleTreeItem = "treeitem"

// Attrs is the accessibility projection of a single node.
type Attrs struct {
	ID       string
	Role     string
	Label    string
	TabIndex int // 0 for the focused node, -1 otherwise
	Level    int
	SetSize  int
	PosInSet int
	Expanded *bool // nil for leaves
	Selected bool
	Current  bool
	Hidden   bool
}

// Branch reports whether the attributes belong to an expandable node.
func (a Attrs) Branch() bool {
	return a.Expanded != nil
}

// IsExpanded reports the aria-expanded value; false for leaves.
func (a Attrs) IsExpanded() bool {
	return a.Expanded != nil && *a.Expanded
}

// Snapshot is the accessibility projection of a whole tree.
type Snapshot struct {
	ID               string
	TitleID          string
	InstructionsID   string
	Label            string
	Instructions     string
	ActiveDescendant string
	Items            []Attrs // document order
}

var (
	ErrMultipleFocused  = errors.New("more than one node is focused")
	ErrNoFocus          = errors.New("no node is focused")
	ErrMultipleSelected = errors.New("more than one node is selected")
	ErrHiddenFocus      = errors.New("focused node is inside a collapsed branch")
	ErrTabIndex         = errors.New("tabindex does not follow focus")
)

// Project computes the attributes for the current state of t. It has no side
// effects and is applied at the end of every transition.
func Project(t *Tree) Snapshot {
	if t == nil {
		return Snapshot{}
	}
	snap := Snapshot{
		ID:             t.ID,
		TitleID:        t.ID + "_title",
		InstructionsID: t.ID + "_instructions",
		Label:          t.Options.MenuTitle,
		Instructions:   t.Options.Instructions,
		Items:          make([]Attrs, 0, len(t.order)),
	}
	if t.focused != nil {
		snap.ActiveDescendant = t.focused.ID
	}
	for _, n := range t.order {
		a := Attrs{
			ID:       n.ID,
			Role:     RoleTreeItem,
			Label:    n.Label,
			TabIndex: -1,
			Level:    n.Level,
			SetSize:  n.SetSize,
			PosInSet: n.Position,
			Selected: n == t.selected,
			Current:  n == t.focused,
			Hidden:   n.Hidden(),
		}
		if a.Current {
			a.TabIndex = 0
		}
		if n.IsBranch() {
			expanded := n.Expanded
			a.Expanded = &expanded
		}
		snap.Items = append(snap.Items, a)
	}
	return snap
}

// Item returns the attributes for id.
func (s Snapshot) Item(id string) (Attrs, bool) {
	for _, a := range s.Items {
		if a.ID == id {
			return a, true
		}
	}
	return Attrs{}, false
}

// Equal compares two snapshots field by field.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.ID != o.ID || s.TitleID != o.TitleID || s.InstructionsID != o.InstructionsID ||
		s.Label != o.Label || s.Instructions != o.Instructions ||
		s.ActiveDescendant != o.ActiveDescendant || len(s.Items) != len(o.Items) {
		return false
	}
	for i := range s.Items {
		a, b := s.Items[i], o.Items[i]
		if a.Branch() != b.Branch() || a.IsExpanded() != b.IsExpanded() {
			return false
		}
		a.Expanded, b.Expanded = nil, nil
		if a != b {
			return false
		}
	}
	return true
}

// Validate checks the exclusivity and roving tabindex invariants.
func (s Snapshot) Validate() error {
	focused, selected := 0, 0
	for _, a := range s.Items {
		if a.Current {
			focused++
		}
		if a.Selected {
			selected++
		}
	}
	switch {
	case focused > 1:
		return fmt.Errorf("%w: %d nodes", ErrMultipleFocused, focused)
	case focused == 0 && len(s.Items) > 0:
		return ErrNoFocus
	case selected > 1:
		return fmt.Errorf("%w: %d nodes", ErrMultipleSelected, selected)
	}
	for _, a := range s.Items {
		if (a.TabIndex == 0) != a.Current {
			return fmt.Errorf("%w: %s has tabindex %d", ErrTabIndex, a.ID, a.TabIndex)
		}
		if !a.Current {
			continue
		}
		if a.Hidden {
			return fmt.Errorf("%w: %s", ErrHiddenFocus, a.ID)
		}
		if a.ID != s.ActiveDescendant {
			return fmt.Errorf("%w: %s is current but active descendant is %q", ErrTabIndex, a.ID, s.ActiveDescendant)
		}
	}
	return nil
}
