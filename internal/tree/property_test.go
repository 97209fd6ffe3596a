package tree

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

// drawItems generates a random forest up to the given depth.
func drawItems(t *rapid.T, depth int, label string) []Item {
	if depth <= 0 {
		return nil
	}
	n := rapid.IntRange(0, 4).Draw(t, label+"/n")
	items := make([]Item, n)
	for i := range items {
		name := fmt.Sprintf("%s.%d", label, i)
		items[i] = Item{Label: name}
		if rapid.Bool().Draw(t, name+"/branch") {
			items[i].Children = drawItems(t, depth-1, name)
		}
	}
	return items
}

type op int

const (
	opDown op = iota
	opUp
	opLeft
	opRight
	opActivate
)

// apply runs one random event. Activate targets a random visible node, the
// way a pointer click would.
func apply(t *rapid.T, tr *Tree, o op, step int) {
	nav := tr.Controller()
	switch o {
	case opDown:
		nav.MoveDown()
	case opUp:
		nav.MoveUp()
	case opLeft:
		nav.MoveLeft()
	case opRight:
		nav.MoveRight()
	case opActivate:
		visible := tr.Visible()
		if len(visible) == 0 {
			nav.Activate("")
			return
		}
		target := rapid.SampledFrom(visible).Draw(t, fmt.Sprintf("target/%d", step))
		nav.Activate(target.ID)
	}
}

func drawTree(t *rapid.T) *Tree {
	items := drawItems(t, 3, "n")
	opts := Options{
		ExpandAll:             rapid.Bool().Draw(t, "expandAll"),
		SelectionFollowsFocus: rapid.Bool().Draw(t, "followFocus"),
	}
	return Build(NewCounter(), items, opts)
}

func checkInvariants(t *rapid.T, tr *Tree) {
	snap := tr.Snapshot()
	if err := snap.Validate(); err != nil {
		t.Fatalf("invalid snapshot: %v", err)
	}
	if !snap.Equal(Project(tr)) {
		t.Fatalf("snapshot is stale")
	}
	if tr.Empty() {
		return
	}
	if f := tr.Focused(); f == nil || f.Hidden() || tr.VisibleIndex(f) < 0 {
		t.Fatalf("focused node is not visible")
	}
	for _, n := range tr.All() {
		if n.Position < 1 || n.Position > n.SetSize {
			t.Fatalf("%s position %d outside 1..%d", n.ID, n.Position, n.SetSize)
		}
		if (n.Kind == Branch) != (len(n.Children) > 0) {
			t.Fatalf("%s kind %s disagrees with %d children", n.ID, n.Kind, len(n.Children))
		}
	}
}

func TestPropertyInvariantsHoldAfterAnyEventSequence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := drawTree(t)
		checkInvariants(t, tr)
		ops := rapid.SliceOfN(rapid.SampledFrom([]op{opDown, opUp, opLeft, opRight, opActivate}), 0, 40).Draw(t, "ops")
		for i, o := range ops {
			apply(t, tr, o, i)
			checkInvariants(t, tr)
		}
	})
}

func TestPropertyMoveDownThenUpReturns(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := drawTree(t)
		ops := rapid.SliceOfN(rapid.SampledFrom([]op{opDown, opRight, opActivate}), 0, 20).Draw(t, "ops")
		for i, o := range ops {
			apply(t, tr, o, i)
		}
		start := tr.Focused()
		if start == nil {
			return
		}
		if !tr.Controller().MoveDown() {
			return
		}
		tr.Controller().MoveUp()
		if tr.Focused() != start {
			t.Fatalf("expected focus back on %s, got %s", start.ID, tr.Focused().ID)
		}
	})
}

func TestPropertyBoundaryMovesChangeNothing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := drawTree(t)
		visible := tr.Visible()
		if len(visible) == 0 {
			return
		}
		nav := tr.Controller()
		before := tr.Snapshot()
		if nav.MoveUp() || !before.Equal(tr.Snapshot()) {
			t.Fatalf("MoveUp at first visible node changed state")
		}
		for nav.MoveDown() {
		}
		if tr.Focused() != tr.Visible()[len(tr.Visible())-1] {
			t.Fatalf("expected focus on last visible node")
		}
		last := tr.Snapshot()
		if nav.MoveDown() || !last.Equal(tr.Snapshot()) {
			t.Fatalf("MoveDown at last visible node changed state")
		}
	})
}

func TestPropertyActivateTwiceRestoresBranch(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := drawTree(t)
		var branches []*Node
		for _, n := range tr.Visible() {
			if n.IsBranch() {
				branches = append(branches, n)
			}
		}
		if len(branches) == 0 {
			return
		}
		b := rapid.SampledFrom(branches).Draw(t, "branch")
		original := b.Expanded
		nav := tr.Controller()
		nav.Activate(b.ID)
		if b.Expanded == original || tr.Selected() != b {
			t.Fatalf("expected first activation to toggle and select %s", b.ID)
		}
		nav.Activate(b.ID)
		if b.Expanded != original || tr.Selected() != b {
			t.Fatalf("expected second activation to restore %s", b.ID)
		}
	})
}
