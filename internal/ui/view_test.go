package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/treemenu/internal/tree"
)

func plainView(h *Harness) string {
	return ansi.Strip(h.View())
}

func TestViewDrawsGuidesAndIndicators(t *testing.T) {
	h := NewHarness(NewModel(breakfastTree(tree.Options{ExpandAll: true}), Options{}))
	view := plainView(h)
	for _, want := range []string{
		"Breakfast Menu",
		"▾ Breakfast",
		"│   ├── • Eggs",
		"│   └── • Bacon",
		"• Coffee",
		"Breakfast, expanded, level 1, 1 of 2",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
}

func TestViewHidesCollapsedChildren(t *testing.T) {
	h := NewHarness(NewModel(breakfastTree(tree.Options{}), Options{}))
	view := plainView(h)
	if !strings.Contains(view, "▸ Breakfast") {
		t.Fatalf("expected collapsed indicator, got:\n%s", view)
	}
	if strings.Contains(view, "Eggs") {
		t.Fatalf("expected Eggs hidden, got:\n%s", view)
	}
}

func TestViewMarksSelection(t *testing.T) {
	h := NewHarness(NewModel(breakfastTree(tree.Options{ExpandAll: true}), Options{}))
	h.Keys(keyDown, keyEnter)
	view := plainView(h)
	if !strings.Contains(view, "Eggs ✓") {
		t.Fatalf("expected selection mark on Eggs, got:\n%s", view)
	}
	if !strings.Contains(view, "Eggs, level 2, 1 of 2, selected") {
		t.Fatalf("expected announcement for Eggs, got:\n%s", view)
	}
}

func TestViewTruncatesToWidth(t *testing.T) {
	h := NewHarness(NewModel(breakfastTree(tree.Options{ExpandAll: true}), Options{Width: 12, ShowFooter: true}))
	for _, line := range strings.Split(h.View(), "\n") {
		if w := ansi.StringWidth(line); w > 12 {
			t.Fatalf("expected width <= 12, got %d for %q", w, ansi.Strip(line))
		}
	}
}

func TestViewScrollsWithFocus(t *testing.T) {
	tr := flatTree("Item One", "Item Two", "Item Three", "Item Four", "Item Five")
	h := NewHarness(NewModel(tr, Options{Height: 4}))
	h.Keys(keyDown, keyDown, keyDown)
	view := plainView(h)
	if strings.Contains(view, "Item One") || strings.Contains(view, "Item Two") {
		t.Fatalf("expected early rows scrolled away, got:\n%s", view)
	}
	if !strings.Contains(view, "• Item Three") || !strings.Contains(view, "• Item Four") {
		t.Fatalf("expected rows around focus, got:\n%s", view)
	}
	h.Keys(keyUp, keyUp, keyUp)
	view = plainView(h)
	if !strings.Contains(view, "• Item One") {
		t.Fatalf("expected scroll back to top, got:\n%s", view)
	}
}

func TestFooterShowsHelpAndInstructions(t *testing.T) {
	tr := breakfastTree(tree.Options{Instructions: "Use the arrow keys to move."})
	h := NewHarness(NewModel(tr, Options{ShowFooter: true}))
	view := plainView(h)
	if !strings.Contains(view, "search") || !strings.Contains(view, "quit") {
		t.Fatalf("expected key help in footer, got:\n%s", view)
	}
	if !strings.Contains(view, "Use the arrow keys to move.") {
		t.Fatalf("expected instructions in footer, got:\n%s", view)
	}
	h.Send(keySlash)
	if !strings.Contains(plainView(h), "next match") {
		t.Fatalf("expected search help while searching, got:\n%s", plainView(h))
	}
}

func TestTreePrefixNested(t *testing.T) {
	items := []tree.Item{
		{Label: "A", Children: []tree.Item{
			{Label: "B", Children: []tree.Item{{Label: "C"}}},
			{Label: "D"},
		}},
	}
	tr := tree.Build(tree.NewCounter(), items, tree.Options{ExpandAll: true})
	all := tr.All()
	want := []string{"", "    ├── ", "    │   └── ", "    └── "}
	for i, n := range all {
		if got := treePrefix(n); got != want[i] {
			t.Fatalf("%s: expected prefix %q, got %q", n.Label, want[i], got)
		}
	}
}
