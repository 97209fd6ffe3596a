package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/treemenu/internal/tree"
)

const (
	indicatorLeaf      = "•"
	indicatorExpanded  = "▾"
	indicatorCollapsed = "▸"
	selectedMark       = " ✓"
	ellipsis           = "…"
)

// View implements tea.Model.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

func (m *Model) render() string {
	lines := make([]string, 0, 16)
	snap := m.tree.Snapshot()
	title := snap.Label
	if title == "" {
		title = snap.ID
	}
	lines = append(lines, paint(styles.Title, title))

	visible := m.tree.Visible()
	if len(visible) == 0 {
		lines = append(lines, paint(styles.Info, "(empty menu)"))
	} else {
		maxRows := m.maxVisibleRows()
		m.viewport.Follow(m.tree.VisibleIndex(m.tree.Focused()), len(visible), maxRows)
		start, end := m.viewport.Window(len(visible), maxRows)
		for _, n := range visible[start:end] {
			a, _ := snap.Item(n.ID)
			lines = append(lines, m.renderRow(n, a))
		}
	}

	lines = append(lines, paint(styles.Info, announce(snap)))
	if m.searching {
		prompt := paint(styles.SearchPrompt, "/") + m.search.View()
		if m.searchMiss {
			prompt += paint(styles.SearchMiss, "  no match")
		}
		lines = append(lines, prompt)
	}
	if m.showFooter {
		lines = append(lines, "")
		if m.searching {
			lines = append(lines, paint(styles.Footer, m.help.ShortHelpView(searchKeys.ShortHelp())))
		} else {
			lines = append(lines, paint(styles.Footer, m.help.ShortHelpView(keys.ShortHelp())))
		}
		if snap.Instructions != "" {
			lines = append(lines, paint(styles.Instructions, snap.Instructions))
		}
	}
	return strings.Join(fitWidth(lines, m.width), "\n")
}

func (m *Model) renderRow(n *tree.Node, a tree.Attrs) string {
	var b strings.Builder
	b.WriteString(paint(styles.Prefix, treePrefix(n)))
	b.WriteString(paint(styles.Indicator, indicator(a)))
	b.WriteString(" ")
	switch {
	case a.Current:
		b.WriteString(paint(styles.Focused, a.Label))
	case a.Selected:
		b.WriteString(paint(styles.Selected, a.Label))
	default:
		b.WriteString(paint(styles.Item, a.Label))
	}
	if a.Selected {
		b.WriteString(paint(styles.SelectedMark, selectedMark))
	}
	return b.String()
}

// maxVisibleRows returns how many tree rows fit, or -1 without a height.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // title + announcement
	if m.searching {
		used++
	}
	if m.showFooter {
		used += 2
		if m.tree.Snapshot().Instructions != "" {
			used++
		}
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

// treePrefix draws the branch guides for n. Roots have none.
func treePrefix(n *tree.Node) string {
	if n.Parent == nil {
		return ""
	}
	var ancestors []*tree.Node
	for p := n.Parent; p != nil; p = p.Parent {
		ancestors = append([]*tree.Node{p}, ancestors...)
	}
	var b strings.Builder
	for _, a := range ancestors {
		if a.Position < a.SetSize {
			b.WriteString("│   ")
		} else {
			b.WriteString("    ")
		}
	}
	if n.Position == n.SetSize {
		b.WriteString("└── ")
	} else {
		b.WriteString("├── ")
	}
	return b.String()
}

func indicator(a tree.Attrs) string {
	if !a.Branch() {
		return indicatorLeaf
	}
	if a.IsExpanded() {
		return indicatorExpanded
	}
	return indicatorCollapsed
}

// announce phrases the focused node the way a screen reader would read its
// attributes.
func announce(snap tree.Snapshot) string {
	if snap.ActiveDescendant == "" {
		return "no items"
	}
	a, ok := snap.Item(snap.ActiveDescendant)
	if !ok {
		return ""
	}
	parts := []string{a.Label}
	if a.Branch() {
		if a.IsExpanded() {
			parts = append(parts, "expanded")
		} else {
			parts = append(parts, "collapsed")
		}
	}
	parts = append(parts, fmt.Sprintf("level %d", a.Level), fmt.Sprintf("%d of %d", a.PosInSet, a.SetSize))
	if a.Selected {
		parts = append(parts, "selected")
	}
	return strings.Join(parts, ", ")
}

func fitWidth(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Truncate(line, width, ellipsis)
		}
	}
	return lines
}

func paint(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
