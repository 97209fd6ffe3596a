package ui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/treemenu/internal/logging/events"
	uistate "github.com/atomicstack/treemenu/internal/ui/state"
)

func (m *Model) openSearch() {
	events.Search.Open()
	m.searching = true
	m.searchMiss = false
	m.search.Reset()
	// Cursor blink commands are dropped so the prompt cursor stays solid.
	_ = m.search.Focus()
}

func (m *Model) closeSearch() {
	m.searching = false
	m.searchMiss = false
	m.search.Blur()
	m.search.Reset()
}

func (m *Model) handleSearchKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, searchKeys.Cancel), key.Matches(msg, searchKeys.Accept):
		m.closeSearch()
		events.UI.Key(msg.String(), "search-close")
		return nil
	case key.Matches(msg, searchKeys.Next):
		m.jump(m.search.Value(), true)
		events.UI.Key(msg.String(), "search-next")
		return nil
	}
	before := m.search.Value()
	m.search, _ = m.search.Update(msg)
	if query := m.search.Value(); query != before {
		m.jump(query, false)
	}
	return nil
}

// jump moves focus to the best visible match for query. Focus travels one
// MoveDown or MoveUp at a time so every step is an ordinary transition. With
// next set the search starts after the focused node.
func (m *Model) jump(query string, next bool) {
	visible := m.tree.Visible()
	if len(visible) == 0 {
		return
	}
	cur := m.tree.VisibleIndex(m.tree.Focused())
	if cur < 0 {
		cur = 0
	}
	labels := make([]string, len(visible))
	for i, n := range visible {
		labels[i] = n.Label
	}
	from := cur
	if next {
		from = cur + 1
	}
	idx := uistate.BestMatch(labels, query, from)
	if idx < 0 {
		m.searchMiss = query != ""
		if m.searchMiss {
			events.Search.Miss(query)
		}
		return
	}
	m.searchMiss = false
	steps := idx - cur
	for i := 0; i < steps; i++ {
		m.nav.MoveDown()
	}
	for i := 0; i > steps; i-- {
		m.nav.MoveUp()
	}
	events.Search.Jump(query, visible[idx].ID, steps)
}
