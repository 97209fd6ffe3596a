package ui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/treemenu/internal/logging/events"
	"github.com/atomicstack/treemenu/internal/tree"
)

const (
	eventNone   = "none"
	eventSearch = "search"
	eventQuit   = "quit"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	press, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	if m.searching {
		return m.handleSearchKey(press)
	}
	event, cmd := m.decodeKey(press)
	events.UI.Key(press.String(), event)
	return cmd
}

// decodeKey maps a key press onto a semantic tree event. The returned name is
// the event that was issued, whether or not it changed anything.
func (m *Model) decodeKey(msg tea.KeyPressMsg) (string, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		m.nav.MoveUp()
		return tree.TransitionMoveUp, nil
	case key.Matches(msg, keys.Down):
		m.nav.MoveDown()
		return tree.TransitionMoveDown, nil
	case key.Matches(msg, keys.Left):
		m.nav.MoveLeft()
		return tree.TransitionMoveLeft, nil
	case key.Matches(msg, keys.Right):
		m.nav.MoveRight()
		return tree.TransitionMoveRight, nil
	case key.Matches(msg, keys.Activate):
		if focused := m.tree.Focused(); focused != nil {
			m.nav.Activate(focused.ID)
		}
		return tree.TransitionActivate, nil
	case key.Matches(msg, keys.Search):
		m.openSearch()
		return eventSearch, nil
	case key.Matches(msg, keys.Quit):
		return eventQuit, tea.Quit
	}
	return eventNone, nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}
