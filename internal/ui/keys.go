package ui

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding
	Search   key.Binding
	Quit     key.Binding
}

type searchKeyMap struct {
	Next   key.Binding
	Accept key.Binding
	Cancel key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "collapse")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "expand")),
	Activate: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "select")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var searchKeys = searchKeyMap{
	Next:   key.NewBinding(key.WithKeys("ctrl+n", "tab"), key.WithHelp("tab", "next match")),
	Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
	Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Activate, k.Search, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Activate, k.Search, k.Quit},
	}
}

func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Accept, k.Cancel}
}

func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
