package ui

import (
	"reflect"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/treemenu/internal/theme"
	"github.com/atomicstack/treemenu/internal/tree"
	uistate "github.com/atomicstack/treemenu/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the terminal presentation.
type Options struct {
	// Width and Height pin the view size; zero follows the terminal.
	Width      int
	Height     int
	ShowFooter bool
}

// Model implements the Bubble Tea model for a tree menu.
type Model struct {
	tree *tree.Tree
	nav  *tree.Controller

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	viewport    uistate.Viewport
	help        help.Model

	search     textinput.Model
	searching  bool
	searchMiss bool

	lastTransition string

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps t. All state changes go through t's Controller.
func NewModel(t *tree.Tree, opts Options) *Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "type to jump"
	input.CharLimit = 64
	m := &Model{
		tree:       t,
		nav:        t.Controller(),
		showFooter: opts.ShowFooter,
		help:       help.New(),
		search:     input,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.nav.OnChange(m.observe)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Tree returns the tree being presented.
func (m *Model) Tree() *tree.Tree {
	return m.tree
}

// Searching reports whether the search prompt is open.
func (m *Model) Searching() bool {
	return m.searching
}

// LastTransition names the most recent transition that changed the tree.
func (m *Model) LastTransition() string {
	return m.lastTransition
}

func (m *Model) observe(transition string, _ tree.Snapshot) {
	m.lastTransition = transition
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyPressMsg{}):   m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}
