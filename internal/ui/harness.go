package ui

import tea "charm.land/bubbletea/v2"

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
// It reports whether the model asked the program to quit.
func (h *Harness) Send(msg tea.Msg) bool {
	if h.model == nil {
		return false
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	return h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) bool {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return false
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
	return false
}

// Keys sends each key press in order.
func (h *Harness) Keys(presses ...tea.KeyPressMsg) {
	for _, p := range presses {
		h.Send(p)
	}
}

// Type sends one key press per rune of s.
func (h *Harness) Type(s string) {
	for _, r := range s {
		h.Send(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// View returns the current rendered content.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.render()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
