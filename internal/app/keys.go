package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/chorus/internal/keymap"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.showHelp {
		_, cmd := m.help.Update(msg)
		return m, cmd
	}

	// The filter line owns the keyboard while it is open.
	if m.pickers[m.focus].Filtering() {
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateFocusedPicker(msg)
	}

	switch m.keys.Resolve(key) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.showHelp = true
		m.help.SetContexts([]string{"global", "recommend", "picker"})
		m.help.SetSize(m.width, m.height)
		return m, nil
	case keymap.ActionFocusNext:
		m.focus = (m.focus + 1) % focusCount
		m.applyFocus()
		return m, nil
	case keymap.ActionFocusPrev:
		m.focus = (m.focus + focusCount - 1) % focusCount
		m.applyFocus()
		return m, nil
	case keymap.ActionAnother:
		m.status = ""
		cmd := m.notifyDrawn(m.session.Another())
		return m, cmd
	case keymap.ActionOpenPlayer:
		return m, m.openPlayer()
	case keymap.ActionMoveUp, keymap.ActionMoveDown, keymap.ActionSelect, keymap.ActionFilter:
		return m.updateFocusedPicker(msg)
	}
	return m, nil
}

func (m Model) updateFocusedPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.pickers[m.focus], cmd = m.pickers[m.focus].Update(msg)
	return m, cmd
}
