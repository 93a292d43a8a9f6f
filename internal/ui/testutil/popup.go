package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/chorus/internal/ui/popup"
)

// PopupHarness wraps a popup for testing, recording the commands it returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness initializes p and captures its init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// View returns the popup's rendered content.
func (h *PopupHarness) View() string {
	return h.popup.View()
}

// SendMsg sends any message to the popup and returns the resulting command.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates a key press; see Key for the accepted names.
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(Key(key))
}

// LastCommand returns the most recent command, or nil if none.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ViewContains checks if the stripped view contains substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return ContainsLine(h.View(), substr)
}
