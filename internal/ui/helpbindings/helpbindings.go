// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/chorus/internal/keymap"
	"github.com/llehouerou/chorus/internal/ui"
	"github.com/llehouerou/chorus/internal/ui/popup"
	"github.com/llehouerou/chorus/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

var categoryOrder = []string{"global", "recommend", "picker"}

var categoryLabels = map[string]string{
	"global":    "Global",
	"recommend": "Recommendation",
	"picker":    "Selectors",
}

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a help popup listing every context.
func New() Model {
	m := Model{}
	m.SetContexts(categoryOrder)
	return m
}

// SetContexts sets which binding contexts to display. They are always shown
// in the same order.
func (m *Model) SetContexts(contexts []string) {
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View implements popup.Popup. The border is added by the caller.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := strings.Split(m.buildContent(), "\n")

	// Width comes from all lines so scrolling does not resize the popup.
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := slices.Clone(lines[start:end])
	for i, line := range visible {
		if w := lipgloss.Width(line); w < maxWidth {
			visible[i] = line + strings.Repeat(" ", maxWidth-w)
		}
	}

	s := styles.T().S()
	var b strings.Builder
	b.WriteString(styles.ApplyBoldGradient("Help", styles.T().Primary, styles.T().Secondary))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(visible, "\n"))
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render(m.footer()))
	return b.String()
}

func (m Model) buildContent() string {
	s := styles.T().S()
	keyStyle := s.Highlight
	headerStyle := s.Label

	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(strings.Join(b.Keys, ", ")))
	}

	var sb strings.Builder
	currentContext := ""
	for _, b := range m.bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			sb.WriteString(headerStyle.Render(categoryLabels[b.Context]))
			sb.WriteString("\n")
			sb.WriteString(s.Subtle.Render(strings.Repeat("─", maxKeyWidth+15)))
			sb.WriteString("\n")
			currentContext = b.Context
		}

		keyStr := strings.Join(b.Keys, ", ")
		sb.WriteString(keyStyle.Render(keyStr + strings.Repeat(" ", maxKeyWidth-lipgloss.Width(keyStr))))
		sb.WriteString("  ")
		sb.WriteString(s.Base.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func (m Model) footer() string {
	if m.totalLines() <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

// visibleHeight leaves room for the title, footer and popup chrome.
func (m Model) visibleHeight() int {
	return max(m.Height()-10, 5)
}

func (m Model) totalLines() int {
	return strings.Count(m.buildContent(), "\n") + 1
}

func (m Model) maxScroll() int {
	return max(m.totalLines()-m.visibleHeight(), 0)
}
