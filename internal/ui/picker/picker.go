// Package picker provides a bordered single-choice list with an optional
// type-to-filter line.
package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/chorus/internal/search"
	"github.com/llehouerou/chorus/internal/ui"
	"github.com/llehouerou/chorus/internal/ui/render"
	"github.com/llehouerou/chorus/internal/ui/styles"
)

// Model is a list of options, one of which is selected.
type Model struct {
	ui.Base
	name  string
	title string

	options  []string
	matcher  *search.Matcher
	visible  []int // indices into options matching the filter, best first
	selected string

	pos    int
	offset int

	filtering bool
	filter    textinput.Model
}

// New creates a picker. name is used as the action source.
func New(name, title string) Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter"
	ti.CharLimit = 64
	ti.Cursor.SetMode(cursor.CursorStatic)

	return Model{name: name, title: title, filter: ti, matcher: search.NewMatcher(nil)}
}

// SetSize sets the panel size and keeps the cursor in view.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.ensureVisible()
}

// Name returns the action source of this picker.
func (m Model) Name() string {
	return m.name
}

// SetOptions replaces the options and marks selected. The filter is cleared
// and the cursor moves to the selected option.
func (m *Model) SetOptions(options []string, selected string) {
	m.options = options
	m.matcher = search.NewMatcher(options)
	m.selected = selected
	m.filtering = false
	m.filter.Reset()
	m.filter.Blur()
	m.applyFilter()
	for i, idx := range m.visible {
		if m.options[idx] == selected {
			m.pos = i
		}
	}
	m.ensureVisible()
}

// Options returns all options regardless of the filter.
func (m Model) Options() []string {
	return m.options
}

// Selected returns the applied option.
func (m Model) Selected() string {
	return m.selected
}

// Highlighted returns the option under the cursor, if any.
func (m Model) Highlighted() (string, bool) {
	if len(m.visible) == 0 {
		return "", false
	}
	return m.options[m.visible[m.pos]], true
}

// Filtering reports whether the filter line has input focus. Global keys
// must not be resolved while it does.
func (m Model) Filtering() bool {
	return m.filtering
}

// Update handles key input when the picker is focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}

	if m.filtering {
		return m.updateFilter(keyMsg)
	}

	switch keyMsg.String() {
	case "j", "down":
		m.move(1)
	case "k", "up":
		m.move(-1)
	case "enter":
		return m, m.selectHighlighted()
	case "/":
		m.filtering = true
		return m, m.filter.Focus()
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.Reset()
		m.filter.Blur()
		m.applyFilter()
		return m, nil
	case "enter":
		cmd := m.selectHighlighted()
		if cmd != nil {
			m.filtering = false
			m.filter.Reset()
			m.filter.Blur()
			m.applyFilter()
		}
		return m, cmd
	case "up":
		m.move(-1)
		return m, nil
	case "down":
		m.move(1)
		return m, nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		// A new query starts on its best match.
		m.filterFromTop()
		return m, cmd
	}
	m.applyFilter()
	return m, cmd
}

func (m *Model) selectHighlighted() tea.Cmd {
	value, ok := m.Highlighted()
	if !ok {
		return nil
	}
	m.selected = value
	source := m.name
	return func() tea.Msg {
		return ActionMsg(source, Selected{Value: value})
	}
}

// applyFilter recomputes the visible options and keeps the cursor on the
// highlighted option when it still matches.
func (m *Model) applyFilter() {
	current, hadCurrent := m.Highlighted()
	m.search()

	m.pos = 0
	if hadCurrent {
		for i, idx := range m.visible {
			if m.options[idx] == current {
				m.pos = i
			}
		}
	}
	m.offset = 0
	m.ensureVisible()
}

// filterFromTop recomputes the visible options with the cursor on the best
// match.
func (m *Model) filterFromTop() {
	m.search()
	m.pos = 0
	m.offset = 0
	m.ensureVisible()
}

func (m *Model) search() {
	matches := m.matcher.Search(m.filter.Value())
	visible := make([]int, len(matches))
	for i, match := range matches {
		visible[i] = match.Index
	}
	m.visible = visible
}

func (m *Model) move(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.pos = min(max(m.pos+delta, 0), len(m.visible)-1)
	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	height := m.listHeight()
	if height <= 0 || len(m.visible) == 0 {
		m.offset = 0
		return
	}
	margin := min(ui.ScrollMargin, (height-1)/2)

	if m.pos < m.offset+margin {
		m.offset = max(m.pos-margin, 0)
	}
	if m.pos >= m.offset+height-margin {
		m.offset = m.pos - height + margin + 1
	}
	m.offset = min(max(m.offset, 0), max(len(m.visible)-height, 0))
}

func (m Model) listHeight() int {
	h := m.ListHeight(ui.PanelOverhead)
	if m.filtering {
		h--
	}
	return max(h, 1)
}

// View renders the picker inside a panel.
func (m Model) View() string {
	width := m.Width()
	if width <= 2 {
		return ""
	}
	inner := width - 2
	s := styles.T().S()

	titleStyle := s.Title
	if m.IsFocused() {
		titleStyle = s.Highlight
	}

	lines := make([]string, 0, m.Height())
	lines = append(lines,
		titleStyle.Render(render.TruncateAndPad(m.title, inner)),
		s.Subtle.Render(render.Separator(inner)),
	)
	if m.filtering {
		m.filter.Width = max(inner-3, 1)
		lines = append(lines, render.Pad(m.filter.View(), inner))
	}

	height := m.listHeight()
	end := min(m.offset+height, len(m.visible))
	for i := m.offset; i < end; i++ {
		opt := m.options[m.visible[i]]
		mark := "  "
		if opt == m.selected {
			mark = "▸ "
		}
		line := render.TruncateAndPad(mark+opt, inner)
		switch {
		case i == m.pos && m.IsFocused():
			line = s.Cursor.Render(line)
		case opt == m.selected:
			line = s.Highlight.Render(line)
		default:
			line = s.Base.Render(line)
		}
		lines = append(lines, line)
	}
	if len(m.visible) == 0 {
		lines = append(lines, s.Muted.Render(render.TruncateAndPad("  no match", inner)))
	}
	for len(lines) < m.Height()-ui.BorderHeight {
		lines = append(lines, render.Pad("", inner))
	}

	return styles.PanelStyle(m.IsFocused()).Render(strings.Join(lines, "\n"))
}
