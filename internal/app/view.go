package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/chorus/internal/catalog"
	"github.com/llehouerou/chorus/internal/icons"
	"github.com/llehouerou/chorus/internal/keymap"
	"github.com/llehouerou/chorus/internal/recommend"
	"github.com/llehouerou/chorus/internal/ui/popup"
	"github.com/llehouerou/chorus/internal/ui/render"
	"github.com/llehouerou/chorus/internal/ui/songcard"
	"github.com/llehouerou/chorus/internal/ui/styles"
)

const (
	appTitle       = "Music Recommendation App"
	sidebarWidth   = 34
	maxCardWidth   = 56
	minPickerRows  = 1
	pickerOverhead = 4 // border + title + separator
)

// resize lays the three pickers out in the sidebar. The dataset type and
// variant pickers get exactly their option count, the category picker the
// rest.
func (m *Model) resize() {
	w := m.sidebarWidth()
	typeH := len(m.pickers[FocusDatasetType].Options()) + pickerOverhead
	variantH := len(m.pickers[FocusVariant].Options()) + pickerOverhead
	categoryH := max(m.height-typeH-variantH, minPickerRows+pickerOverhead)

	m.pickers[FocusDatasetType].SetSize(w, typeH)
	m.pickers[FocusVariant].SetSize(w, variantH)
	m.pickers[FocusCategory].SetSize(w, categoryH)
	m.help.SetSize(m.width, m.height)
}

func (m Model) sidebarWidth() int {
	return min(sidebarWidth, m.width/2)
}

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	sidebar := lipgloss.JoinVertical(lipgloss.Left,
		m.pickers[FocusDatasetType].View(),
		m.pickers[FocusVariant].View(),
		m.pickers[FocusCategory].View(),
	)
	mainWidth := max(m.width-m.sidebarWidth()-2, 10)
	main := lipgloss.NewStyle().Width(mainWidth).PaddingLeft(1).Render(m.renderMain(mainWidth - 1))

	view := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", main)

	if m.showHelp {
		overlay := popup.RenderBordered(m.help.View(), m.width, m.height, popup.SizeAuto)
		view = popup.Compose(view, overlay, m.width)
	}
	return view
}

func (m Model) renderMain(width int) string {
	t := styles.T()
	s := t.S()
	d := m.session.Display()
	cardWidth := min(width, maxCardWidth)

	lines := []string{
		styles.ApplyBoldGradient(appTitle, t.Primary, t.Secondary),
		"",
		s.Title.Render(render.Truncate("Category: "+icons.FormatCategory(d.Category, d.Category == catalog.TrendingNow), width)),
		s.Muted.Render("Total songs in this category: " + humanize.Comma(int64(d.Total))),
		"",
	}

	if d.Top != nil {
		lines = append(lines, songcard.Render(icons.FormatTop("Most Popular Song"), *d.Top, cardWidth, !d.Drawn()))
	}
	if d.Status == recommend.StatusShowing && d.Drawn() {
		lines = append(lines, songcard.Render("Next Song", *d.Song, cardWidth, true))
	}
	if d.Message != "" {
		lines = append(lines, s.Warning.Render(render.Truncate(d.Message, width)))
	}
	if d.Song != nil {
		lines = append(lines, "",
			s.Muted.Render("Listen to the song:"),
			s.Base.Render(render.Truncate(m.player.URL(d.Song.ID), width)),
		)
	}
	if m.status != "" {
		style := s.Success
		if strings.HasPrefix(m.status, "Failed") {
			style = s.Error
		}
		lines = append(lines, "", style.Render(render.Truncate(m.status, width)))
	}

	lines = append(lines, "", s.Subtle.Render(render.Truncate(m.footer(), width)))
	return strings.Join(lines, "\n")
}

func (m Model) footer() string {
	hints := []struct {
		action keymap.Action
		label  string
	}{
		{keymap.ActionAnother, "another song"},
		{keymap.ActionOpenPlayer, "open player"},
		{keymap.ActionFocusNext, "next selector"},
		{keymap.ActionFilter, "filter"},
		{keymap.ActionHelp, "help"},
		{keymap.ActionQuit, "quit"},
	}
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, m.keys.Hint(h.action)+" "+h.label)
	}
	return strings.Join(parts, " · ")
}
