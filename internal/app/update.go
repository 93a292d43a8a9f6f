package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/chorus/internal/catalog"
	"github.com/llehouerou/chorus/internal/errmsg"
	"github.com/llehouerou/chorus/internal/notify"
	"github.com/llehouerou/chorus/internal/recommend"
	"github.com/llehouerou/chorus/internal/ui/action"
	"github.com/llehouerou/chorus/internal/ui/helpbindings"
	"github.com/llehouerou/chorus/internal/ui/picker"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case action.Msg:
		return m.handleAction(msg)

	case PlayerOpenedMsg:
		if msg.Err != nil {
			m.log.Warn().Err(msg.Err).Str("url", msg.URL).Msg("open player")
			m.status = errmsg.Format(errmsg.OpPlayerOpen, msg.Err)
			return m, nil
		}
		m.status = "Opened " + msg.URL
		return m, nil

	case NotifiedMsg:
		if msg.Err != nil {
			m.log.Debug().Err(msg.Err).Msg("desktop notification")
			return m, nil
		}
		m.notifyID = msg.ID
		return m, nil

	case DismissedMsg:
		if msg.Err != nil {
			m.log.Debug().Err(msg.Err).Uint32("id", msg.ID).Msg("dismiss notification")
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.Action.(helpbindings.Close); ok {
		m.showHelp = false
		return m, nil
	}

	sel, ok := msg.Action.(picker.Selected)
	if !ok {
		return m, nil
	}
	m.status = ""

	switch msg.Source {
	case pickerDatasetType:
		if err := m.session.SetDatasetType(catalog.DatasetType(sel.Value)); err != nil {
			return m.fail(errmsg.OpDatasetTypeLoad, sel.Value, err)
		}
	case pickerVariant:
		if err := m.session.SetVariant(sel.Value); err != nil {
			return m.fail(errmsg.OpDatasetLoad, sel.Value, err)
		}
	case pickerCategory:
		if _, err := m.session.SetCategory(sel.Value); err != nil {
			m.status = errmsg.FormatWith(errmsg.OpCategorySelect, sel.Value, err)
		}
	}

	m.syncPickers()
	m.resize()
	cmd := m.dismissNotification()
	return m, cmd
}

// fail records a fatal error and quits; the caller reports it on exit.
func (m Model) fail(op errmsg.Op, subject string, err error) (tea.Model, tea.Cmd) {
	m.err = &Error{Op: op, Subject: subject, Err: err}
	m.log.Error().Err(err).Str("op", string(op)).Str("subject", subject).Msg("fatal")
	return m, tea.Quit
}

func (m Model) openPlayer() tea.Cmd {
	song := m.session.Display().Song
	if song == nil {
		return nil
	}
	url := m.player.URL(song.ID)
	open := m.openURL
	return func() tea.Msg {
		return PlayerOpenedMsg{URL: url, Err: open(url)}
	}
}

// notifyDrawn announces a drawn song, replacing the previous announcement.
// Once the category is exhausted the last one is dismissed.
func (m *Model) notifyDrawn(d recommend.Display) tea.Cmd {
	if d.Status == recommend.StatusExhausted {
		return m.dismissNotification()
	}
	if m.notifier == nil || d.Status != recommend.StatusShowing || !d.Drawn() {
		return nil
	}
	n := notify.Recommendation(d.Category, *d.Song, m.notifyID)
	notifier := m.notifier
	return func() tea.Msg {
		id, err := notifier.Notify(n)
		return NotifiedMsg{ID: id, Err: err}
	}
}

// dismissNotification closes the current recommendation notification, if any.
func (m *Model) dismissNotification() tea.Cmd {
	if m.notifier == nil || m.notifyID == 0 {
		return nil
	}
	id := m.notifyID
	m.notifyID = 0
	notifier := m.notifier
	return func() tea.Msg {
		return DismissedMsg{ID: id, Err: notifier.Close(id)}
	}
}
