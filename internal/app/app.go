// Package app is the root bubbletea model of the terminal UI.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/chorus/internal/embed"
	"github.com/llehouerou/chorus/internal/keymap"
	"github.com/llehouerou/chorus/internal/logging"
	"github.com/llehouerou/chorus/internal/notify"
	"github.com/llehouerou/chorus/internal/session"
	"github.com/llehouerou/chorus/internal/ui/helpbindings"
	"github.com/llehouerou/chorus/internal/ui/picker"
)

// FocusTarget identifies the focused selector.
type FocusTarget int

const (
	FocusDatasetType FocusTarget = iota
	FocusVariant
	FocusCategory
	focusCount
)

// Picker names, used as action sources.
const (
	pickerDatasetType = "dataset-type"
	pickerVariant     = "variant"
	pickerCategory    = "category"
)

// Options configures the terminal UI.
type Options struct {
	Player   embed.Player
	OpenURL  func(url string) error // defaults to embed.OpenBrowser
	// Notifier, when set, announces every drawn song on the desktop.
	Notifier notify.Notifier
}

// Model is the root application model.
type Model struct {
	session  *session.Session
	player   embed.Player
	openURL  func(string) error
	notifier notify.Notifier
	notifyID uint32 // last recommendation notification, replaced by the next
	keys     *keymap.Resolver
	log      zerolog.Logger

	pickers  [focusCount]picker.Model
	focus    FocusTarget
	help     *helpbindings.Model
	showHelp bool

	status string // last feedback line: browser opened, selection errors
	err    *Error // fatal error, set right before quitting
	width  int
	height int
}

// New creates the model around an initialized session.
func New(s *session.Session, opts Options) Model {
	if opts.OpenURL == nil {
		opts.OpenURL = embed.OpenBrowser
	}

	help := helpbindings.New()
	m := Model{
		session:  s,
		player:   opts.Player,
		openURL:  opts.OpenURL,
		notifier: opts.Notifier,
		keys:     keymap.NewResolver(keymap.Bindings),
		log:      logging.With("app"),
		pickers: [focusCount]picker.Model{
			picker.New(pickerDatasetType, "Dataset Type"),
			picker.New(pickerVariant, "Dataset Configuration"),
			picker.New(pickerCategory, "Category"),
		},
		focus: FocusCategory,
		help:  &help,
	}
	m.syncPickers()
	m.applyFocus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	if m.err == nil {
		return nil
	}
	return m.err
}

// Focus returns the focused selector.
func (m Model) Focus() FocusTarget {
	return m.focus
}

// Session returns the session driven by the model.
func (m Model) Session() *session.Session {
	return m.session
}

// syncPickers reloads every picker from the session.
func (m *Model) syncPickers() {
	types := m.session.DatasetTypes()
	typeNames := make([]string, len(types))
	for i, t := range types {
		typeNames[i] = string(t)
	}
	m.pickers[FocusDatasetType].SetOptions(typeNames, string(m.session.DatasetType()))

	variants := m.session.Variants()
	descriptions := make([]string, len(variants))
	for i, v := range variants {
		descriptions[i] = v.Description
	}
	m.pickers[FocusVariant].SetOptions(descriptions, m.session.Variant().Description)

	m.pickers[FocusCategory].SetOptions(m.session.Categories(), m.session.Category())
}

func (m *Model) applyFocus() {
	for i := range m.pickers {
		m.pickers[i].SetFocused(FocusTarget(i) == m.focus)
	}
}
