// Package recommend implements per-category song selection: the best ranked
// song when a category is selected, then random unseen songs on request.
//
// The selector is a reducer. Reduce never mutates its input state; callers
// own the State value and feed it back on the next interaction.
package recommend

import (
	"slices"

	"github.com/llehouerou/chorus/internal/catalog"
)

// User-facing informational messages.
const (
	MsgEmpty     = "No songs available in this category."
	MsgExhausted = "No more songs available in this category to recommend."
)

// Scope identifies the table a history belongs to. The dataset is part of the
// key so that switching variants resets history even when both variants share
// a category label.
type Scope struct {
	Dataset  string
	Category string
}

// State is the selection history for the active scope.
type State struct {
	Scope   Scope
	Top     *catalog.Song // best ranked song of the scope
	Current *catalog.Song // song currently recommended
	Shown   []string      // ids already presented, in order
	active  bool
}

// Active reports whether a scope has been selected yet.
func (s State) Active() bool {
	return s.active
}

// HasShown reports whether an id was already presented in this scope.
func (s State) HasShown(id string) bool {
	return slices.Contains(s.Shown, id)
}

// Event is an interaction the selector reacts to.
type Event interface {
	isEvent()
}

// Select is fired whenever the displayed category is evaluated.
// Only a change of scope (or the first Select) resets history.
type Select struct {
	Scope Scope
}

// Another asks for a random song not shown yet in the current scope.
type Another struct{}

func (Select) isEvent()  {}
func (Another) isEvent() {}

// Status classifies a Display.
type Status int

const (
	StatusShowing   Status = iota // a song is recommended
	StatusEmpty                   // the category has no songs
	StatusExhausted               // every song of the category was shown
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusExhausted:
		return "exhausted"
	default:
		return "showing"
	}
}

// Display is what a shell renders after an event.
type Display struct {
	Status   Status
	Category string
	Total    int
	Top      *catalog.Song
	Song     *catalog.Song
	Message  string
}

// Drawn reports whether the displayed song came from a random draw rather
// than being the category's best song.
func (d Display) Drawn() bool {
	return d.Song != nil && d.Top != nil && d.Song.ID != d.Top.ID
}

// Picker draws an index in [0, n). *math/rand/v2.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

// Reduce applies ev to s using table, the rows of the event's scope, and
// returns the new state and what to display.
func Reduce(s State, ev Event, table *catalog.Table, p Picker) (State, Display) {
	switch ev := ev.(type) {
	case Select:
		return reduceSelect(s, ev, table)
	case Another:
		return reduceAnother(s, table, p)
	}
	return s, display(s, table, StatusShowing)
}

func reduceSelect(s State, ev Select, table *catalog.Table) (State, Display) {
	if s.active && s.Scope == ev.Scope {
		return s, display(s, table, StatusShowing)
	}

	next := State{Scope: ev.Scope, active: true}
	if best, ok := table.Best(); ok {
		next.Top = &best
		next.Current = &best
		next.Shown = []string{best.ID}
	}
	return next, display(next, table, StatusShowing)
}

func reduceAnother(s State, table *catalog.Table, p Picker) (State, Display) {
	if s.Current == nil {
		return s, display(s, table, StatusEmpty)
	}

	var candidates []int
	for i := range table.Len() {
		if !s.HasShown(table.Songs[i].ID) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return s, display(s, table, StatusExhausted)
	}

	song := table.Songs[candidates[p.IntN(len(candidates))]]
	next := s
	next.Current = &song
	next.Shown = append(slices.Clip(s.Shown), song.ID)
	return next, display(next, table, StatusShowing)
}

func display(s State, table *catalog.Table, status Status) Display {
	d := Display{
		Status:   status,
		Category: s.Scope.Category,
		Total:    table.Len(),
		Top:      s.Top,
		Song:     s.Current,
	}
	if s.Current == nil {
		d.Status = StatusEmpty
	}
	switch d.Status {
	case StatusEmpty:
		d.Message = MsgEmpty
	case StatusExhausted:
		d.Message = MsgExhausted
	}
	return d
}
