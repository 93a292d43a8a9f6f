// Package catalog loads the song tables the recommender works on.
package catalog

import (
	"math"

	"github.com/dustin/go-humanize"
)

// ScoreKind tells how a score orders songs.
type ScoreKind int

const (
	Popularity ScoreKind = iota // higher is better
	Rank                        // lower is better
)

// Score is the ranking value of a song in its table.
type Score struct {
	Kind  ScoreKind
	Value float64
}

// Better reports whether s ranks strictly ahead of o.
// A missing value (NaN) never ranks ahead of anything.
func (s Score) Better(o Score) bool {
	if math.IsNaN(s.Value) {
		return false
	}
	if math.IsNaN(o.Value) {
		return true
	}
	if s.Kind == Rank {
		return s.Value < o.Value
	}
	return s.Value > o.Value
}

// Label returns the column label shown next to the value.
func (s Score) Label() string {
	if s.Kind == Rank {
		return "Ranking"
	}
	return "Popularity"
}

func (s Score) String() string {
	if math.IsNaN(s.Value) {
		return "-"
	}
	return humanize.Ftoa(s.Value)
}

// Song is one row of a table.
type Song struct {
	ID       string
	Name     string
	Artist   string
	Category string // empty for trending rows
	Score    Score
}

// TableKind identifies the column schema a table was read with.
type TableKind int

const (
	MainTable TableKind = iota
	TrendingTable
)

func (k TableKind) String() string {
	if k == TrendingTable {
		return "trending"
	}
	return "main"
}

// Table is an immutable, ordered set of rows. Row order is file order.
type Table struct {
	Kind  TableKind
	Path  string
	Songs []Song
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Songs)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return t.Len() == 0
}

// Best returns the best ranked row. Ties keep the first row in file order.
func (t *Table) Best() (Song, bool) {
	if t.Empty() {
		return Song{}, false
	}
	best := 0
	for i := 1; i < len(t.Songs); i++ {
		if t.Songs[i].Score.Better(t.Songs[best].Score) {
			best = i
		}
	}
	return t.Songs[best], true
}
