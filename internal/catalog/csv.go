package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrMissingColumn is returned when a required column is absent from the header.
	ErrMissingColumn = errors.New("missing column")
	// ErrMalformedValue is returned when a row cannot be read.
	ErrMalformedValue = errors.New("malformed value")
)

// schema names the columns a table kind is read from.
type schema struct {
	id       string
	name     string
	artist   string
	score    string
	category string // empty when the table has no category column
	kind     ScoreKind
}

var (
	mainSchema = schema{
		id:       "track_id",
		name:     "track_name",
		artist:   "artists",
		score:    "popularity",
		category: "category",
		kind:     Popularity,
	}

	trendingSchema = schema{
		id:     "spotify_id",
		name:   "song",
		artist: "artist",
		score:  "Ranking",
		kind:   Rank,
	}
)

func schemaFor(kind TableKind) schema {
	if kind == TrendingTable {
		return trendingSchema
	}
	return mainSchema
}

func (s schema) columns() []string {
	cols := []string{s.id, s.name, s.artist, s.score}
	if s.category != "" {
		cols = append(cols, s.category)
	}
	return cols
}

// ReadTable parses a CSV stream with a header row into a table.
// Columns not named by the kind's schema are ignored.
func ReadTable(r io.Reader, path string, kind TableKind) (*Table, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: empty file: %w", path, ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", path, errors.Join(ErrMalformedValue, err))
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	sc := schemaFor(kind)
	for _, col := range sc.columns() {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%s: %w %q", path, ErrMissingColumn, col)
		}
	}

	table := &Table{Kind: kind, Path: path}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, errors.Join(ErrMalformedValue, err))
		}

		score, err := parseScore(rec[index[sc.score]])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: column %q: %w", path, line, sc.score, errors.Join(ErrMalformedValue, err))
		}

		song := Song{
			ID:     rec[index[sc.id]],
			Name:   rec[index[sc.name]],
			Artist: rec[index[sc.artist]],
			Score:  Score{Kind: sc.kind, Value: score},
		}
		if sc.category != "" {
			song.Category = rec[index[sc.category]]
		}
		table.Songs = append(table.Songs, song)
	}

	return table, nil
}

// parseScore reads a numeric cell. Empty cells are missing values.
func parseScore(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
