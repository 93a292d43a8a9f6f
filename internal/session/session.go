// Package session owns one user's interaction state: the selected dataset
// type, variant and category, and the recommendation history of that
// category. Shells (terminal or web) call it on every interaction and render
// the returned display.
package session

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/llehouerou/chorus/internal/catalog"
	"github.com/llehouerou/chorus/internal/logging"
	"github.com/llehouerou/chorus/internal/recommend"
)

var (
	ErrUnknownDatasetType = errors.New("unknown dataset type")
	ErrUnknownVariant     = errors.New("unknown dataset variant")
	ErrUnknownCategory    = errors.New("unknown category")
)

// Loader provides tables by file name.
type Loader interface {
	Main(name string) (*catalog.Table, error)
	Trending(name string) (*catalog.Table, error)
}

// Session is not safe for concurrent use.
type Session struct {
	registry     *catalog.Registry
	loader       Loader
	trendingFile string
	picker       recommend.Picker
	log          zerolog.Logger

	datasetType catalog.DatasetType
	variant     catalog.Variant
	category    string

	main       *catalog.Table
	trending   *catalog.Table
	categories []string
	active     *catalog.Table

	state   recommend.State
	display recommend.Display
}

// New loads the trending table and the first variant, then selects its first
// category, the way a fresh page shows defaults.
func New(registry *catalog.Registry, loader Loader, trendingFile string, picker recommend.Picker) (*Session, error) {
	trending, err := loader.Trending(trendingFile)
	if err != nil {
		return nil, err
	}

	s := &Session{
		registry:     registry,
		loader:       loader,
		trendingFile: trendingFile,
		picker:       picker,
		log:          logging.With("session"),
		trending:     trending,
	}

	types := registry.Types()
	if len(types) == 0 {
		return nil, catalog.ErrNoVariants
	}
	if err := s.SetDatasetType(types[0]); err != nil {
		return nil, err
	}
	return s, nil
}

// DatasetTypes returns the selectable dataset types.
func (s *Session) DatasetTypes() []catalog.DatasetType {
	return s.registry.Types()
}

// DatasetType returns the selected dataset type.
func (s *Session) DatasetType() catalog.DatasetType {
	return s.datasetType
}

// SetDatasetType switches the curation flag. The selected variant is kept
// when it is listed under the new type, otherwise the first one is used.
func (s *Session) SetDatasetType(t catalog.DatasetType) error {
	variants := s.registry.Variants(t)
	if len(variants) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownDatasetType, t)
	}

	next := variants[0]
	if i := slices.IndexFunc(variants, func(v catalog.Variant) bool {
		return v.Description == s.variant.Description
	}); i >= 0 {
		next = variants[i]
	}

	if err := s.loadVariant(next); err != nil {
		return err
	}
	s.datasetType = t
	return nil
}

// Variants returns the variants of the selected dataset type.
func (s *Session) Variants() []catalog.Variant {
	return s.registry.Variants(s.datasetType)
}

// Variant returns the selected variant.
func (s *Session) Variant() catalog.Variant {
	return s.variant
}

// SetVariant selects a variant of the current dataset type by description.
func (s *Session) SetVariant(description string) error {
	v, ok := s.registry.Lookup(description)
	if !ok || v.Type() != s.datasetType {
		return fmt.Errorf("%w: %q", ErrUnknownVariant, description)
	}
	return s.loadVariant(v)
}

func (s *Session) loadVariant(v catalog.Variant) error {
	main, err := s.loader.Main(v.File)
	if err != nil {
		return err
	}

	s.variant = v
	s.main = main
	s.categories = catalog.Categories(main)

	category := s.category
	if !slices.Contains(s.categories, category) {
		category = s.categories[0]
	}
	s.log.Debug().Str("variant", v.Description).Int("songs", main.Len()).Msg("dataset selected")
	s.selectCategory(category)
	return nil
}

// Categories returns the categories of the selected variant, TrendingNow last.
func (s *Session) Categories() []string {
	return slices.Clone(s.categories)
}

// Category returns the selected category.
func (s *Session) Category() string {
	return s.category
}

// SetCategory selects a category and returns the resulting display.
func (s *Session) SetCategory(category string) (recommend.Display, error) {
	if !slices.Contains(s.categories, category) {
		return s.display, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	s.selectCategory(category)
	return s.display, nil
}

func (s *Session) selectCategory(category string) {
	s.category = category
	s.active = catalog.Filter(s.main, s.trending, category)

	scope := recommend.Scope{Dataset: s.variant.File, Category: category}
	if category == catalog.TrendingNow {
		// Trending history does not depend on the main dataset.
		scope.Dataset = s.trendingFile
	}
	s.apply(recommend.Select{Scope: scope})
}

// Another requests a random song not yet shown in the selected category.
func (s *Session) Another() recommend.Display {
	s.apply(recommend.Another{})
	return s.display
}

func (s *Session) apply(ev recommend.Event) {
	s.state, s.display = recommend.Reduce(s.state, ev, s.active, s.picker)

	e := s.log.Debug().
		Str("category", s.display.Category).
		Stringer("status", s.display.Status).
		Int("shown", len(s.state.Shown))
	if s.display.Song != nil {
		e = e.Str("track_id", s.display.Song.ID)
	}
	e.Msg(eventName(ev))
}

func eventName(ev recommend.Event) string {
	if _, ok := ev.(recommend.Another); ok {
		return "another song"
	}
	return "category selected"
}

// Display returns what to render for the current state.
func (s *Session) Display() recommend.Display {
	return s.display
}

// State returns the recommendation state.
func (s *Session) State() recommend.State {
	return s.state
}
