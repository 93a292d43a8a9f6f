package session

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/chorus/internal/catalog"
	"github.com/llehouerou/chorus/internal/recommend"
)

const (
	smallCSV = `track_id,track_name,artists,popularity,category
a,Alpha,Artist A,90,Pop
b,Bravo,Artist B,70,Pop
c,Charlie,Artist C,50,Pop
r,Rock,Artist R,40,Rock
`
	largeCSV = `track_id,track_name,artists,popularity,category
x1,X One,Artist X,10,Jazz
p1,P One,Artist P,99,Pop
`
	curatedCSV = `track_id,track_name,artists,popularity,category
k,Kilo,Artist K,30,Folk
`
	trendingCSV = `Ranking,spotify_id,song,artist
2,t2,Second,Artist 2
1,t1,First,Artist 1
`
)

type firstPicker struct{}

func (firstPicker) IntN(int) int { return 0 }

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"small.csv":    {Data: []byte(smallCSV)},
		"large.csv":    {Data: []byte(largeCSV)},
		"curated.csv":  {Data: []byte(curatedCSV)},
		"trending.csv": {Data: []byte(trendingCSV)},
	}
}

func testRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	reg, err := catalog.NewRegistry([]catalog.Variant{
		{Description: "Small", File: "small.csv"},
		{Description: "Large", File: "large.csv"},
		{Description: "Curated", File: "curated.csv", Curated: true},
	})
	require.NoError(t, err)
	return reg
}

func newSession(t *testing.T) (*Session, *catalog.Provider) {
	t.Helper()
	p := catalog.NewProvider(testFS())
	s, err := New(testRegistry(t), p, "trending.csv", firstPicker{})
	require.NoError(t, err)
	return s, p
}

func TestNew_SelectsDefaults(t *testing.T) {
	s, _ := newSession(t)

	assert.Equal(t, catalog.Uncurated, s.DatasetType())
	assert.Equal(t, "Small", s.Variant().Description)
	assert.Equal(t, []string{"Pop", "Rock", catalog.TrendingNow}, s.Categories())
	assert.Equal(t, "Pop", s.Category())

	d := s.Display()
	require.Equal(t, recommend.StatusShowing, d.Status)
	assert.Equal(t, "a", d.Song.ID)
	assert.Equal(t, 3, d.Total)
}

func TestNew_LoadErrorsAreFatal(t *testing.T) {
	fsys := testFS()
	fsys["small.csv"] = &fstest.MapFile{Data: []byte("track_id,track_name\nx,y\n")}

	_, err := New(testRegistry(t), catalog.NewProvider(fsys), "trending.csv", firstPicker{})
	require.ErrorIs(t, err, catalog.ErrMissingColumn)

	_, err = New(testRegistry(t), catalog.NewProvider(testFS()), "absent.csv", firstPicker{})
	require.Error(t, err)
}

func TestAnother_FollowsCategory(t *testing.T) {
	s, _ := newSession(t)

	d := s.Another()
	require.Equal(t, recommend.StatusShowing, d.Status)
	assert.Equal(t, "b", d.Song.ID)
	assert.Equal(t, "a", d.Top.ID)

	d = s.Another()
	assert.Equal(t, "c", d.Song.ID)

	d = s.Another()
	assert.Equal(t, recommend.StatusExhausted, d.Status)
	assert.Equal(t, []string{"a", "b", "c"}, s.State().Shown)
}

func TestSetCategory(t *testing.T) {
	s, _ := newSession(t)
	s.Another()

	d, err := s.SetCategory("Rock")
	require.NoError(t, err)
	assert.Equal(t, "r", d.Song.ID)
	assert.Equal(t, []string{"r"}, s.State().Shown)

	// Returning resets history.
	d, err = s.SetCategory("Pop")
	require.NoError(t, err)
	assert.Equal(t, "a", d.Song.ID)
	assert.Equal(t, []string{"a"}, s.State().Shown)
	assert.Equal(t, "b", s.Another().Song.ID)
}

func TestSetCategory_SameCategoryKeepsHistory(t *testing.T) {
	s, _ := newSession(t)
	s.Another()

	d, err := s.SetCategory("Pop")
	require.NoError(t, err)
	assert.Equal(t, "b", d.Song.ID)
	assert.Equal(t, []string{"a", "b"}, s.State().Shown)
}

func TestSetCategory_Trending(t *testing.T) {
	s, _ := newSession(t)

	d, err := s.SetCategory(catalog.TrendingNow)
	require.NoError(t, err)
	assert.Equal(t, "t1", d.Song.ID)
	assert.Equal(t, "Ranking", d.Song.Score.Label())
	assert.Equal(t, 2, d.Total)
}

func TestSetCategory_Unknown(t *testing.T) {
	s, _ := newSession(t)
	before := s.State()

	_, err := s.SetCategory("Polka")
	require.ErrorIs(t, err, ErrUnknownCategory)
	assert.Equal(t, before, s.State())
	assert.Equal(t, "Pop", s.Category())
}

func TestSetVariant(t *testing.T) {
	s, _ := newSession(t)
	s.Another()

	require.NoError(t, s.SetVariant("Large"))

	// Pop exists in both variants; history still resets.
	assert.Equal(t, "Pop", s.Category())
	assert.Equal(t, "p1", s.Display().Song.ID)
	assert.Equal(t, []string{"p1"}, s.State().Shown)
	assert.Equal(t, []string{"Jazz", "Pop", catalog.TrendingNow}, s.Categories())
}

func TestSetVariant_FallsBackToFirstCategory(t *testing.T) {
	s, _ := newSession(t)
	_, err := s.SetCategory("Rock")
	require.NoError(t, err)

	require.NoError(t, s.SetVariant("Large"))
	assert.Equal(t, "Jazz", s.Category())
}

func TestSetVariant_KeepsTrendingHistory(t *testing.T) {
	s, _ := newSession(t)
	_, err := s.SetCategory(catalog.TrendingNow)
	require.NoError(t, err)
	s.Another()

	require.NoError(t, s.SetVariant("Large"))
	assert.Equal(t, catalog.TrendingNow, s.Category())
	assert.Equal(t, []string{"t1", "t2"}, s.State().Shown)
}

func TestSetVariant_Errors(t *testing.T) {
	s, _ := newSession(t)

	require.ErrorIs(t, s.SetVariant("Nope"), ErrUnknownVariant)
	// Curated variants are not selectable while uncurated is selected.
	require.ErrorIs(t, s.SetVariant("Curated"), ErrUnknownVariant)
	assert.Equal(t, "Small", s.Variant().Description)
}

func TestSetDatasetType(t *testing.T) {
	s, _ := newSession(t)

	require.NoError(t, s.SetDatasetType(catalog.Curated))
	assert.Equal(t, catalog.Curated, s.DatasetType())
	require.Len(t, s.Variants(), 1)
	assert.Equal(t, "Curated", s.Variant().Description)
	assert.Equal(t, "Folk", s.Category())

	require.NoError(t, s.SetDatasetType(catalog.Uncurated))
	assert.Equal(t, "Small", s.Variant().Description)

	require.ErrorIs(t, s.SetDatasetType("Other"), ErrUnknownDatasetType)
}

func TestSetDatasetType_LoadFailureKeepsSelection(t *testing.T) {
	fsys := testFS()
	delete(fsys, "curated.csv")
	s, err := New(testRegistry(t), catalog.NewProvider(fsys), "trending.csv", firstPicker{})
	require.NoError(t, err)

	err = s.SetDatasetType(catalog.Curated)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnknownDatasetType))
	assert.Equal(t, catalog.Uncurated, s.DatasetType())
	assert.Equal(t, "Small", s.Variant().Description)
}

func TestTablesAreLoadedOnce(t *testing.T) {
	s, p := newSession(t)

	for range 3 {
		require.NoError(t, s.SetVariant("Large"))
		require.NoError(t, s.SetVariant("Small"))
	}

	// trending + small + large
	assert.Equal(t, 3, p.Loads())
}
