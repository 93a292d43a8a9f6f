// Package songcard renders one song as a bordered card.
package songcard

import (
	"strings"

	"github.com/llehouerou/chorus/internal/catalog"
	"github.com/llehouerou/chorus/internal/icons"
	"github.com/llehouerou/chorus/internal/ui/render"
	"github.com/llehouerou/chorus/internal/ui/styles"
)

// Render draws song under heading, width columns wide including the border.
// The current recommendation uses highlight to stand out from the top song.
func Render(heading string, song catalog.Song, width int, highlight bool) string {
	if width <= 4 {
		return ""
	}
	inner := width - 4 // border + horizontal padding
	s := styles.T().S()

	name := s.Title
	if highlight {
		name = s.Highlight
	}

	lines := []string{
		s.Label.Render(render.TruncateAndPad(heading, inner)),
		name.Render(render.TruncateAndPad(icons.FormatTrack(song.Name), inner)),
		s.Muted.Render(render.TruncateAndPad(icons.FormatArtist(song.Artist), inner)),
		s.Base.Render(render.TruncateAndPad(song.Score.Label()+": "+song.Score.String(), inner)),
	}

	return styles.PanelStyle(highlight).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
