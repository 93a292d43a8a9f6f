package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the prefixes for the current style.
type Icons struct {
	Track    string
	Artist   string
	Category string
	Trending string
	Top      string
}

var (
	nerdIcons = Icons{
		Track:    " ", // nf-fa-music
		Artist:   " ", // nf-fa-user
		Category: "󰉋 ",      // nf-md-folder_music
		Trending: "󰔵 ",      // nf-md-trending_up
		Top:      " ", // nf-fa-star
	}

	unicodeIcons = Icons{
		Track:    "🎵 ",
		Artist:   "👤 ",
		Category: "🏷 ",
		Trending: "🔥 ",
		Top:      "★ ",
	}

	noneIcons = Icons{
		Artist: "by ",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// FormatTrack formats a song name.
func FormatTrack(name string) string {
	return current.Track + name
}

// FormatArtist formats an artist name. Without icons it reads "by Artist".
func FormatArtist(name string) string {
	return current.Artist + name
}

// FormatCategory formats a category name; trending gets its own icon.
func FormatCategory(name string, trending bool) string {
	if trending {
		return current.Trending + name
	}
	return current.Category + name
}

// FormatTop formats the heading of the best ranked song.
func FormatTop(heading string) string {
	return current.Top + heading
}
