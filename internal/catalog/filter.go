package catalog

// TrendingNow is the pseudo-category backed by the trending table.
const TrendingNow = "Trending Now"

// Categories lists the distinct categories of a main table in order of first
// appearance, followed by TrendingNow.
func Categories(main *Table) []string {
	seen := make(map[string]bool)
	var cats []string
	if main != nil {
		for i := range main.Songs {
			c := main.Songs[i].Category
			if !seen[c] {
				seen[c] = true
				cats = append(cats, c)
			}
		}
	}
	return append(cats, TrendingNow)
}

// Filter returns the rows shown for a category: the trending table as is for
// TrendingNow, otherwise the main rows whose category matches. An unknown
// category yields an empty table, not an error.
func Filter(main, trending *Table, category string) *Table {
	if category == TrendingNow {
		if trending == nil {
			return &Table{Kind: TrendingTable}
		}
		return trending
	}

	out := &Table{Kind: MainTable}
	if main == nil {
		return out
	}
	out.Path = main.Path
	for i := range main.Songs {
		if main.Songs[i].Category == category {
			out.Songs = append(out.Songs, main.Songs[i])
		}
	}
	return out
}
