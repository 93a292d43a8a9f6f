package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "recommend", "picker"
}

// Bindings contains all key bindings, in help order.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionFocusNext, []string{"tab"}, "Next selector", "global"},
	{ActionFocusPrev, []string{"shift+tab"}, "Previous selector", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Recommendation
	{ActionAnother, []string{"n"}, "Recommend another song", "recommend"},
	{ActionOpenPlayer, []string{"o"}, "Open player in browser", "recommend"},

	// Selectors
	{ActionMoveUp, []string{"k", "up"}, "Move up", "picker"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "picker"},
	{ActionSelect, []string{"enter"}, "Apply selection", "picker"},
	{ActionFilter, []string{"/"}, "Filter options", "picker"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
