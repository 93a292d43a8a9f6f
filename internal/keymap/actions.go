// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit      Action = "quit"
	ActionHelp      Action = "help"
	ActionFocusNext Action = "focus_next"
	ActionFocusPrev Action = "focus_prev"

	// Recommendation actions
	ActionAnother    Action = "another"     // n - draw an unseen song
	ActionOpenPlayer Action = "open_player" // o - open the embed in a browser

	// Picker actions
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionSelect   Action = "select" // enter - apply the highlighted option
	ActionFilter   Action = "filter" // / - type to narrow the options
)
