package picker

import "github.com/llehouerou/chorus/internal/ui/action"

// Selected reports the option applied with enter.
type Selected struct {
	Value string
}

// ActionType implements action.Action.
func (a Selected) ActionType() string { return "picker.selected" }

// ActionMsg creates an action.Msg for a picker action. Pickers are told apart
// by their name.
func ActionMsg(source string, a action.Action) action.Msg {
	return action.Msg{Source: source, Action: a}
}
