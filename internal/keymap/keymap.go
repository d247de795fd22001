// Package keymap defines the key bindings of the search overlay.
package keymap

import "strings"

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit     Action = "quit"
	ActionOpen     Action = "open" // enter - open the selected file
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionPageUp   Action = "page_up"
	ActionPageDown Action = "page_down"
)

// Binding ties keys to an action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Hint        bool // shown in the overlay status line
}

// Overlay contains the bindings of the search overlay. Printable keys are
// left to the query input.
var Overlay = []Binding{
	{ActionOpen, []string{"enter"}, "open", true},
	{ActionQuit, []string{"esc", "ctrl+c"}, "quit", true},
	{ActionMoveUp, []string{"up", "ctrl+p"}, "previous", true},
	{ActionMoveDown, []string{"down", "ctrl+n"}, "next", true},
	{ActionPageUp, []string{"pgup"}, "page up", false},
	{ActionPageDown, []string{"pgdown"}, "page down", false},
}

// Hints renders the hinted bindings as "key: description" pairs, using the
// first key of each binding.
func Hints(bindings []Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Hint || len(b.Keys) == 0 {
			continue
		}
		parts = append(parts, b.Keys[0]+": "+b.Description)
	}
	return strings.Join(parts, "  ")
}
