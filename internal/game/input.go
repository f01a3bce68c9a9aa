package game

import "github.com/gdamore/tcell/v2"

// Action is a player intent decoded from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionChoose  // Pick a choice; the index comes with the action
	ActionRestart // Start a new quest
	ActionConfirm // Dismiss a banner, or restart when complete
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionChoose:
		return "choose"
	case ActionRestart:
		return "restart"
	case ActionConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// actionForKey maps a key press to an action. For ActionChoose the returned
// index is the zero-based choice index (key '1' is choice 0).
func actionForKey(key tcell.Key, r rune) (Action, int) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyEnter:
		return ActionConfirm, 0
	case tcell.KeyRune:
		switch {
		case r >= '1' && r <= '9':
			return ActionChoose, int(r - '1')
		case r == 'q' || r == 'Q':
			return ActionQuit, 0
		case r == 'r' || r == 'R':
			return ActionRestart, 0
		case r == ' ':
			return ActionConfirm, 0
		}
	}
	return ActionNone, 0
}
