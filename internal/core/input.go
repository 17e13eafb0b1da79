package core

import "strings"

// Action represents a semantic player intent, abstracted from physical keys.
// Frontends translate whatever they read into Actions; the game loop only
// ever sees Actions.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionLeft
	ActionDown
	ActionRight
	ActionUndo    // U - revert the last successful drag
	ActionRestart // R - wipe the board and start over
	ActionQuit    // Q, EOF - leave the game loop
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionLeft:
		return "Left"
	case ActionDown:
		return "Down"
	case ActionRight:
		return "Right"
	case ActionUndo:
		return "Undo"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action drags the board.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// KeyMap translates typed keys into actions.
type KeyMap map[string]Action

// DefaultKeyMap returns the WASD bindings plus vim-style hjkl.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"w": ActionUp, "k": ActionUp, "up": ActionUp,
		"a": ActionLeft, "h": ActionLeft, "left": ActionLeft,
		"s": ActionDown, "j": ActionDown, "down": ActionDown,
		"d": ActionRight, "l": ActionRight, "right": ActionRight,
		"u": ActionUndo, "undo": ActionUndo,
		"r": ActionRestart, "restart": ActionRestart,
		"q": ActionQuit, "quit": ActionQuit,
	}
}

// Lookup returns the action bound to key, ignoring case and surrounding
// whitespace. Unknown keys map to ActionNone.
func (m KeyMap) Lookup(key string) Action {
	return m[strings.ToLower(strings.TrimSpace(key))]
}
