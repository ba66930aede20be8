package input

import (
	"sort"
	"strings"
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Combat
	ActionAttack

	// Meta
	ActionHelp
	ActionQuit
	ActionSave
	ActionDump
	ActionLook
)

// Intent is the high‑level description of what the player wants to do.
// Code keeps the text that produced it, for error messages.
type Intent struct {
	Action Action
	Code   string
}

// bindings maps raw codes to actions.
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (u/d/l/r, words, compass, arrows)
	"u":           ActionMoveNorth,
	"n":           ActionMoveNorth,
	"up":          ActionMoveNorth,
	"north":       ActionMoveNorth,
	"arrow_up":    ActionMoveNorth,
	"d":           ActionMoveSouth,
	"s":           ActionMoveSouth,
	"down":        ActionMoveSouth,
	"south":       ActionMoveSouth,
	"arrow_down":  ActionMoveSouth,
	"l":           ActionMoveWest,
	"w":           ActionMoveWest,
	"left":        ActionMoveWest,
	"west":        ActionMoveWest,
	"arrow_left":  ActionMoveWest,
	"r":           ActionMoveEast,
	"e":           ActionMoveEast,
	"right":       ActionMoveEast,
	"east":        ActionMoveEast,
	"arrow_right": ActionMoveEast,

	// Combat
	"a":      ActionAttack,
	"attack": ActionAttack,

	// Help
	"?":    ActionHelp,
	"help": ActionHelp,

	// Quit
	"q":    ActionQuit,
	"quit": ActionQuit,

	// Persistence and debugging
	"save": ActionSave,
	"dump": ActionDump,
	"look": ActionLook,
}

// MapToIntent applies the bindings to a line of input and returns a
// high‑level Intent. Unknown codes map to ActionNone.
func MapToIntent(code string) Intent {
	code = strings.ToLower(strings.TrimSpace(code))
	if act, ok := bindings[code]; ok {
		return Intent{Action: act, Code: code}
	}
	return Intent{Action: ActionNone, Code: code}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move Up"
	case ActionMoveSouth:
		return "Move Down"
	case ActionMoveWest:
		return "Move Left"
	case ActionMoveEast:
		return "Move Right"
	case ActionAttack:
		return "Attack"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionSave:
		return "Save"
	case ActionDump:
		return "Dump Room"
	case ActionLook:
		return "Look"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help output doesn't shuffle between calls.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
