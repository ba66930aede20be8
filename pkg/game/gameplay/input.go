package gameplay

import (
	engineinput "dungeonescape/pkg/engine/input"
	"dungeonescape/pkg/engine/world"
	"dungeonescape/pkg/game/devtools"
	"dungeonescape/pkg/game/state"
)

// ProcessInput handles one line of player input. While a decision is
// pending the line is taken as its answer.
func ProcessInput(g *state.Game, line string) (Result, error) {
	if g.IsOver() {
		return Result{}, ErrGameOver
	}
	if g.Pending != nil {
		return Resolve(g, line)
	}
	return ProcessIntent(g, engineinput.MapToIntent(line))
}

// ProcessIntent handles a high-level input intent
func ProcessIntent(g *state.Game, intent engineinput.Intent) (Result, error) {
	switch intent.Action {
	case engineinput.ActionMoveNorth:
		return Move(g, world.North, AnswerNone)
	case engineinput.ActionMoveSouth:
		return Move(g, world.South, AnswerNone)
	case engineinput.ActionMoveWest:
		return Move(g, world.West, AnswerNone)
	case engineinput.ActionMoveEast:
		return Move(g, world.East, AnswerNone)

	case engineinput.ActionAttack:
		return Attack(g, AnswerNone)

	case engineinput.ActionHelp:
		logMessage(g, "HELP")
		return Result{}, nil

	case engineinput.ActionLook:
		return Result{}, nil

	case engineinput.ActionSave:
		if err := g.CurrentRoom.Save(g.Rooms.Store()); err != nil {
			logMessage(g, "SAVE_FAILED", err.Error())
			return Result{}, err
		}
		logMessage(g, "ROOM_SAVED")
		return Result{}, nil

	case engineinput.ActionDump:
		path, err := devtools.DumpRoomToFile(g)
		if err != nil {
			logMessage(g, "SAVE_FAILED", err.Error())
			return Result{}, err
		}
		logMessage(g, "ROOM_DUMPED", path)
		return Result{}, nil

	case engineinput.ActionQuit:
		return Quit(g)
	}

	logMessage(g, "UNKNOWN_COMMAND")
	return Result{}, ErrUnknownCommand
}

// Quit saves every loaded room and ends the session
func Quit(g *state.Game) (Result, error) {
	err := g.Rooms.SaveAll()
	if err != nil {
		g.Logger().Error("Failed to save rooms on quit", "error", err)
	}

	logMessage(g, "GOODBYE")
	g.SetOutcome(state.OutcomeQuit)
	return Result{Outcome: state.OutcomeQuit}, err
}
