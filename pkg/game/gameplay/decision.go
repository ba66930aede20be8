package gameplay

import (
	"strings"

	"dungeonescape/pkg/game/state"
	"dungeonescape/pkg/game/text"
)

// Answer is the player's reply to a yes/no question
type Answer int

const (
	// AnswerNone means no answer has been given yet; a command that needs
	// one stops and returns a pending decision
	AnswerNone Answer = iota
	AnswerYes
	AnswerNo
)

// ParseAnswer reads y/yes or n/no, ignoring case and surrounding space
func ParseAnswer(input string) (Answer, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return AnswerYes, nil
	case "n", "no":
		return AnswerNo, nil
	default:
		return AnswerNone, ErrInvalidAnswer
	}
}

// Result describes what a command did
type Result struct {
	// Pending is set when the command is waiting for a yes/no answer
	Pending *state.Decision
	// Outcome is set when the command ended the session
	Outcome state.Outcome
	// Moved is true if the hero changed cells
	Moved bool
	// RoomChanged is true if the hero went through a door
	RoomChanged bool
}

// Resolve answers the session's pending decision and finishes the command
// that raised it. An answer other than y/n leaves the decision pending.
func Resolve(g *state.Game, input string) (Result, error) {
	if g.Pending == nil {
		logMessage(g, "NO_PENDING")
		return Result{}, ErrNoPendingDecision
	}

	answer, err := ParseAnswer(input)
	if err != nil {
		logMessage(g, "INVALID_ANSWER")
		return Result{Pending: g.Pending}, err
	}

	cmd := g.Pending.Command
	g.Pending = nil
	if cmd.Attack {
		return Attack(g, answer)
	}
	return Move(g, cmd.Direction, answer)
}

// ask records a decision on the session and returns it as a pending result
func ask(g *state.Game, kind state.DecisionKind, cmd state.Command, prompt string) Result {
	g.Pending = &state.Decision{Kind: kind, Prompt: prompt, Command: cmd}
	return Result{Pending: g.Pending}
}

func logMessage(g *state.Game, key string, a ...any) {
	g.AddMessage(text.Get(key, a...))
}
