package state

import (
	"log/slog"

	"github.com/google/uuid"

	"dungeonescape/pkg/engine/logger"
	engineworld "dungeonescape/pkg/engine/world"
	"dungeonescape/pkg/game/entities"
	"dungeonescape/pkg/game/navigation"
	"dungeonescape/pkg/game/world"
)

// Outcome is how a session ended, if it has
type Outcome int

// Session outcomes
const (
	OutcomeNone Outcome = iota
	OutcomeEscaped
	OutcomeDied
	OutcomeQuit
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeEscaped:
		return "escaped"
	case OutcomeDied:
		return "died"
	case OutcomeQuit:
		return "quit"
	default:
		return "none"
	}
}

// Rules holds the tunable game rules for a session
type Rules struct {
	// AttackReach is 8 to scan every neighbour, 4 for orthogonal only
	AttackReach int
	// RememberPositions places the hero back where it left a room
	RememberPositions bool
}

// DefaultRules returns the standard rules
func DefaultRules() Rules {
	return Rules{AttackReach: 8, RememberPositions: true}
}

// DecisionKind identifies what a pending yes/no question is about
type DecisionKind int

const (
	DecisionSwapWeapon DecisionKind = iota
	DecisionAttack
)

// Command is a hero action that can be replayed once a decision is answered
type Command struct {
	Attack    bool
	Direction engineworld.Direction
}

// Decision is a yes/no question the player must answer before the command
// that raised it can finish
type Decision struct {
	Kind    DecisionKind
	Prompt  string
	Command Command
}

// Game represents one play session
type Game struct {
	ID string

	Hero        *entities.Hero
	CurrentRoom *world.Room
	Rooms       *navigation.Graph

	// EscapeRoom is the id of the first room; the locked door leads out from it
	EscapeRoom string

	Rules Rules

	Messages []string

	Pending *Decision

	Outcome Outcome

	Log *slog.Logger
}

// NewGame creates a new session with a fresh hero. The hero is not placed;
// the caller puts it in the first room.
func NewGame(rooms *navigation.Graph, escapeRoom string, maxHP int, rules Rules) *Game {
	id := uuid.NewString()
	return &Game{
		ID:         id,
		Hero:       entities.NewHero(maxHP),
		Rooms:      rooms,
		EscapeRoom: entities.RoomID(escapeRoom),
		Rules:      rules,
		Messages:   make([]string, 0),
		Log:        logger.With("session", id),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// IsOver returns true once the session has an outcome
func (g *Game) IsOver() bool {
	return g.Outcome != OutcomeNone
}

// SetOutcome ends the session. Pending questions are dropped.
func (g *Game) SetOutcome(o Outcome) {
	g.Outcome = o
	g.Pending = nil
	g.Logger().Info("Session ended", "outcome", o.String())
}

// EnterRoom makes room the current room
func (g *Game) EnterRoom(room *world.Room) {
	g.CurrentRoom = room
	g.Logger().Debug("Entered room", "room", room.ID)
}

// Logger returns the session logger, falling back to the global one
func (g *Game) Logger() *slog.Logger {
	if g.Log == nil {
		return logger.Get()
	}
	return g.Log
}
