// Package setup prepares the session directory and builds a ready-to-play game.
package setup

import (
	"errors"
	"fmt"
	"os"

	"dungeonescape/pkg/engine/logger"
	"dungeonescape/pkg/engine/tabular"
	"dungeonescape/pkg/game/config"
	"dungeonescape/pkg/game/entities"
	"dungeonescape/pkg/game/navigation"
	"dungeonescape/pkg/game/state"
)

// ErrPrepare is returned when the session directory cannot be populated
var ErrPrepare = errors.New("session could not be prepared")

// PrepareSession creates the session directory and copies every configured
// room into it from the rooms directory, replacing what was there. The copy
// stops at the first room that cannot be read or written.
func PrepareSession(cfg config.SessionConfig) error {
	if err := os.MkdirAll(cfg.SessionDir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrPrepare, err)
	}

	src := tabular.Dir{Root: cfg.RoomsDir, Delimiter: cfg.Delimiter}
	dst := tabular.Dir{Root: cfg.SessionDir, Delimiter: cfg.Delimiter}

	for _, name := range cfg.Rooms {
		id := entities.RoomID(name)
		rows, err := src.ReadRows(id)
		if err != nil {
			return fmt.Errorf("%w: copy %s: %w", ErrPrepare, id, err)
		}
		if err := dst.WriteRows(id, rows); err != nil {
			return fmt.Errorf("%w: copy %s: %w", ErrPrepare, id, err)
		}
		logger.Debug("Copied room into session", "room", id, "dir", cfg.SessionDir)
	}

	logger.Info("Session prepared", "dir", cfg.SessionDir, "rooms", len(cfg.Rooms))
	return nil
}

// NewSession loads the first configured room from the session directory,
// creates the hero and places it.
func NewSession(cfg *config.Config) (*state.Game, error) {
	store := tabular.Dir{Root: cfg.Session.SessionDir, Delimiter: cfg.Session.Delimiter}
	escape := cfg.EscapeRoom()

	graph := navigation.New(store, entities.Factory{EscapeRoom: escape})
	g := state.NewGame(graph, escape, cfg.Rules.HeroMaxHP, state.Rules{
		AttackReach:       cfg.Rules.AttackReach,
		RememberPositions: cfg.Rules.RememberPositions,
	})

	room, err := graph.Room(escape)
	if err != nil {
		return nil, fmt.Errorf("load start room: %w", err)
	}
	if err := room.PlaceHero(g.Hero); err != nil {
		return nil, fmt.Errorf("place hero in %s: %w", room.ID, err)
	}
	g.EnterRoom(room)

	g.Logger().Info("Session started", "room", room.ID, "hp", g.Hero.HP)
	return g, nil
}
