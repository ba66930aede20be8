// Package gameplay provides core game logic for hero movement and combat.
package gameplay

import (
	"fmt"
	"path/filepath"
	"strings"

	"dungeonescape/pkg/engine/world"
	"dungeonescape/pkg/game/entities"
	"dungeonescape/pkg/game/state"
	"dungeonescape/pkg/game/text"
	gameworld "dungeonescape/pkg/game/world"
)

// Move steps the hero one cell in a cardinal direction and handles whatever
// occupies the target cell. Stepping onto a weapon while armed needs an
// answer; with AnswerNone the move returns a pending decision instead.
func Move(g *state.Game, dir world.Direction, answer Answer) (Result, error) {
	if g.IsOver() {
		return Result{}, ErrGameOver
	}
	g.Pending = nil

	if !dir.IsCardinal() {
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownDirection, dir)
	}

	room := g.CurrentRoom
	from := room.HeroCell()
	target := room.Grid.GetCellRelative(from, dir)
	if target == nil {
		logMessage(g, "MOVE_OUT_OF_BOUNDS")
		return Result{}, ErrOutOfBounds
	}

	hero := g.Hero
	switch obj := gameworld.GetGameData(target).Object.(type) {
	case *entities.Door:
		return enterDoor(g, obj)

	case *entities.Monster:
		logMessage(g, "MONSTER_BLOCKS", obj.Name, obj.HP)
		return Result{}, ErrBlocked

	case *entities.Potion:
		if hero.IsHurt() {
			healed := hero.Heal(obj.Heal)
			room.ClearObject(target)
			logMessage(g, "POTION_DRUNK", obj.Name, healed)
		} else {
			logMessage(g, "POTION_FULL_HEALTH", obj.Name)
		}

	case *entities.Weapon:
		if hero.Weapon == nil {
			hero.Equip(obj)
			room.ClearObject(target)
			logMessage(g, "WEAPON_PICKED", obj.Name, obj.Damage)
			break
		}

		switch answer {
		case AnswerNone:
			prompt := text.Get("WEAPON_FOUND", obj.Name, obj.Damage, hero.Weapon.Name, hero.Weapon.Damage)
			return ask(g, state.DecisionSwapWeapon, state.Command{Direction: dir}, prompt), nil
		case AnswerYes:
			old := hero.Equip(obj)
			room.ClearObject(target)
			room.MoveHero(target)
			dropWeapon(room, from, target, old)
			logMessage(g, "WEAPON_SWITCHED", obj.Name, old.Name)
			return Result{Moved: true}, nil
		default:
			logMessage(g, "WEAPON_KEPT", hero.Weapon.Name)
		}

	case *entities.Key:
		hero.ObtainKey()
		room.ClearObject(target)
		logMessage(g, "KEY_PICKED")
	}

	room.MoveHero(target)
	return Result{Moved: true}, nil
}

// dropWeapon leaves the old weapon in the cell the hero came from. If that
// cell already holds something the weapon stays under the hero instead.
func dropWeapon(room *gameworld.Room, from, to *world.Cell, w *entities.Weapon) {
	if gameworld.GetGameData(from).Object == nil {
		room.SetObject(from, w)
		return
	}
	room.SetObject(to, w)
}

// enterDoor takes the hero through a door. The escape door ends the session
// when the hero holds the key.
func enterDoor(g *state.Game, door *entities.Door) (Result, error) {
	hero := g.Hero
	escape := door.RequiresKey && door.Target == g.EscapeRoom

	if door.RequiresKey && !hero.HasKey {
		if escape {
			logMessage(g, "DOOR_LOCKED_ESCAPE")
		} else {
			logMessage(g, "DOOR_LOCKED")
		}
		return Result{}, ErrDoorLocked
	}

	if escape {
		logMessage(g, "ESCAPED")
		g.SetOutcome(state.OutcomeEscaped)
		return Result{Outcome: state.OutcomeEscaped}, nil
	}

	if err := transition(g, door.Target); err != nil {
		logMessage(g, "ROOM_LOAD_FAILED", door.Target)
		return Result{}, err
	}

	// the log starts over in each room
	g.ClearMessages()
	if door.RequiresKey {
		logMessage(g, "DOOR_UNLOCKED")
	}
	logMessage(g, "DOOR_ENTERED", roomName(door.Target))
	return Result{Moved: true, RoomChanged: true}, nil
}

func roomName(id string) string {
	return strings.TrimSuffix(id, filepath.Ext(id))
}

// transition moves the hero from the current room into the target room.
// The departing room is saved before the destination is resolved. On any
// failure the hero is left where it was.
func transition(g *state.Game, target string) error {
	hero := g.Hero
	from := g.CurrentRoom
	fromCell := from.HeroCell()

	if g.Rules.RememberPositions {
		hero.RememberPosition(from.ID, hero.Position())
	}

	if err := from.Save(g.Rooms.Store()); err != nil {
		g.Logger().Error("Failed to save room", "room", from.ID, "error", err)
		return err
	}

	next, err := g.Rooms.Room(target)
	if err != nil {
		return err
	}

	from.LiftHero()
	if err := next.PlaceHero(hero); err != nil {
		from.PutHero(hero, fromCell)
		return err
	}

	g.EnterRoom(next)
	g.Logger().Info("Hero changed room", "from", from.ID, "to", next.ID,
		"row", hero.Row, "col", hero.Col)
	return nil
}
