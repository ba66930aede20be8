package gameplay

import (
	"dungeonescape/pkg/engine/world"
	"dungeonescape/pkg/game/entities"
	"dungeonescape/pkg/game/state"
	"dungeonescape/pkg/game/text"
	gameworld "dungeonescape/pkg/game/world"
)

// Attack engages the first live monster around the hero, scanning the
// neighbours in a fixed order. One exchange is fought: the monster takes the
// weapon's damage and the hero takes the monster's. With AnswerNone the
// attack stops at the confirmation and returns a pending decision.
func Attack(g *state.Game, answer Answer) (Result, error) {
	if g.IsOver() {
		return Result{}, ErrGameOver
	}
	g.Pending = nil

	hero := g.Hero
	if hero.Weapon == nil {
		logMessage(g, "NO_WEAPON")
		return Result{}, ErrNoWeapon
	}

	room := g.CurrentRoom
	cell := findTarget(room, g.Rules.AttackReach)
	if cell == nil {
		logMessage(g, "NO_MONSTER")
		return Result{}, ErrNothingToAttack
	}
	monster := gameworld.GetMonster(cell)

	switch answer {
	case AnswerNone:
		prompt := text.Get("ATTACK_PROMPT", monster.Name, monster.HP)
		return ask(g, state.DecisionAttack, state.Command{Attack: true}, prompt), nil
	case AnswerNo:
		logMessage(g, "ATTACK_DECLINED", monster.Name)
		return Result{}, nil
	}

	monster.TakeDamage(hero.Weapon.Damage)
	hero.TakeDamage(monster.Damage)
	logMessage(g, "ATTACK_EXCHANGE", monster.Name, hero.Weapon.Damage, monster.Damage)
	g.Logger().Debug("Attack", "monster", monster.Name, "monster_hp", monster.HP, "hero_hp", hero.HP)

	if monster.IsDead() {
		killMonster(g, room, cell, monster)
	} else {
		room.RefreshToken(cell)
	}

	if hero.IsDead() {
		logMessage(g, "HERO_DIED")
		g.SetOutcome(state.OutcomeDied)
		return Result{Outcome: state.OutcomeDied}, nil
	}
	return Result{}, nil
}

// findTarget returns the first neighbour of the hero holding a live monster
func findTarget(room *gameworld.Room, reach int) *world.Cell {
	order := world.ScanOrder(reach != 4)
	for _, cell := range room.Grid.Neighbors(room.HeroCell(), order) {
		if gameworld.HasMonster(cell) {
			return cell
		}
	}
	return nil
}

func killMonster(g *state.Game, room *gameworld.Room, cell *world.Cell, monster *entities.Monster) {
	room.ClearObject(cell)
	logMessage(g, "MONSTER_DEFEATED", monster.Name)

	if monster.DropsKey() {
		room.SetObject(cell, &entities.Key{})
		logMessage(g, "KEY_DROPPED", monster.Name)
	}
	if room.MonsterCount() == 0 {
		logMessage(g, "ROOM_CLEARED")
	}
}
