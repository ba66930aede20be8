// Package world provides game-specific world extensions for the dungeon.
// It extends the generic engine/world primitives with rooms that hold
// monsters, items, doors and the hero.
package world

import (
	"dungeonescape/pkg/engine/world"
	"dungeonescape/pkg/game/entities"
)

// GameCellData holds game-specific entity references for a cell.
// This is stored in the engine Cell's GameData field.
type GameCellData struct {
	Object entities.Entity // Monster, item or door in this cell (if any)
	Hero   *entities.Hero  // Hero standing in this cell (if any)
}

// InitGameData initializes game data for a cell if not already set
func InitGameData(cell *world.Cell) *GameCellData {
	if cell.GameData == nil {
		cell.GameData = &GameCellData{}
	}
	return cell.GameData.(*GameCellData)
}

// GetGameData retrieves game data from a cell, initializing if needed
func GetGameData(cell *world.Cell) *GameCellData {
	return InitGameData(cell)
}

// Helper functions for checking entity presence on cells

// IsEmpty returns true if the cell holds neither an object nor the hero
func IsEmpty(cell *world.Cell) bool {
	data := GetGameData(cell)
	return data.Object == nil && data.Hero == nil
}

// HasHero returns true if the hero stands in this cell
func HasHero(cell *world.Cell) bool {
	return GetGameData(cell).Hero != nil
}

// HasMonster returns true if this cell contains a live monster
func HasMonster(cell *world.Cell) bool {
	m := GetMonster(cell)
	return m != nil && !m.IsDead()
}

// HasItem returns true if this cell contains a weapon, potion or key
func HasItem(cell *world.Cell) bool {
	obj := GetGameData(cell).Object
	return obj != nil && entities.IsItem(obj)
}

// HasDoor returns true if this cell contains a door
func HasDoor(cell *world.Cell) bool {
	return GetDoor(cell) != nil
}

// GetMonster returns the monster in this cell, or nil
func GetMonster(cell *world.Cell) *entities.Monster {
	m, _ := GetGameData(cell).Object.(*entities.Monster)
	return m
}

// GetDoor returns the door in this cell, or nil
func GetDoor(cell *world.Cell) *entities.Door {
	d, _ := GetGameData(cell).Object.(*entities.Door)
	return d
}
