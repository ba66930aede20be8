// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dungeonescape/pkg/engine/world"
	"dungeonescape/pkg/game/entities"
	"dungeonescape/pkg/game/state"
	gameworld "dungeonescape/pkg/game/world"
)

const roomDumpFilename = "room_dump.txt"

// cellSymbol returns the single-character debug symbol for a cell
func cellSymbol(cell *world.Cell) rune {
	data := gameworld.GetGameData(cell)
	if data.Hero != nil {
		return '@'
	}
	switch obj := data.Object.(type) {
	case *entities.Monster:
		return rune(obj.Letter)
	case *entities.Weapon:
		return rune(obj.Letter)
	case *entities.Potion:
		return rune(obj.Letter)
	case *entities.Key:
		return '*'
	case *entities.Door:
		if obj.RequiresKey {
			return 'D'
		}
		return 'd'
	default:
		return '.'
	}
}

// DumpRoom writes a debug dump of the current room: metadata, a symbol
// grid, the raw token grid, the monster and item indexes, and the hero.
func DumpRoom(w io.Writer, g *state.Game) error {
	room := g.CurrentRoom
	if room == nil {
		return fmt.Errorf("no current room")
	}
	hero := g.Hero

	fmt.Fprintln(w, "=== ROOM DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "session: %s\n", g.ID)
	fmt.Fprintf(w, "room: %s\n", room.ID)
	fmt.Fprintf(w, "escape_room: %s\n", g.EscapeRoom)
	fmt.Fprintf(w, "grid_rows: %d\n", room.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", room.Cols())
	fmt.Fprintf(w, "loaded_rooms: %v\n", g.Rooms.IDs())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Hero ---")
	fmt.Fprintf(w, "position: %d,%d\n", hero.Row, hero.Col)
	fmt.Fprintf(w, "hp: %d/%d\n", hero.HP, hero.MaxHP)
	if hero.Weapon != nil {
		fmt.Fprintf(w, "weapon: %s (%d)\n", hero.Weapon.Name, hero.Weapon.Damage)
	} else {
		fmt.Fprintln(w, "weapon: none")
	}
	fmt.Fprintf(w, "has_key: %v\n", hero.HasKey)
	for _, id := range g.Rooms.IDs() {
		if pos, ok := hero.SavedPosition(id); ok {
			fmt.Fprintf(w, "remembered %s: %d,%d\n", id, pos.Row, pos.Col)
		}
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	for row := 0; row < room.Rows(); row++ {
		for col := 0; col < room.Cols(); col++ {
			fmt.Fprintf(w, "%c", cellSymbol(room.Cell(row, col)))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Saved tokens ---")
	for _, line := range room.Tokens() {
		for i, tok := range line {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprint(w, tok)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Monsters ---")
	for _, cell := range room.Monsters() {
		m := gameworld.GetMonster(cell)
		fmt.Fprintf(w, "%d,%d %s hp=%d damage=%d\n", cell.Row, cell.Col, m.Name, m.HP, m.Damage)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Items ---")
	for _, cell := range room.Items() {
		obj := gameworld.GetGameData(cell).Object
		fmt.Fprintf(w, "%d,%d %s\n", cell.Row, cell.Col, entities.Name(obj))
	}

	return nil
}

// DumpRoomToFile writes DumpRoom output to room_dump.txt in the working
// directory and returns its absolute path
func DumpRoomToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(roomDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpRoom(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}
