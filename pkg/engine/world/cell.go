// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Cell represents a single cell/tile in the grid.
// This is a generic engine primitive that can be extended by games.
type Cell struct {
	// Grid position
	Row int
	Col int

	// Raw is the source token this cell was built from. Games write it back
	// verbatim when the grid is serialized, so it must be kept in sync with
	// whatever the game stores in GameData.
	Raw string

	// GameData holds game-specific extensions.
	// Games should cast this to their specific type (e.g., *GameCellData).
	GameData interface{}
}

// NewCell creates a new cell at the given position
func NewCell(row, col int, raw string) *Cell {
	return &Cell{
		Row: row,
		Col: col,
		Raw: raw,
	}
}
