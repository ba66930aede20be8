package world

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"dungeonescape/pkg/engine/logger"
	"dungeonescape/pkg/engine/world"
	"dungeonescape/pkg/game/entities"
)

var (
	// ErrData is the parent of every malformed-room-file error
	ErrData = errors.New("malformed room data")

	ErrMalformedHeader = fmt.Errorf("%w: bad header", ErrData)
	ErrMissingRows     = fmt.Errorf("%w: missing rows", ErrData)
	ErrColumnCount     = fmt.Errorf("%w: too few columns", ErrMissingRows)
	ErrBadToken        = fmt.Errorf("%w: bad token", ErrData)

	// ErrSourceUnavailable wraps a store failure while reading a room
	ErrSourceUnavailable = errors.New("room source unavailable")

	// ErrNoFreeCell is returned when the hero cannot be placed anywhere
	ErrNoFreeCell = errors.New("no free cell for hero")
)

// Store reads and writes rows of tokens by room id
type Store interface {
	ReadRows(name string) ([][]string, error)
	WriteRows(name string, rows [][]string) error
}

// Room is one rectangular grid of the dungeon
type Room struct {
	ID   string
	Grid *world.Grid

	hero     *world.Cell
	monsters mapset.Set[*world.Cell]
	items    mapset.Set[*world.Cell]
}

func newRoom(id string, rows, cols int) *Room {
	return &Room{
		ID:       id,
		Grid:     world.NewGrid(rows, cols),
		monsters: mapset.New[*world.Cell](),
		items:    mapset.New[*world.Cell](),
	}
}

// LoadRoom reads a room from the store. The first row is the "rows,cols"
// header followed by rows lines of cols tokens each. Rows and fields beyond
// the declared size are ignored. A room is either returned complete or not
// at all.
func LoadRoom(store Store, id string, factory entities.Factory) (*Room, error) {
	id = entities.RoomID(id)

	lines, err := store.ReadRows(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, id, err)
	}

	rows, cols, err := parseHeader(lines)
	if err != nil {
		return nil, fmt.Errorf("room %s: %w", id, err)
	}
	if len(lines)-1 < rows {
		return nil, fmt.Errorf("room %s: %w: header says %d, found %d", id, ErrMissingRows, rows, len(lines)-1)
	}

	// Every row is checked before the grid is sized from the header
	for r := 0; r < rows; r++ {
		if fields := lines[r+1]; len(fields) < cols {
			return nil, fmt.Errorf("room %s: %w: row %d has %d fields, want %d", id, ErrColumnCount, r, len(fields), cols)
		}
	}

	room := newRoom(id, rows, cols)
	for r := 0; r < rows; r++ {
		fields := lines[r+1]
		for c := 0; c < cols; c++ {
			raw := strings.TrimSpace(fields[c])
			obj, err := factory.Parse(raw, id)
			if err != nil {
				return nil, fmt.Errorf("room %s: %w: row %d col %d: %w", id, ErrBadToken, r, c, err)
			}

			cell := room.Grid.GetCell(r, c)
			cell.Raw = raw
			InitGameData(cell)
			if _, isMarker := obj.(entities.HeroMarker); isMarker {
				// the start marker only steers placement
				continue
			}
			room.setObject(cell, obj)
		}
	}

	logger.Debug("Room loaded", "room", id, "rows", rows, "cols", cols,
		"monsters", room.monsters.Size(), "items", room.items.Size())
	return room, nil
}

func parseHeader(lines [][]string) (rows, cols int, err error) {
	if len(lines) == 0 || len(lines[0]) < 2 {
		return 0, 0, ErrMalformedHeader
	}
	rows, rowErr := strconv.Atoi(strings.TrimSpace(lines[0][0]))
	cols, colErr := strconv.Atoi(strings.TrimSpace(lines[0][1]))
	if rowErr != nil || colErr != nil || rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, strings.Join(lines[0], ","))
	}
	return rows, cols, nil
}

// Rows returns the number of rows in the room
func (r *Room) Rows() int {
	return r.Grid.Rows()
}

// Cols returns the number of columns in the room
func (r *Room) Cols() int {
	return r.Grid.Cols()
}

// Cell returns the cell at row/col, or nil when out of bounds
func (r *Room) Cell(row, col int) *world.Cell {
	return r.Grid.GetCell(row, col)
}

// Tokens returns the header and grid rows as they would be written to disk.
// Empty cells and the hero's cell are blank.
func (r *Room) Tokens() [][]string {
	out := make([][]string, 0, r.Rows()+1)
	out = append(out, []string{strconv.Itoa(r.Rows()), strconv.Itoa(r.Cols())})
	for row := 0; row < r.Rows(); row++ {
		line := make([]string, r.Cols())
		for col := 0; col < r.Cols(); col++ {
			cell := r.Grid.GetCell(row, col)
			data := GetGameData(cell)
			if data.Object != nil && data.Hero == nil {
				line[col] = cell.Raw
			}
		}
		out = append(out, line)
	}
	return out
}

// Save writes the room to the store under its id
func (r *Room) Save(store Store) error {
	if err := store.WriteRows(r.ID, r.Tokens()); err != nil {
		return fmt.Errorf("save room %s: %w", r.ID, err)
	}
	logger.Debug("Room saved", "room", r.ID)
	return nil
}

// Hero returns the hero if it is in this room
func (r *Room) Hero() *entities.Hero {
	if r.hero == nil {
		return nil
	}
	return GetGameData(r.hero).Hero
}

// HeroCell returns the cell the hero stands in, or nil
func (r *Room) HeroCell() *world.Cell {
	return r.hero
}

// PlaceHero puts the hero into the room. Candidates are tried in order:
// the hero's remembered position for this room, the "@" start cell, (1,1),
// then the first empty cell in row-major order. Each candidate must be empty.
func (r *Room) PlaceHero(hero *entities.Hero) error {
	r.LiftHero()

	if cell := r.placementCell(hero); cell != nil {
		r.PutHero(hero, cell)
		return nil
	}

	logger.Warning("No free cell for hero", "room", r.ID)
	return fmt.Errorf("room %s: %w", r.ID, ErrNoFreeCell)
}

func (r *Room) placementCell(hero *entities.Hero) *world.Cell {
	if pos, ok := hero.SavedPosition(r.ID); ok {
		if cell := r.Cell(pos.Row, pos.Col); cell != nil && IsEmpty(cell) {
			return cell
		}
	}

	marker := r.Grid.FindCell(func(c *world.Cell) bool {
		return c.Raw == entities.HeroToken && IsEmpty(c)
	})
	if marker != nil {
		return marker
	}

	if cell := r.Cell(1, 1); cell != nil && IsEmpty(cell) {
		return cell
	}

	return r.Grid.FindCell(IsEmpty)
}

// PutHero stands the hero in a cell, whatever the cell holds
func (r *Room) PutHero(hero *entities.Hero, cell *world.Cell) {
	r.LiftHero()
	GetGameData(cell).Hero = hero
	hero.SetPosition(cell.Row, cell.Col)
	r.hero = cell
}

// LiftHero removes the hero from the room and returns the cell it left,
// or nil if the hero was not here
func (r *Room) LiftHero() *world.Cell {
	cell := r.hero
	if cell == nil {
		return nil
	}
	GetGameData(cell).Hero = nil
	r.hero = nil
	return cell
}

// MoveHero moves the hero already in this room to another cell
func (r *Room) MoveHero(cell *world.Cell) {
	if hero := r.Hero(); hero != nil {
		r.PutHero(hero, cell)
	}
}

// SetObject places an entity in a cell, replacing what was there, and
// writes the entity's token as the cell's raw token
func (r *Room) SetObject(cell *world.Cell, obj entities.Entity) {
	if obj == nil {
		r.ClearObject(cell)
		return
	}
	r.setObject(cell, obj)
	cell.Raw = obj.Token()
}

func (r *Room) setObject(cell *world.Cell, obj entities.Entity) {
	r.unindex(cell)
	GetGameData(cell).Object = obj
	switch {
	case obj == nil:
	case obj.Kind() == entities.KindMonster:
		r.monsters.Put(cell)
	case HasItem(cell):
		r.items.Put(cell)
	}
}

// ClearObject empties a cell's object slot. The hero, if present, stays.
func (r *Room) ClearObject(cell *world.Cell) {
	r.unindex(cell)
	GetGameData(cell).Object = nil
	cell.Raw = ""
}

// RefreshToken rewrites a cell's raw token from its object, used after the
// object's state changes in place
func (r *Room) RefreshToken(cell *world.Cell) {
	if obj := GetGameData(cell).Object; obj != nil {
		cell.Raw = obj.Token()
	}
}

func (r *Room) unindex(cell *world.Cell) {
	r.monsters.Remove(cell)
	r.items.Remove(cell)
}

// Monsters returns the cells holding monsters in row-major order
func (r *Room) Monsters() []*world.Cell {
	return r.collect(r.monsters)
}

// Items returns the cells holding items in row-major order
func (r *Room) Items() []*world.Cell {
	return r.collect(r.items)
}

// MonsterCount returns the number of monsters left in the room
func (r *Room) MonsterCount() int {
	return r.monsters.Size()
}

func (r *Room) collect(set mapset.Set[*world.Cell]) []*world.Cell {
	var cells []*world.Cell
	r.Grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		if set.Has(cell) {
			cells = append(cells, cell)
		}
	})
	return cells
}
