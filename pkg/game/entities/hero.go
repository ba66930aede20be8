package entities

// DefaultHeroMaxHP is the hero's starting and maximum health
const DefaultHeroMaxHP = 25

// HeroToken marks the hero's start cell in a room file
const HeroToken = "@"

// Position is a row/column pair inside a room
type Position struct {
	Row int
	Col int
}

// Hero is the player-controlled character. Its position is relative to
// whichever room currently holds it.
type Hero struct {
	MaxHP  int
	HP     int
	Weapon *Weapon
	HasKey bool

	Row int
	Col int

	// last position per room id, consulted when the hero re-enters a room
	positions map[string]Position
}

// NewHero creates a hero at full health with no weapon and no key
func NewHero(maxHP int) *Hero {
	if maxHP <= 0 {
		maxHP = DefaultHeroMaxHP
	}
	return &Hero{
		MaxHP:     maxHP,
		HP:        maxHP,
		positions: make(map[string]Position),
	}
}

func (h *Hero) entity()       {}
func (h *Hero) Kind() Kind    { return KindHero }
func (h *Hero) Symbol() rune  { return '☺' }
func (h *Hero) Token() string { return HeroToken }

// Heal raises HP by amount, capped at MaxHP, and returns the HP gained
func (h *Hero) Heal(amount int) int {
	before := h.HP
	h.HP = min(h.MaxHP, h.HP+amount)
	return h.HP - before
}

// TakeDamage lowers HP, never below zero
func (h *Hero) TakeDamage(amount int) {
	h.HP = max(0, h.HP-amount)
}

// IsDead returns true once HP has reached zero
func (h *Hero) IsDead() bool {
	return h.HP <= 0
}

// IsHurt returns true while HP is below MaxHP
func (h *Hero) IsHurt() bool {
	return h.HP < h.MaxHP
}

// Equip swaps in a new weapon and returns the one previously held, if any
func (h *Hero) Equip(w *Weapon) *Weapon {
	prev := h.Weapon
	h.Weapon = w
	return prev
}

// ObtainKey gives the hero the key
func (h *Hero) ObtainKey() {
	h.HasKey = true
}

// SetPosition moves the hero within the current room
func (h *Hero) SetPosition(row, col int) {
	h.Row = row
	h.Col = col
}

// Position returns the hero's current position
func (h *Hero) Position() Position {
	return Position{Row: h.Row, Col: h.Col}
}

// RememberPosition records where the hero stood in a room
func (h *Hero) RememberPosition(roomID string, pos Position) {
	if h.positions == nil {
		h.positions = make(map[string]Position)
	}
	h.positions[RoomID(roomID)] = pos
}

// SavedPosition returns the last recorded position in a room
func (h *Hero) SavedPosition(roomID string) (Position, bool) {
	pos, ok := h.positions[RoomID(roomID)]
	return pos, ok
}

// HeroMarker is what the factory produces for the hero start token.
// It is only used while loading a room and never stored in a cell.
type HeroMarker struct{}

func (HeroMarker) entity()       {}
func (HeroMarker) Kind() Kind    { return KindHero }
func (HeroMarker) Symbol() rune  { return '@' }
func (HeroMarker) Token() string { return HeroToken }
