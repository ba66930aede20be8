package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadToken is returned for a monster token whose HP suffix is not a
// positive integer. Every other unrecognised token just means "empty".
var ErrBadToken = errors.New("bad monster token")

// Factory turns raw room-file tokens into entities
type Factory struct {
	// EscapeRoom is the session's first room; the bare "D" door leads there
	EscapeRoom string
}

// Parse creates the entity described by raw. Blank and unknown tokens
// return nil with no error so old or hand-edited room files still load.
//
// Grammar:
//
//	@            hero start marker
//	S W X        weapons (damage 1/2/3)
//	m B          potions (heal 6/12)
//	G O T        monsters with default HP
//	G:n O:n T:n  monsters with HP n
//	d:room       unlocked door to room
//	D            locked door to the escape room
//	D:room       locked door to room
//	*            key
func (f Factory) Parse(raw, roomID string) (Entity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if prefix, arg, found := strings.Cut(raw, ":"); found {
		return f.parseQualified(raw, prefix, strings.TrimSpace(arg), roomID)
	}

	switch raw {
	case HeroToken:
		return HeroMarker{}, nil
	case KeyToken:
		return &Key{}, nil
	case "D":
		if f.EscapeRoom == "" {
			return nil, nil
		}
		return NewDoor(roomID, f.EscapeRoom, true), nil
	}

	if len(raw) != 1 {
		return nil, nil
	}
	letter := raw[0]
	if w := NewWeapon(letter); w != nil {
		return w, nil
	}
	if p := NewPotion(letter); p != nil {
		return p, nil
	}
	if m := NewMonster(letter); m != nil {
		return m, nil
	}
	return nil, nil
}

func (f Factory) parseQualified(raw, prefix, arg, roomID string) (Entity, error) {
	switch prefix {
	case "d", "D":
		if arg == "" {
			return nil, nil
		}
		return NewDoor(roomID, arg, prefix == "D"), nil
	}

	if len(prefix) != 1 {
		return nil, nil
	}
	m := NewMonster(prefix[0])
	if m == nil {
		return nil, nil
	}
	hp, err := strconv.Atoi(arg)
	if err != nil || hp <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrBadToken, raw)
	}
	m.HP = hp
	return m, nil
}
