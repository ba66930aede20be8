// Package entities contains the objects that can occupy a room cell:
// the hero, monsters, weapons, potions, the key and doors.
package entities

// Kind identifies an entity variant
type Kind int

const (
	KindHero Kind = iota
	KindMonster
	KindWeapon
	KindPotion
	KindKey
	KindDoor
)

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case KindHero:
		return "Hero"
	case KindMonster:
		return "Monster"
	case KindWeapon:
		return "Weapon"
	case KindPotion:
		return "Potion"
	case KindKey:
		return "Key"
	case KindDoor:
		return "Door"
	default:
		return "Unknown"
	}
}

// Entity is implemented by every object that can occupy a cell.
// The set of implementations is closed to this package.
type Entity interface {
	// Kind returns the variant tag
	Kind() Kind
	// Symbol returns the glyph used to draw the entity
	Symbol() rune
	// Token returns the raw room-file token that recreates the entity
	Token() string

	entity()
}

// IsItem returns true for entities the hero can pick up or consume
func IsItem(e Entity) bool {
	switch e.(type) {
	case *Weapon, *Potion, *Key:
		return true
	default:
		return false
	}
}

// Name returns a display name for any entity
func Name(e Entity) string {
	switch v := e.(type) {
	case *Monster:
		return v.Name
	case *Weapon:
		return v.Name
	case *Potion:
		return v.Name
	case *Key:
		return "Key"
	case *Door:
		return v.DoorName()
	case *Hero, HeroMarker:
		return "Hero"
	default:
		return ""
	}
}
