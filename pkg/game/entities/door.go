package entities

import (
	"path/filepath"
	"strings"
)

// Door links a room to another room. Locked doors need the key.
type Door struct {
	Target      string // Id of the room this door leads to
	From        string // Id of the room the door sits in
	RequiresKey bool
}

// NewDoor creates a door from one room to another
func NewDoor(from, target string, requiresKey bool) *Door {
	return &Door{
		Target:      RoomID(target),
		From:        RoomID(from),
		RequiresKey: requiresKey,
	}
}

func (d *Door) entity()      {}
func (d *Door) Kind() Kind   { return KindDoor }
func (d *Door) Symbol() rune { return '☗' }

// Token returns the explicit-target form of the door token
func (d *Door) Token() string {
	if d.RequiresKey {
		return "D:" + d.Target
	}
	return "d:" + d.Target
}

// DoorName returns the display name for this door
func (d *Door) DoorName() string {
	if d.RequiresKey {
		return "Master Door"
	}
	return "Door to " + strings.TrimSuffix(d.Target, filepath.Ext(d.Target))
}

// RoomID normalises a room reference to the id rooms are cached and saved
// under: its base file name
func RoomID(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return filepath.Base(name)
}
