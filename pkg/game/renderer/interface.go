// Package renderer defines the rendering backend interface and the styles
// entities are drawn with.
package renderer

import (
	"dungeonescape/pkg/game/entities"
	"dungeonescape/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleSubtle
	StyleBorder
	StyleAction
	StyleActionShort
	StyleDenied
	StyleHero
	StyleMonster
	StyleWeapon
	StylePotion
	StyleKey
	StyleDoor
	StyleLockedDoor
)

// StyleFor returns the style an entity is drawn with
func StyleFor(e entities.Entity) TextStyle {
	if e == nil {
		return StyleNormal
	}
	switch e.Kind() {
	case entities.KindHero:
		return StyleHero
	case entities.KindMonster:
		return StyleMonster
	case entities.KindWeapon:
		return StyleWeapon
	case entities.KindPotion:
		return StylePotion
	case entities.KindKey:
		return StyleKey
	case entities.KindDoor:
		if d, ok := e.(*entities.Door); ok && d.RequiresKey {
			return StyleLockedDoor
		}
		return StyleDoor
	default:
		return StyleNormal
	}
}

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, markup)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: the room, status bar,
	// messages and input prompt
	RenderFrame(g *state.Game)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer and initializes it
func SetRenderer(r Renderer) {
	Current = r
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// ShowMessage displays a message using the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
