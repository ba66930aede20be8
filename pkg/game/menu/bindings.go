// Package menu lists the key bindings for the help screen.
package menu

import (
	"fmt"
	"strings"

	engineinput "dungeonescape/pkg/engine/input"
)

// bindingOrder is the order actions are listed in
var bindingOrder = []engineinput.Action{
	engineinput.ActionMoveNorth,
	engineinput.ActionMoveSouth,
	engineinput.ActionMoveWest,
	engineinput.ActionMoveEast,
	engineinput.ActionAttack,
	engineinput.ActionLook,
	engineinput.ActionSave,
	engineinput.ActionDump,
	engineinput.ActionHelp,
	engineinput.ActionQuit,
}

// BindingItem is one line of the bindings list
type BindingItem struct {
	Action engineinput.Action
}

// GetLabel returns the display label for this binding
func (b BindingItem) GetLabel() string {
	codes := engineinput.GetBindingsByAction()[b.Action]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	return fmt.Sprintf("%s: %s", engineinput.ActionName(b.Action), codeText)
}

// Bindings returns every bound action in display order
func Bindings() []BindingItem {
	items := make([]BindingItem, 0, len(bindingOrder))
	for _, act := range bindingOrder {
		items = append(items, BindingItem{Action: act})
	}
	return items
}

// BindingLines returns the labels of every binding, one per line
func BindingLines() []string {
	lines := make([]string, 0, len(bindingOrder))
	for _, item := range Bindings() {
		lines = append(lines, item.GetLabel())
	}
	return lines
}
