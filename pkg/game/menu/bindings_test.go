package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	engineinput "dungeonescape/pkg/engine/input"
)

func TestBindingLines(t *testing.T) {
	lines := BindingLines()

	assert.Len(t, lines, 10)
	assert.Equal(t, "Move Up: arrow_up, n, north, u, up", lines[0])
	assert.Equal(t, "Attack: a, attack", lines[4])
	assert.Equal(t, "Quit: q, quit", lines[len(lines)-1])
}

func TestBindingItem_Unbound(t *testing.T) {
	item := BindingItem{Action: engineinput.ActionNone}
	assert.Equal(t, "None: (unbound)", item.GetLabel())
}
