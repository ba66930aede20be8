package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeonescape/pkg/engine/tabular"
	"dungeonescape/pkg/game/entities"
	"dungeonescape/pkg/game/navigation"
	"dungeonescape/pkg/game/state"
)

func TestDumpRoom(t *testing.T) {
	dir := tabular.Dir{Root: t.TempDir()}
	require.NoError(t, os.WriteFile(filepath.Join(dir.Root, "room1.csv"), []byte("2,3\n@,G:2,S\nd:room2.csv,*,D"), 0o644))

	graph := navigation.New(dir, entities.Factory{EscapeRoom: "room1.csv"})
	g := state.NewGame(graph, "room1.csv", 0, state.DefaultRules())
	room, err := graph.Room("room1.csv")
	require.NoError(t, err)
	require.NoError(t, room.PlaceHero(g.Hero))
	g.EnterRoom(room)

	var buf bytes.Buffer
	require.NoError(t, DumpRoom(&buf, g))
	out := buf.String()

	assert.Contains(t, out, "room: room1.csv")
	assert.Contains(t, out, "hp: 25/25")
	assert.Contains(t, out, "--- Map ---\n@GS\nd*D\n")
	assert.Contains(t, out, "--- Saved tokens ---\n2,3\n,G:2,S\nd:room2.csv,*,D\n")
	assert.Contains(t, out, "0,1 Goblin hp=2 damage=1")
	assert.Contains(t, out, "0,2 Stick")
	assert.Contains(t, out, "1,1 Key")
}

func TestDumpRoom_NoRoom(t *testing.T) {
	g := &state.Game{}
	assert.Error(t, DumpRoom(&bytes.Buffer{}, g))
}
