package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeonescape/pkg/game/state"
	"dungeonescape/pkg/game/text"
	gameworld "dungeonescape/pkg/game/world"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		input   string
		want    Answer
		wantErr bool
	}{
		{"y", AnswerYes, false},
		{" YES ", AnswerYes, false},
		{"n", AnswerNo, false},
		{"No", AnswerNo, false},
		{"", AnswerNone, true},
		{"maybe", AnswerNone, true},
	}
	for _, tt := range tests {
		got, err := ParseAnswer(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAnswer(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseAnswer(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestProcessInput_Movement(t *testing.T) {
	g, _ := newTestGame(t, "room1.csv", map[string]string{"room1.csv": "2,2\n@,\n,"})

	for _, line := range []string{"r", "d", "left", "u"} {
		res, err := ProcessInput(g, line)
		require.NoError(t, err, line)
		assert.True(t, res.Moved, line)
	}
	heroAt(t, g, 0, 0)
}

func TestProcessInput_UnknownCommand(t *testing.T) {
	g, _ := newTestGame(t, "room1.csv", map[string]string{"room1.csv": "1,1\n@"})

	_, err := ProcessInput(g, "xyzzy")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.ErrorIs(t, err, ErrInvalidCommand)
	assert.Equal(t, text.Get("UNKNOWN_COMMAND"), lastMessage(g))
}

func TestProcessInput_RejectionsKeepState(t *testing.T) {
	g, _ := newTestGame(t, "room1.csv", map[string]string{"room1.csv": "1,2\n@,G"})
	before := g.CurrentRoom.Tokens()

	_, err := ProcessInput(g, "r")
	assert.ErrorIs(t, err, ErrBlocked)
	_, err = ProcessInput(g, "a")
	assert.ErrorIs(t, err, ErrNoWeapon)
	_, err = ProcessInput(g, "y")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	heroAt(t, g, 0, 0)
	assert.Equal(t, before, g.CurrentRoom.Tokens())
	assert.Nil(t, g.Pending)
}

func TestProcessInput_ConfirmAttack(t *testing.T) {
	g, _ := newTestGame(t, "room1.csv", map[string]string{"room1.csv": "1,3\nS,@,G:1"})

	_, err := ProcessInput(g, "l")
	require.NoError(t, err)
	_, err = ProcessInput(g, "r")
	require.NoError(t, err)

	res, err := ProcessInput(g, "a")
	require.NoError(t, err)
	require.NotNil(t, res.Pending)

	_, err = ProcessInput(g, "later")
	assert.ErrorIs(t, err, ErrInvalidAnswer)
	assert.NotNil(t, g.Pending)

	_, err = ProcessInput(g, "y")
	require.NoError(t, err)
	assert.Nil(t, gameworld.GetMonster(g.CurrentRoom.Cell(0, 2)))
}

func TestProcessInput_SaveAndQuit(t *testing.T) {
	g, dir := newTestGame(t, "room1.csv", map[string]string{"room1.csv": "1,3\n@,m,G"})
	g.Hero.TakeDamage(1)

	_, err := ProcessInput(g, "r")
	require.NoError(t, err)

	_, err = ProcessInput(g, "save")
	require.NoError(t, err)
	rows, err := dir.ReadRows("room1.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "", "G"}, rows[1])

	res, err := ProcessInput(g, "q")
	require.NoError(t, err)
	assert.Equal(t, state.OutcomeQuit, res.Outcome)
	assert.True(t, g.IsOver())

	_, err = ProcessInput(g, "r")
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestProcessInput_Help(t *testing.T) {
	g, _ := newTestGame(t, "room1.csv", map[string]string{"room1.csv": "1,1\n@"})

	_, err := ProcessInput(g, "?")
	require.NoError(t, err)
	assert.Equal(t, text.Get("HELP"), lastMessage(g))
}
