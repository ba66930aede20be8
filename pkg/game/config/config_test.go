package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "sessions/active_session", cfg.Session.SessionDir)
	assert.Equal(t, "room1.csv", cfg.EscapeRoom())
	assert.Equal(t, 25, cfg.Rules.HeroMaxHP)
	assert.Equal(t, 8, cfg.Rules.AttackReach)
	assert.True(t, cfg.Rules.RememberPositions)
	assert.Equal(t, "INFO", cfg.Logging.Level)
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Session, cfg.Session)
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dungeon.yaml")
	content := `
session:
  rooms_dir: data/rooms
  rooms: [start.csv, cellar.csv]
rules:
  attack_reach: 4
  remember_positions: false
logging:
  level: DEBUG
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "data/rooms", cfg.Session.RoomsDir)
	assert.Equal(t, "sessions/active_session", cfg.Session.SessionDir)
	assert.Equal(t, []string{"start.csv", "cellar.csv"}, cfg.Session.Rooms)
	assert.Equal(t, "start.csv", cfg.EscapeRoom())
	assert.Equal(t, 4, cfg.Rules.AttackReach)
	assert.False(t, cfg.Rules.RememberPositions)
	assert.Equal(t, 25, cfg.Rules.HeroMaxHP)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.True(t, cfg.Logging.ConsoleEnabled)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DUNGEON_ROOMS_DIR", "/srv/rooms")
	t.Setenv("DUNGEON_SESSION_DIR", "/tmp/session")
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("LOG_FILE_ENABLED", "true")
	t.Setenv("LOG_FILE_PATH", "/tmp/dungeon.log")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/srv/rooms", cfg.Session.RoomsDir)
	assert.Equal(t, "/tmp/session", cfg.Session.SessionDir)
	assert.Equal(t, "ERROR", cfg.Logging.Level)
	assert.True(t, cfg.Logging.FileEnabled)
	assert.Equal(t, "/tmp/dungeon.log", cfg.Logging.FilePath)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "session: [unclosed"},
		{"attack reach", "rules:\n  attack_reach: 6\n"},
		{"no rooms", "session:\n  rooms: []\n"},
		{"colon delimiter", "session:\n  delimiter: \":\"\n"},
		{"color mode", "display:\n  color: sometimes\n"},
		{"session dir is rooms dir", "session:\n  rooms_dir: rooms\n  session_dir: ./rooms/\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "dungeon.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_EnvRules(t *testing.T) {
	t.Setenv("DUNGEON_HERO_MAX_HP", "40")
	t.Setenv("DUNGEON_ATTACK_REACH", "4")
	t.Setenv("DUNGEON_COLOR", "never")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Rules.HeroMaxHP)
	assert.Equal(t, 4, cfg.Rules.AttackReach)
	assert.Equal(t, "never", cfg.Display.Color)
}

func TestLoadConfig_BadEnv(t *testing.T) {
	t.Setenv("DUNGEON_ATTACK_REACH", "far")

	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestOverride(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Override("custom/rooms", ""))
	assert.Equal(t, "custom/rooms", cfg.Session.RoomsDir)
	assert.Equal(t, "sessions/active_session", cfg.Session.SessionDir)

	require.NoError(t, cfg.Override("", "custom/session"))
	assert.Equal(t, "custom/rooms", cfg.Session.RoomsDir)
	assert.Equal(t, "custom/session", cfg.Session.SessionDir)
}

func TestOverride_Invalid(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Override("", cfg.Session.RoomsDir)
	assert.ErrorContains(t, err, "session_dir must differ")
}
