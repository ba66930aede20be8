// Package config loads the game configuration from YAML with environment
// variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"dungeonescape/pkg/engine/logger"
	"dungeonescape/pkg/engine/tabular"
	"dungeonescape/pkg/game/entities"
)

// Config is the complete game configuration
type Config struct {
	Session SessionConfig `yaml:"session"`
	Rules   RulesConfig   `yaml:"rules"`
	Display DisplayConfig `yaml:"display"`
	Logging logger.Config `yaml:"logging"`
}

// SessionConfig says where rooms come from and where a session keeps them
type SessionConfig struct {
	// RoomsDir holds the pristine room files
	RoomsDir string `yaml:"rooms_dir" env:"DUNGEON_ROOMS_DIR"`

	// SessionDir is the active session; rooms are copied here and saved here
	SessionDir string `yaml:"session_dir" env:"DUNGEON_SESSION_DIR"`

	// Rooms lists the room files to copy. The first one is where the hero
	// starts and where the locked escape door leads.
	Rooms []string `yaml:"rooms"`

	Delimiter string `yaml:"delimiter"`
}

// RulesConfig holds tunable game rules
type RulesConfig struct {
	HeroMaxHP int `yaml:"hero_max_hp" env:"DUNGEON_HERO_MAX_HP"`

	// AttackReach is 8 to scan every neighbour or 4 for orthogonal only
	AttackReach int `yaml:"attack_reach" env:"DUNGEON_ATTACK_REACH"`

	RememberPositions bool `yaml:"remember_positions"`
}

// DisplayConfig holds renderer options
type DisplayConfig struct {
	// Color is auto, always or never
	Color string `yaml:"color" env:"DUNGEON_COLOR"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Session: SessionConfig{
			RoomsDir:   "rooms",
			SessionDir: "sessions/active_session",
			Rooms:      []string{"room1.csv", "room2.csv", "room3.csv", "room4.csv"},
			Delimiter:  tabular.DefaultDelimiter,
		},
		Rules: RulesConfig{
			HeroMaxHP:         entities.DefaultHeroMaxHP,
			AttackReach:       8,
			RememberPositions: true,
		},
		Display: DisplayConfig{
			Color: "auto",
		},
		Logging: logger.DefaultConfig(),
	}
}

// LoadConfig reads the YAML file at path over the defaults, then applies
// environment overrides from the env tags. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// Use defaults if file doesn't exist
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration for values the game cannot run with
func (c *Config) Validate() error {
	var problems []string

	if c.Session.RoomsDir == "" {
		problems = append(problems, "session.rooms_dir is empty")
	}
	if c.Session.SessionDir == "" {
		problems = append(problems, "session.session_dir is empty")
	}
	if c.Session.RoomsDir != "" && filepath.Clean(c.Session.RoomsDir) == filepath.Clean(c.Session.SessionDir) {
		problems = append(problems, "session.session_dir must differ from session.rooms_dir")
	}
	if len(c.Session.Rooms) == 0 {
		problems = append(problems, "session.rooms is empty")
	}
	for _, room := range c.Session.Rooms {
		if entities.RoomID(room) == "" {
			problems = append(problems, "session.rooms has a blank entry")
			break
		}
	}
	if len(c.Session.Delimiter) != 1 || c.Session.Delimiter == ":" {
		problems = append(problems, fmt.Sprintf("session.delimiter %q must be a single character other than ':'", c.Session.Delimiter))
	}
	if c.Rules.HeroMaxHP <= 0 {
		problems = append(problems, "rules.hero_max_hp must be positive")
	}
	if c.Rules.AttackReach != 4 && c.Rules.AttackReach != 8 {
		problems = append(problems, fmt.Sprintf("rules.attack_reach must be 4 or 8, got %d", c.Rules.AttackReach))
	}
	switch strings.ToLower(c.Display.Color) {
	case "auto", "always", "never":
	default:
		problems = append(problems, fmt.Sprintf("display.color %q must be auto, always or never", c.Display.Color))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Override replaces the room and session directories with any non-empty
// value and validates the result.
func (c *Config) Override(roomsDir, sessionDir string) error {
	if roomsDir != "" {
		c.Session.RoomsDir = roomsDir
	}
	if sessionDir != "" {
		c.Session.SessionDir = sessionDir
	}
	return c.Validate()
}

// EscapeRoom returns the id of the first configured room
func (c *Config) EscapeRoom() string {
	if len(c.Session.Rooms) == 0 {
		return ""
	}
	return entities.RoomID(c.Session.Rooms[0])
}
