package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"dungeonescape/pkg/engine/input"
	"dungeonescape/pkg/engine/logger"
	"dungeonescape/pkg/engine/tabular"
	"dungeonescape/pkg/engine/terminal"
	"dungeonescape/pkg/game/config"
	"dungeonescape/pkg/game/entities"
	"dungeonescape/pkg/game/gameplay"
	"dungeonescape/pkg/game/menu"
	"dungeonescape/pkg/game/renderer"
	"dungeonescape/pkg/game/renderer/tui"
	"dungeonescape/pkg/game/setup"
	"dungeonescape/pkg/game/state"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "dungeon.yaml", "path to the YAML config file")
	roomsDir := flag.String("rooms", "", "directory holding the pristine room files (overrides config)")
	sessionDir := flag.String("session", "", "directory for the active session (overrides config)")
	showKeys := flag.Bool("keys", false, "print the key bindings and exit")
	flag.Parse()

	if *showKeys {
		for _, line := range menu.BindingLines() {
			fmt.Println(line)
		}
		return 0
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if err := cfg.Override(*roomsDir, *sessionDir); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		return 1
	}

	if err := logger.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}

	g, err := buildGame(cfg)
	if err != nil {
		logger.Error("Failed to start session", "error", err)
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		return 1
	}

	renderer.SetRenderer(tui.New(os.Stdout, terminal.ColorEnabled(cfg.Display.Color)))
	mainLoop(g, input.NewLineReader(os.Stdin), terminal.IsInteractive())

	return exitCode(g.Outcome)
}

// buildGame copies the pristine rooms into the session directory, checks
// the door graph and places the hero in the first room
func buildGame(cfg *config.Config) (*state.Game, error) {
	if err := setup.PrepareSession(cfg.Session); err != nil {
		return nil, err
	}

	store := tabular.Dir{Root: cfg.Session.SessionDir, Delimiter: cfg.Session.Delimiter}
	setup.SurveyRooms(store, entities.Factory{EscapeRoom: cfg.EscapeRoom()}, cfg.EscapeRoom())

	return setup.NewSession(cfg)
}

func mainLoop(g *state.Game, in *input.LineReader, interactive bool) {
	for !g.IsOver() {
		if interactive {
			renderer.Clear()
		}
		renderer.RenderFrame(g)

		line, err := in.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Error("Failed to read input", "error", err)
			}
			gameplay.Quit(g)
			break
		}

		if _, err := gameplay.ProcessInput(g, line); err != nil {
			g.Logger().Debug("Command rejected", "input", line, "error", err)
		}
	}

	if interactive {
		renderer.Clear()
	}
	renderer.RenderFrame(g)
	renderer.ShowMessage("")
}

// exitCode maps the session outcome to the process exit status
func exitCode(o state.Outcome) int {
	if o == state.OutcomeDied {
		return 1
	}
	return 0
}
