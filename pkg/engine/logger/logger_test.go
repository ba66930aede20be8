package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLogLevel(tt.in); got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func withConsole(t *testing.T, w *bytes.Buffer) {
	t.Helper()
	prevConsole, prevLogger := console, logger
	console = w
	t.Cleanup(func() {
		console = prevConsole
		logger = prevLogger
	})
}

func TestInitialize_ConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	withConsole(t, &buf)

	cfg := DefaultConfig()
	cfg.Level = "WARN"
	if err := Initialize(cfg); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	Info("hidden message")
	Warning("visible message", "room", "room1.csv")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("INFO message logged at WARN level: %q", out)
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "room=room1.csv") {
		t.Errorf("WARN message missing or without attrs: %q", out)
	}
}

func TestInitialize_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	withConsole(t, &buf)

	cfg := DefaultConfig()
	cfg.ConsoleFormat = "json"
	if err := Initialize(cfg); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	Info("loaded 4 rooms")

	if !strings.Contains(buf.String(), `"msg":"loaded 4 rooms"`) {
		t.Errorf("JSON output = %q", buf.String())
	}
}

func TestInitialize_FileAndConsole(t *testing.T) {
	var buf bytes.Buffer
	withConsole(t, &buf)

	path := filepath.Join(t.TempDir(), "logs", "game.log")
	cfg := DefaultConfig()
	cfg.FileEnabled = true
	cfg.FilePath = path
	if err := Initialize(cfg); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	With("session", "abc").Error("boom")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	for name, out := range map[string]string{"file": string(data), "console": buf.String()} {
		if !strings.Contains(out, "boom") || !strings.Contains(out, "session=abc") {
			t.Errorf("%s output = %q, want message with session attr", name, out)
		}
	}
}

func TestInitialize_FileWithoutPath(t *testing.T) {
	withConsole(t, &bytes.Buffer{})
	cfg := DefaultConfig()
	cfg.FileEnabled = true
	cfg.FilePath = ""
	if err := Initialize(cfg); err == nil {
		t.Error("Initialize with empty file path succeeded, want error")
	}
}

func TestGet_BeforeInitialize(t *testing.T) {
	prev := logger
	logger = nil
	t.Cleanup(func() { logger = prev })

	if Get() == nil {
		t.Fatal("Get() returned nil before Initialize")
	}
	Debug("no panic")
	Error("still no panic")
}
