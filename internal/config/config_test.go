package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// isolate points HOME and the working directory at empty temp dirs so no
// real user config leaks into the test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	for _, key := range []string{EnvSSHAddress, EnvHostKey, EnvIdleTimeout, EnvMetricsAddress, EnvLogLevel, EnvLogFile} {
		t.Setenv(key, "")
	}
	return home
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg MinesConfig
	if err := yaml.Unmarshal(defaultMinesYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultMinesConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultMinesConfig %+v", cfg, DefaultMinesConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadMinesEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadMines("")
	if err != nil {
		t.Fatalf("LoadMines: %v", err)
	}
	if cfg != DefaultMinesConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadMinesCustomPathPartial(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "display:\n  cell_width: 5\nmessages:\n  won: \"Cleared!\"\n")

	cfg, err := LoadMines(path)
	if err != nil {
		t.Fatalf("LoadMines: %v", err)
	}
	if cfg.Display.CellWidth != 5 {
		t.Errorf("CellWidth = %d, expected 5", cfg.Display.CellWidth)
	}
	if cfg.Display.CellHeight != 1 {
		t.Errorf("unset keys should keep defaults, CellHeight = %d", cfg.Display.CellHeight)
	}
	if cfg.Messages.Won != "Cleared!" || cfg.Messages.Lost != "You lose!" {
		t.Errorf("messages = %+v", cfg.Messages)
	}
}

func TestLoadMinesCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "display: [not, a, map]\n")
	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "display:\n  cell_width: 0\n")

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope.yaml")},
		{"unparsable", bad},
		{"invalid", invalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadMines(tc.path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadMinesSearchOrder(t *testing.T) {
	home := isolate(t)

	writeFile(t, filepath.Join("configs", "mines.yaml"), "display:\n  cell_width: 2\n")
	cfg, err := LoadMines("")
	if err != nil {
		t.Fatalf("LoadMines: %v", err)
	}
	if cfg.Display.CellWidth != 2 {
		t.Errorf("local config not used, CellWidth = %d", cfg.Display.CellWidth)
	}

	writeFile(t, filepath.Join(home, ".arcade", "configs", "mines.yaml"), "display:\n  cell_width: 4\n")
	cfg, err = LoadMines("")
	if err != nil {
		t.Fatalf("LoadMines: %v", err)
	}
	if cfg.Display.CellWidth != 4 {
		t.Errorf("user config should win over local, CellWidth = %d", cfg.Display.CellWidth)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*MinesConfig)
		ok     bool
	}{
		{"defaults", func(*MinesConfig) {}, true},
		{"zero cell width", func(c *MinesConfig) { c.Display.CellWidth = 0 }, false},
		{"negative cell height", func(c *MinesConfig) { c.Display.CellHeight = -1 }, false},
		{"negative delay", func(c *MinesConfig) { c.Display.ResizeDelayMs = -5 }, false},
		{"max below delay", func(c *MinesConfig) { c.Display.ResizeMaxDelayMs = 10 }, false},
		{"max disabled", func(c *MinesConfig) { c.Display.ResizeMaxDelayMs = 0 }, true},
		{"empty address", func(c *MinesConfig) { c.Server.Address = "" }, false},
		{"negative idle", func(c *MinesConfig) { c.Server.IdleTimeoutMinutes = -1 }, false},
		{"bad level", func(c *MinesConfig) { c.Log.Level = "loud" }, false},
		{"debug level", func(c *MinesConfig) { c.Log.Level = "debug" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMinesConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvSSHAddress, "127.0.0.1:2222")
	t.Setenv(EnvHostKey, "/tmp/key")
	t.Setenv(EnvIdleTimeout, "3")
	t.Setenv(EnvMetricsAddress, ":9100")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFile, "/tmp/mines.log")

	cfg := DefaultMinesConfig()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}

	if cfg.Server.Address != "127.0.0.1:2222" || cfg.Server.HostKey != "/tmp/key" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Server.IdleTimeout() != 3*time.Minute {
		t.Errorf("IdleTimeout() = %v", cfg.Server.IdleTimeout())
	}
	if cfg.Server.MetricsAddress != ":9100" {
		t.Errorf("MetricsAddress = %q", cfg.Server.MetricsAddress)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/mines.log" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestApplyEnvBadNumber(t *testing.T) {
	isolate(t)
	t.Setenv(EnvIdleTimeout, "soon")

	cfg := DefaultMinesConfig()
	if err := ApplyEnv(&cfg); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)
	os.Unsetenv(EnvLogLevel)
	t.Setenv(EnvSSHAddress, ":1234")

	path := filepath.Join(t.TempDir(), "mines.env")
	writeFile(t, path, EnvLogLevel+"=warn\n"+EnvSSHAddress+"=:9999\n")

	if err := LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}

	if got := os.Getenv(EnvLogLevel); got != "warn" {
		t.Errorf("%s = %q, expected value from file", EnvLogLevel, got)
	}
	if got := os.Getenv(EnvSSHAddress); got != ":1234" {
		t.Errorf("%s = %q, existing variables must not be overridden", EnvSSHAddress, got)
	}
}

func TestDisplayDurations(t *testing.T) {
	d := DisplayConfig{ResizeDelayMs: 80, ResizeMaxDelayMs: 400}
	if d.ResizeDelay() != 80*time.Millisecond || d.ResizeMaxDelay() != 400*time.Millisecond {
		t.Errorf("durations = %v, %v", d.ResizeDelay(), d.ResizeMaxDelay())
	}
}
