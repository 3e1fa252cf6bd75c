package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/config"
)

func testConfig() config.MinesConfig {
	return config.DefaultMinesConfig()
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn", "mines")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "col", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info line should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "col=3") || !strings.Contains(out, "mines") {
		t.Errorf("unexpected log output %q", out)
	}

	if _, err := NewLogger(&buf, "chatty", ""); err == nil {
		t.Error("unknown level should fail")
	}
}

func TestOpenLogFile(t *testing.T) {
	w, err := OpenLogFile("")
	if err != nil {
		t.Fatalf("OpenLogFile(\"\"): %v", err)
	}
	if _, err := w.Write([]byte("dropped")); err != nil {
		t.Errorf("discard writer failed: %v", err)
	}
	w.Close()

	path := filepath.Join(t.TempDir(), "logs", "mines.log")
	w, err = OpenLogFile(path)
	if err != nil {
		t.Fatalf("OpenLogFile: %v", err)
	}
	w.Write([]byte("line\n"))
	w.Close()

	data, err := os.ReadFile(path)
	if err != nil || string(data) != "line\n" {
		t.Errorf("log file = %q, %v", data, err)
	}
}
