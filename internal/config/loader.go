package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvSSHAddress     = "MINES_SSH_ADDRESS"
	EnvHostKey        = "MINES_HOST_KEY"
	EnvIdleTimeout    = "MINES_IDLE_TIMEOUT_MINUTES"
	EnvMetricsAddress = "MINES_METRICS_ADDRESS"
	EnvLogLevel       = "MINES_LOG_LEVEL"
	EnvLogFile        = "MINES_LOG_FILE"
)

// LoadMines loads Minesweeper configuration, applies environment overrides
// and validates the result. Files only need to name the keys they change.
// Search order: customPath -> ~/.arcade/configs/mines.yaml -> ./configs/mines.yaml -> embedded default
func LoadMines(customPath string) (MinesConfig, error) {
	cfg, err := readMines(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readMines(customPath string) (MinesConfig, error) {
	cfg := DefaultMinesConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("mines.yaml"), filepath.Join("configs", "mines.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultMinesConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMinesYAML, &cfg); err != nil {
		return DefaultMinesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files (".env" when none are
// named) without overriding variables already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides server and log settings from MINES_* variables.
func ApplyEnv(cfg *MinesConfig) error {
	if v := os.Getenv(EnvSSHAddress); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv(EnvHostKey); v != "" {
		cfg.Server.HostKey = v
	}
	if v := os.Getenv(EnvIdleTimeout); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvIdleTimeout, v, err)
		}
		cfg.Server.IdleTimeoutMinutes = n
	}
	if v, ok := os.LookupEnv(EnvMetricsAddress); ok {
		cfg.Server.MetricsAddress = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
