// Package config provides YAML-based configuration loading for the
// Minesweeper front ends, with environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// MinesConfig contains all configuration for the Minesweeper game.
type MinesConfig struct {
	Display  DisplayConfig  `yaml:"display"`
	Messages MessagesConfig `yaml:"messages"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// DisplayConfig defines how the board maps onto the terminal.
type DisplayConfig struct {
	CellWidth        int `yaml:"cell_width"`
	CellHeight       int `yaml:"cell_height"`
	ResizeDelayMs    int `yaml:"resize_delay_ms"`
	ResizeMaxDelayMs int `yaml:"resize_max_delay_ms"`
}

// ResizeDelay returns the trailing resize delay.
func (d DisplayConfig) ResizeDelay() time.Duration {
	return time.Duration(d.ResizeDelayMs) * time.Millisecond
}

// ResizeMaxDelay returns the longest a relayout may be deferred.
func (d DisplayConfig) ResizeMaxDelay() time.Duration {
	return time.Duration(d.ResizeMaxDelayMs) * time.Millisecond
}

// MessagesConfig holds the status lines. HUD is a template with
// {mines}, {flags} and {time} placeholders.
type MessagesConfig struct {
	Intro string `yaml:"intro"`
	Won   string `yaml:"won"`
	Lost  string `yaml:"lost"`
	HUD   string `yaml:"hud"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
	MetricsAddress     string `yaml:"metrics_address"` // empty disables metrics
}

// IdleTimeout returns the idle timeout; zero disables it.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // local game only; empty discards
}

// Validate checks the configuration for values the game cannot use.
func (c MinesConfig) Validate() error {
	d := c.Display
	switch {
	case d.CellWidth <= 0 || d.CellHeight <= 0:
		return fmt.Errorf("%w: cell size %dx%d must be positive", ErrInvalid, d.CellWidth, d.CellHeight)
	case d.ResizeDelayMs < 0 || d.ResizeMaxDelayMs < 0:
		return fmt.Errorf("%w: resize delays must not be negative", ErrInvalid)
	case d.ResizeMaxDelayMs > 0 && d.ResizeMaxDelayMs < d.ResizeDelayMs:
		return fmt.Errorf("%w: resize_max_delay_ms %d is below resize_delay_ms %d",
			ErrInvalid, d.ResizeMaxDelayMs, d.ResizeDelayMs)
	case c.Server.Address == "":
		return fmt.Errorf("%w: server address is empty", ErrInvalid)
	case c.Server.IdleTimeoutMinutes < 0:
		return fmt.Errorf("%w: idle timeout must not be negative", ErrInvalid)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q: %v", ErrInvalid, c.Log.Level, err)
	}
	return nil
}
