package config

import (
	_ "embed"
)

//go:embed defaults/mines.yaml
var defaultMinesYAML []byte

// DefaultMinesConfig returns the default Minesweeper configuration.
func DefaultMinesConfig() MinesConfig {
	return MinesConfig{
		Display: DisplayConfig{
			CellWidth:        3,
			CellHeight:       1,
			ResizeDelayMs:    80,
			ResizeMaxDelayMs: 400,
		},
		Messages: MessagesConfig{
			Intro: "Clear the field without stepping on a mine",
			Won:   "You win!",
			Lost:  "You lose!",
			HUD:   "Mines: {mines}  Flags: {flags}  Time: {time}",
		},
		Server: ServerConfig{
			Address:            ":23235",
			HostKey:            ".ssh/mines_ed25519",
			IdleTimeoutMinutes: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
