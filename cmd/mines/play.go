package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Minesweeper",
	Long: `Start a game in this terminal.

Controls:
  Arrows/hjkl/wasd - Move cursor (or point with the mouse)
  Space/Enter      - Step on the cell (or left click)
  F                - Toggle flag (or right click)
  R                - New game
  ?                - Show all keys
  Ctrl+S           - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Examples:
  mines play
  mines play --seed 42
  mines play --config ./my-mines.yaml --log-file /tmp/mines.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := tui.OpenLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := tui.NewLogger(logFile, cfg.Log.Level, "mines")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.Run(tui.Options{
		Config: cfg,
		Source: newSource(),
		Logger: logger,
		Width:  width,
		Height: height,
	}); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
