// mines is a terminal Minesweeper, playable locally or over SSH.
//
// Usage:
//
//	mines play               - Play in this terminal
//	mines serve              - Start SSH server for remote play
//	mines board              - Print a generated board (debug aid)
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible boards
//	--config <path>     - Use a specific config YAML
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Log destination for local play
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/dependencies/random"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper on a 10x10 field with 15 mines.

Step on every safe cell to win. Numbers count the mines around a cell;
flags are reminders and do not count towards winning.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  board    - Print a generated board

Examples:
  mines play
  mines play --seed 42
  mines serve --ssh :2222
  mines board --seed 42 --reveal`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for local play (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(boardCmd)
}

// loadConfig reads .env, the config file and the global flag overrides.
func loadConfig() (config.MinesConfig, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.MinesConfig{}, err
	}
	cfg, err := config.LoadMines(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	return cfg, cfg.Validate()
}

// newSource returns a seeded source when --seed is set, crypto otherwise.
func newSource() random.Source {
	if flagSeed != 0 {
		return random.NewSeeded(flagSeed)
	}
	return random.NewCrypto()
}
