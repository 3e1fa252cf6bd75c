package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/dependencies/random"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/kit"
)

var (
	flagReveal bool
	flagOpen   int
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print a generated board",
	Long: `Generate a board and print it as text.

Legend:
  #  hidden cell       *  mine
  .  no adjacent mines 1-8 adjacent mine count

Without --seed a random seed is chosen and printed, so the board can be
replayed with 'mines play --seed N'.

--open N reveals N randomly chosen safe cells first, flood fill included,
to preview how the board opens up.

Examples:
  mines board
  mines board --seed 42 --reveal
  mines board --seed 42 --open 3`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func init() {
	boardCmd.Flags().BoolVar(&flagReveal, "reveal", false, "Show mines and counts under hidden cells")
	boardCmd.Flags().IntVar(&flagOpen, "open", 0, "Reveal this many random safe cells")
}

func runBoard(cmd *cobra.Command, _ []string) error {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if flagOpen < 0 {
		return fmt.Errorf("--open must not be negative, got %d", flagOpen)
	}

	src := random.NewSeeded(seed)
	b, err := minesweeper.NewBoard(minesweeper.DefaultFieldSize, minesweeper.DefaultMineCount, src)
	if err != nil {
		return err
	}
	openRandomCells(b, src, flagOpen)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%dx%d, %d mines, seed %d\n", b.Size(), b.Size(), b.MineCount(), seed)
	fmt.Fprintln(out, minesweeper.FormatSnapshot(b.Snapshot(flagReveal)))
	return nil
}

// openRandomCells reveals up to n safe cells in shuffled order. Cells already
// opened by an earlier flood fill still count towards n.
func openRandomCells(b *minesweeper.Board, src random.Source, n int) {
	if n == 0 {
		return
	}

	var safe []minesweeper.Coord
	for row := range b.Size() {
		for col := range b.Size() {
			c := minesweeper.C(col, row)
			if !b.Cell(c).IsMine() {
				safe = append(safe, c)
			}
		}
	}

	for _, c := range kit.Shuffle(src, safe)[:min(n, len(safe))] {
		if !b.Cell(c).IsRevealed() {
			b.Reveal(c)
		}
	}
}
