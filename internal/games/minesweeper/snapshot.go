package minesweeper

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-mines/internal/kit"
)

// Snapshot glyphs.
const (
	GlyphHidden  = '#'
	GlyphFlag    = 'F'
	GlyphMine    = '*'
	GlyphNothing = '.'
)

// Snapshot returns the board as a rune matrix indexed [row][col].
// With showAll, hidden cells show what lies beneath them: a mine or the
// count it would reveal.
func (b *Board) Snapshot(showAll bool) [][]rune {
	var counts [][]int
	if showAll {
		counts = b.AdjacencyCounts()
	}
	return kit.NewMatrix(b.Size(), b.Size(), func(col, row int) rune {
		c := Coord{Col: col, Row: row}
		cell := b.grid.Get(c)
		switch {
		case cell.IsRevealed():
			return countGlyph(cell.Adjacent())
		case showAll && cell.IsMine():
			return GlyphMine
		case showAll:
			return countGlyph(counts[row][col])
		case cell.Flagged():
			return GlyphFlag
		default:
			return GlyphHidden
		}
	})
}

// AdjacencyCounts returns the adjacent mine count of every cell, indexed
// [row][col], whether or not the cell is revealed. With M the 0/1 mine matrix
// and B the band matrix with ones on and beside the diagonal, B·M·B sums each
// 3x3 block; subtracting M leaves the neighbors only.
func (b *Board) AdjacencyCounts() [][]int {
	n := b.Size()
	mines := kit.Apply(b.grid.cells, func(c Cell) int {
		if c.IsMine() {
			return 1
		}
		return 0
	})
	band := kit.NewMatrix(n, n, func(col, row int) int {
		if col-row >= -1 && col-row <= 1 {
			return 1
		}
		return 0
	})

	rows, err := kit.Dot(band, mines)
	if err == nil {
		rows, err = kit.Dot(rows, band)
	}
	if err == nil {
		rows, err = kit.Minus(rows, mines)
	}
	if err != nil {
		// Square matrices of one size always line up.
		panic(fmt.Errorf("adjacency counts: %w", err))
	}
	return rows
}

// String renders the player's view of the board, one row per line.
func (b *Board) String() string {
	return FormatSnapshot(b.Snapshot(false))
}

// FormatSnapshot joins a snapshot into lines.
func FormatSnapshot(m [][]rune) string {
	lines := make([]string, len(m))
	for i, row := range m {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

func countGlyph(n int) rune {
	if n == 0 {
		return GlyphNothing
	}
	return rune('0' + n)
}
