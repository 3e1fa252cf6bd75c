package minesweeper

import (
	"fmt"

	"github.com/gammazero/deque"

	"github.com/vovakirdan/tui-mines/internal/dependencies/random"
)

// Default board parameters. Difficulty is fixed.
const (
	DefaultFieldSize = 10
	DefaultMineCount = 15
)

// Board owns the grid and implements mine placement, flood-fill reveal,
// flag toggling and the win check.
type Board struct {
	grid  *Grid
	src   random.Source
	mines int
}

// NewBoard creates a size x size board and places mines drawn from src.
func NewBoard(size, mines int, src random.Source) (*Board, error) {
	if err := ValidateDimensions(size, mines); err != nil {
		return nil, err
	}
	b := NewEmptyBoard(size, src)
	b.PlaceMines(mines)
	return b, nil
}

// NewEmptyBoard creates a board with no mines. Use SetMine or PlaceMines to
// populate it.
func NewEmptyBoard(size int, src random.Source) *Board {
	return &Board{grid: NewGrid(size), src: src}
}

// ValidateDimensions checks size > 0 and 0 < mines < size*size.
func ValidateDimensions(size, mines int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if mines <= 0 || mines >= size*size {
		return fmt.Errorf("%w: %d mines on %dx%d", ErrInvalidMineCount, mines, size, size)
	}
	return nil
}

// Size returns the board side length.
func (b *Board) Size() int {
	return b.grid.Size()
}

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int {
	return b.mines
}

// InBounds returns true if c addresses a cell.
func (b *Board) InBounds(c Coord) bool {
	return b.grid.InBounds(c)
}

// Cell returns the cell at c.
func (b *Board) Cell(c Coord) Cell {
	return b.grid.Get(c)
}

// SetMine plants a mine at c. Planting on a revealed cell panics.
func (b *Board) SetMine(c Coord) {
	b.mustInBounds(c, "set mine")
	cell := b.grid.Get(c)
	switch {
	case cell.IsMine():
		return
	case cell.IsRevealed():
		panic(fmt.Errorf("minesweeper: set mine %v: %w", c, ErrCellRevealed))
	}
	b.grid.Set(c, MineCell().withFlag(cell.Flagged()))
	b.mines++
}

// PlaceMines plants count mines at random. Each draw excludes every cell that
// already holds a mine, is revealed or is flagged, so positions are distinct
// without retrying. Running out of candidates panics.
func (b *Board) PlaceMines(count int) {
	exclude := make(map[int]struct{})
	b.grid.Each(func(c Coord, cell Cell) {
		if cell.IsMine() || cell.IsRevealed() || cell.Flagged() {
			exclude[b.grid.Index(c)] = struct{}{}
		}
	})

	last := b.Size()*b.Size() - 1
	for i := range count {
		idx, err := random.PickExcluding(b.src, 0, last, exclude)
		if err != nil {
			panic(fmt.Errorf("minesweeper: place mine %d of %d: %w", i+1, count, err))
		}
		exclude[idx] = struct{}{}
		b.grid.Set(b.grid.CoordOf(idx), MineCell())
		b.mines++
	}
}

// Neighbors returns the in-bounds coordinates around c, row-major within the
// 3x3 window, never including c itself.
func (b *Board) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Coord{Col: c.Col + dc, Row: c.Row + dr}
			if b.grid.InBounds(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// AdjacentMines counts mines among the neighbors of c.
func (b *Board) AdjacentMines(c Coord) int {
	n := 0
	for _, nb := range b.Neighbors(c) {
		if b.grid.Get(nb).IsMine() {
			n++
		}
	}
	return n
}

// Reveal steps on a hidden, unflagged cell and returns every coordinate whose
// state changed, in reveal order. A cell with no adjacent mines expands into
// all of its unrevealed neighbors; flagged safe cells reached that way are
// revealed and lose their flag.
//
// Calling Reveal on a mine, a flagged or an already revealed cell panics.
func (b *Board) Reveal(c Coord) []Coord {
	b.mustInBounds(c, "reveal")
	cell := b.grid.Get(c)
	switch {
	case cell.IsRevealed():
		panic(fmt.Errorf("minesweeper: reveal %v: %w", c, ErrCellRevealed))
	case cell.Flagged():
		panic(fmt.Errorf("minesweeper: reveal %v: %w", c, ErrCellFlagged))
	case cell.IsMine():
		panic(fmt.Errorf("minesweeper: reveal %v: %w", c, ErrCellMine))
	}

	var (
		changed []Coord
		queue   deque.Deque[Coord]
	)
	step := func(at Coord) {
		n := b.AdjacentMines(at)
		b.grid.Set(at, RevealedCell(n))
		changed = append(changed, at)
		if n == 0 {
			queue.PushBack(at)
		}
	}

	step(c)
	for queue.Len() > 0 {
		cur := queue.PopFront()
		for _, nb := range b.Neighbors(cur) {
			// Revealed cells are the cycle breaker; a zero cell has no mine neighbors.
			if next := b.grid.Get(nb); next.IsRevealed() || next.IsMine() {
				continue
			}
			step(nb)
		}
	}
	return changed
}

// ToggleFlag flips the flag on c and returns the new state.
// Toggling a revealed cell panics.
func (b *Board) ToggleFlag(c Coord) bool {
	b.mustInBounds(c, "toggle flag")
	cell := b.grid.Get(c)
	if cell.IsRevealed() {
		panic(fmt.Errorf("minesweeper: toggle flag %v: %w", c, ErrCellRevealed))
	}
	cell = cell.withFlag(!cell.Flagged())
	b.grid.Set(c, cell)
	return cell.Flagged()
}

// IsWon reports whether every cell is either a mine or revealed.
// Flags do not matter.
func (b *Board) IsWon() bool {
	won := true
	b.grid.Each(func(_ Coord, cell Cell) {
		if cell.IsHidden() {
			won = false
		}
	})
	return won
}

// MineCoords returns the mine positions in row-major order.
func (b *Board) MineCoords() []Coord {
	out := make([]Coord, 0, b.mines)
	b.grid.Each(func(c Coord, cell Cell) {
		if cell.IsMine() {
			out = append(out, c)
		}
	})
	return out
}

// FlagCount returns the number of flagged cells.
func (b *Board) FlagCount() int {
	n := 0
	b.grid.Each(func(_ Coord, cell Cell) {
		if cell.Flagged() {
			n++
		}
	})
	return n
}

// RevealedCount returns the number of revealed cells.
func (b *Board) RevealedCount() int {
	n := 0
	b.grid.Each(func(_ Coord, cell Cell) {
		if cell.IsRevealed() {
			n++
		}
	})
	return n
}

func (b *Board) mustInBounds(c Coord, op string) {
	if !b.grid.InBounds(c) {
		panic(fmt.Errorf("minesweeper: %s %v: %w", op, c, ErrOutOfBounds))
	}
}
