// Package minesweeper implements the board engine and game controller for a
// single-player Minesweeper. It has no terminal dependencies: drawing goes
// through the Renderer interface and randomness through random.Source.
package minesweeper

import "fmt"

// Coord addresses a cell on the board.
// Col increases to the right, Row increases downward.
type Coord struct {
	Col int
	Row int
}

// C is a convenience constructor for Coord.
func C(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Content is the mutually exclusive state of a cell.
type Content uint8

const (
	Hidden   Content = iota // Not stepped on, no mine
	Mine                    // Holds a mine; never changes
	Revealed                // Stepped on; carries the adjacent mine count
)

// String returns the content name.
func (k Content) String() string {
	switch k {
	case Hidden:
		return "hidden"
	case Mine:
		return "mine"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// Cell is the unit of board state at one coordinate.
// The zero value is a Hidden, unflagged cell.
type Cell struct {
	content  Content
	adjacent uint8
	flagged  bool
}

// HiddenCell returns an untouched cell.
func HiddenCell() Cell {
	return Cell{content: Hidden}
}

// MineCell returns a cell holding a mine.
func MineCell() Cell {
	return Cell{content: Mine}
}

// RevealedCell returns a stepped-on cell with n adjacent mines.
func RevealedCell(n int) Cell {
	return Cell{content: Revealed, adjacent: uint8(n)}
}

// Content returns the cell variant.
func (c Cell) Content() Content { return c.content }

// IsMine reports whether the cell holds a mine.
func (c Cell) IsMine() bool { return c.content == Mine }

// IsRevealed reports whether the cell has been stepped on.
func (c Cell) IsRevealed() bool { return c.content == Revealed }

// IsHidden reports whether the cell is untouched and safe.
func (c Cell) IsHidden() bool { return c.content == Hidden }

// Flagged reports whether the player marked the cell.
func (c Cell) Flagged() bool { return c.flagged }

// Adjacent returns the neighbor mine count of a Revealed cell, 0 otherwise.
func (c Cell) Adjacent() int {
	if c.content != Revealed {
		return 0
	}
	return int(c.adjacent)
}

// withFlag returns a copy with the flag set to f.
func (c Cell) withFlag(f bool) Cell {
	c.flagged = f
	return c
}
