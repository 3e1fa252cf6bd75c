package minesweeper

import "errors"

var (
	// ErrInvalidSize is returned when the board side is not positive.
	ErrInvalidSize = errors.New("minesweeper: board size must be positive")
	// ErrInvalidMineCount is returned unless 0 < mines < size*size.
	ErrInvalidMineCount = errors.New("minesweeper: mine count out of range")

	// Precondition failures. Board methods panic with errors wrapping these;
	// the Session filters every such case before calling the board.
	ErrOutOfBounds  = errors.New("minesweeper: coordinate out of bounds")
	ErrCellRevealed = errors.New("minesweeper: cell already revealed")
	ErrCellFlagged  = errors.New("minesweeper: cell is flagged")
	ErrCellMine     = errors.New("minesweeper: cell holds a mine")
)
