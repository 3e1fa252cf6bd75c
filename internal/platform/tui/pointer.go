package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

// CellMapper converts terminal positions to board coordinates.
type CellMapper struct {
	OriginX    int // Screen column of cell (0,0)
	OriginY    int // Screen row of cell (0,0)
	CellWidth  int
	CellHeight int
	Size       int // Board side
}

// Map returns the board cell under screen position (x, y).
// ok is false when the position lies outside the board.
func (m CellMapper) Map(x, y int) (c minesweeper.Coord, ok bool) {
	if m.CellWidth <= 0 || m.CellHeight <= 0 {
		return c, false
	}
	dx, dy := x-m.OriginX, y-m.OriginY
	if dx < 0 || dy < 0 {
		return c, false
	}
	c = minesweeper.C(dx/m.CellWidth, dy/m.CellHeight)
	if c.Col >= m.Size || c.Row >= m.Size {
		return minesweeper.Coord{}, false
	}
	return c, true
}

// MouseAction classifies a mouse event: a left press steps, a right press
// flags and plain motion only moves the cursor (ActionNone).
// handled is false for events the board ignores.
func MouseAction(msg tea.MouseMsg) (action core.Action, handled bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return core.ActionPrimary, true
		case tea.MouseButtonRight:
			return core.ActionSecondary, true
		}
		return core.ActionNone, false
	case tea.MouseActionMotion:
		return core.ActionNone, true
	}
	return core.ActionNone, false
}
