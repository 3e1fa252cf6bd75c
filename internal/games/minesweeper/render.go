package minesweeper

import "github.com/vovakirdan/tui-mines/internal/core"

// Glyphs drawn by ScreenRenderer.
const (
	RuneHidden = '■'
	RuneFlag   = '▲'
	RuneMine   = '*'
	RuneEmpty  = '·'
)

// countColors maps an adjacent mine count to its color.
var countColors = [9]core.Color{
	core.ColorGray,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorMagenta,
	core.ColorOrange,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorGray,
}

// ScreenRenderer draws cells onto a core.Screen. Each board cell occupies
// CellWidth x CellHeight screen cells, with the board's top-left corner at
// Origin and a one-cell frame around it.
type ScreenRenderer struct {
	Screen     *core.Screen
	OriginX    int
	OriginY    int
	CellWidth  int
	CellHeight int
}

var _ Renderer = (*ScreenRenderer)(nil)

// NewScreenRenderer creates a renderer. Non-positive cell sizes become 1.
func NewScreenRenderer(s *core.Screen, originX, originY, cellW, cellH int) *ScreenRenderer {
	return &ScreenRenderer{
		Screen:     s,
		OriginX:    originX,
		OriginY:    originY,
		CellWidth:  max(cellW, 1),
		CellHeight: max(cellH, 1),
	}
}

// CellRect returns the screen area covered by c.
func (r *ScreenRenderer) CellRect(c Coord) core.Rect {
	return core.NewRect(
		r.OriginX+c.Col*r.CellWidth,
		r.OriginY+c.Row*r.CellHeight,
		r.CellWidth,
		r.CellHeight,
	)
}

// BoardRect returns the screen area of a size x size board, frame included.
func (r *ScreenRenderer) BoardRect(size int) core.Rect {
	return core.NewRect(
		r.OriginX-1,
		r.OriginY-1,
		size*r.CellWidth+2,
		size*r.CellHeight+2,
	)
}

// DrawFrame draws the box around a size x size board.
func (r *ScreenRenderer) DrawFrame(size int) {
	r.Screen.DrawBox(r.BoardRect(size), core.ColorGray)
}

// DrawHidden draws an unopened cell.
func (r *ScreenRenderer) DrawHidden(c Coord) {
	r.drawGlyph(c, RuneHidden, core.ColorGray)
}

// DrawRevealed draws an opened cell with its count, or a dot for zero.
func (r *ScreenRenderer) DrawRevealed(c Coord, adjacent int) {
	adjacent = core.Clamp(adjacent, 0, len(countColors)-1)
	if adjacent == 0 {
		r.drawGlyph(c, RuneEmpty, countColors[0])
		return
	}
	r.drawGlyph(c, rune('0'+adjacent), countColors[adjacent])
}

// DrawFlagged draws a flag, or a plain hidden cell once the flag is removed.
func (r *ScreenRenderer) DrawFlagged(c Coord, flagged bool) {
	if !flagged {
		r.DrawHidden(c)
		return
	}
	r.drawGlyph(c, RuneFlag, core.ColorBrightYellow)
}

// DrawMineField shows every mine, red when the game was lost on one.
func (r *ScreenRenderer) DrawMineField(coords []Coord, exploded bool) {
	color := core.ColorGreen
	if exploded {
		color = core.ColorBrightRed
	}
	for _, c := range coords {
		r.drawGlyph(c, RuneMine, color)
	}
}

// drawGlyph blanks the cell area and puts ch in its middle.
func (r *ScreenRenderer) drawGlyph(c Coord, ch rune, color core.Color) {
	rect := r.CellRect(c)
	r.Screen.FillRect(rect, ' ', core.ColorDefault)
	r.Screen.SetColored(rect.X+rect.W/2, rect.Y+rect.H/2, ch, color)
}
