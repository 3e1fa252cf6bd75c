package minesweeper

import "github.com/vovakirdan/tui-mines/internal/kit"

// Grid is a fixed-size square matrix of cells, indexed [row][col].
// Cells are never added or removed after creation.
type Grid struct {
	size  int
	cells [][]Cell
}

// NewGrid creates a size x size grid of hidden cells.
func NewGrid(size int) *Grid {
	return &Grid{
		size:  size,
		cells: kit.NewMatrix(size, size, func(_, _ int) Cell { return HiddenCell() }),
	}
}

// Size returns the side length.
func (g *Grid) Size() int {
	return g.size
}

// InBounds returns true if the coordinate is within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < g.size && c.Row >= 0 && c.Row < g.size
}

// Get returns the cell at c. Out-of-bounds coordinates yield a hidden cell.
func (g *Grid) Get(c Coord) Cell {
	if !g.InBounds(c) {
		return HiddenCell()
	}
	return g.cells[c.Row][c.Col]
}

// Set replaces the cell at c. Out-of-bounds coordinates are ignored.
func (g *Grid) Set(c Coord, cell Cell) {
	if g.InBounds(c) {
		g.cells[c.Row][c.Col] = cell
	}
}

// Index converts a coordinate to its linear index (col + row*size).
func (g *Grid) Index(c Coord) int {
	return c.Col + c.Row*g.size
}

// CoordOf converts a linear index back to a coordinate.
func (g *Grid) CoordOf(i int) Coord {
	return Coord{Col: i % g.size, Row: i / g.size}
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c Coord, cell Cell)) {
	for row := range g.cells {
		for col, cell := range g.cells[row] {
			fn(Coord{Col: col, Row: row}, cell)
		}
	}
}
