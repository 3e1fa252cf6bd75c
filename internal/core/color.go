package core

// Color is the foreground color of a screen cell. The platform layer decides
// how each one looks in the terminal.
type Color uint8

// Palette used by the board, its frame and the header lines.
const (
	ColorDefault Color = iota
	ColorGray          // frame, hidden cells, HUD
	ColorGreen
	ColorCyan
	ColorMagenta
	ColorOrange
	ColorWhite
	ColorBrightBlue
	ColorBrightGreen
	ColorBrightRed
	ColorBrightYellow // flags
)
