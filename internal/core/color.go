package core

// Color is the foreground color of a screen cell. The platform maps each
// value to a terminal color when rendering.
type Color uint8

// Palette used by the games.
//
// Minesweeper colors its adjacency digits 1..8 in the classic order: bright
// blue, green, bright red, blue, red, cyan, magenta, gray. Mines and wrong
// flags are bright red, flags red, hidden cells white and opened empty cells
// gray. Flappy Bird draws pipes green with bright green caps and the bird in
// bright yellow, which also marks the board cursor and the NEW BEST banner.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorGray
)
