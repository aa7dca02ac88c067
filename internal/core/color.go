package core

// Color is a foreground color (or highlight) for one screen cell.
// The platform layer decides how each value is drawn.
type Color uint8

const (
	ColorDefault Color = iota

	// ANSI 0-7
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite

	// ANSI 9-15
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite

	// 256-color extras
	ColorOrange
	ColorGray

	// ColorCursor is a reverse-video highlight, not a hue.
	ColorCursor
)
