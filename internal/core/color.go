package core

// Color is the foreground color of a screen cell. The platform maps each
// value to a terminal color; the zero value leaves the terminal default.
type Color uint8

// Colors available to the game. Tiles use the bright/regular pairs as
// their value grows.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
