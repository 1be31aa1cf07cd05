package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these onto ANSI colors.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBrightYellow
	ColorCyan
	ColorBlue
	ColorWhite
	ColorOrange
	ColorGray
)
