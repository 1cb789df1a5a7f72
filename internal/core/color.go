package core

// Color is the foreground color of a screen cell. The platform maps each
// value to a terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorBlue
	ColorPurple
	ColorOrange
	ColorGreen
	ColorWhite
	ColorGray
	ColorBrightWhite
)
