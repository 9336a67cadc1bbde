package core

// Color is a foreground color for a screen cell. The platform maps each
// value to an ANSI 256-color code.
type Color uint8

// Palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightCyan
	ColorBrightWhite
	ColorBrightYellow
	ColorOrange
	ColorGray
	ColorDimGray
)

// Scene roles.
const (
	ColorCube      = ColorOrange
	ColorCubeFar   = ColorYellow // Edges facing away from the camera
	ColorPaddle    = ColorCyan
	ColorFlash     = ColorBrightWhite
	ColorGrid      = ColorDimGray
	ColorWall      = ColorGray
	ColorParticle  = ColorBrightYellow
	ColorHUD       = ColorWhite
	ColorHighlight = ColorBrightCyan
	ColorAlert     = ColorRed
	ColorSuccess   = ColorGreen
)
