package render

import "image/color"

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// Colors for convenience
var (
	ColorBlack    = color.RGBA{0, 0, 0, 255}
	ColorWhite    = color.RGBA{255, 255, 255, 255}
	ColorRed      = color.RGBA{255, 0, 0, 255}
	ColorGreen    = color.RGBA{0, 255, 0, 255}
	ColorBlue     = color.RGBA{0, 0, 255, 255}
	ColorYellow   = color.RGBA{255, 255, 0, 255}
	ColorCyan     = color.RGBA{0, 255, 255, 255}
	ColorMagenta  = color.RGBA{255, 0, 255, 255}
	ColorGray     = color.RGBA{128, 128, 128, 255}
	ColorDarkGray = color.RGBA{64, 64, 64, 255}
)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// RGBA creates a color from RGBA values.
func RGBA(r, g, b, a uint8) color.RGBA {
	return color.RGBA{r, g, b, a}
}
