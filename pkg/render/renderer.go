package render

import (
	uv "github.com/charmbracelet/ultraviolet"
)

// TerminalRenderer bridges a framebuffer to an ultraviolet terminal: it
// converts pixels to half-block cells in the terminal's cell buffer and
// flushes the buffer to the tty. Recreate it when the terminal resizes.
type TerminalRenderer struct {
	term   *uv.Terminal
	width  int // terminal columns
	height int // terminal rows
}

// NewTerminalRenderer creates a renderer for a terminal of width x
// height cells.
func NewTerminalRenderer(term *uv.Terminal, width, height int) *TerminalRenderer {
	return &TerminalRenderer{
		term:   term,
		width:  width,
		height: height,
	}
}

// FramebufferSize returns the pixel dimensions matching the terminal
// size: one column per pixel across, two pixels per row down.
func (r *TerminalRenderer) FramebufferSize() (int, int) {
	return r.width, r.height * 2
}

// Render draws the framebuffer into the terminal's cell buffer. Each
// cell shows "▀" with the upper pixel as its foreground color and the
// lower pixel as its background, doubling the vertical resolution.
func (r *TerminalRenderer) Render(fb *Framebuffer) {
	for row := 0; row < r.height; row++ {
		topY := row * 2
		for col := 0; col < r.width && col < fb.Width; col++ {
			r.term.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(fb.GetPixel(col, topY)),
					Bg: rgbaToColor(fb.GetPixel(col, topY+1)),
				},
			})
		}
	}
}

// Flush displays the cell buffer on the terminal.
func (r *TerminalRenderer) Flush() error {
	return r.term.Display()
}
