// Package draw renders into a half-block terminal canvas.
package draw

import (
	"fmt"
	"io"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Color is an xterm-256 palette index. Zero means "no pixel".
type Color uint8

// Palette used by the scene renderer.
const (
	None   Color = 0
	White  Color = 15
	Red    Color = 196
	Green  Color = 46
	Pink   Color = 213
	Gold   Color = 220
	Blue   Color = 45
	Purple Color = 135
	Grey   Color = 244
	Olive  Color = 100
	Orange Color = 208
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockLight     = '░'
)

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// ResetStyle clears colors and attributes.
func ResetStyle(w io.Writer) {
	fmt.Fprint(w, "\033[0m")
}

// Bar renders a text progress bar of the given width for fraction f in [0,1].
func Bar(f float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(f*float64(width) + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	buf := make([]rune, width)
	for i := range buf {
		if i < filled {
			buf[i] = BlockFull
		} else {
			buf[i] = BlockLight
		}
	}
	return string(buf)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
