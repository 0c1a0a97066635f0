package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Canvas is a color drawing buffer with 2x vertical resolution using half-block characters.
// Drawing happens in logical coordinates that are scaled to terminal pixels.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area (0-based columns/rows to skip).
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// At returns the color of the pixel at logical coordinates.
func (c *Canvas) At(x, y float64) Color {
	px, py := c.toPixel(x, y)
	if px < 0 || px >= c.termWidth || py < 0 || py >= c.subPixelHeight {
		return None
	}
	return c.pixels[py*c.termWidth+px]
}

// LogicalToTerminal converts logical coordinates to a 1-based terminal position (col, row).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return px + 1, py/2 + 1
}

func (c *Canvas) toPixel(x, y float64) (int, int) {
	return int(math.Round(x * c.scaleX)), int(math.Round(y * c.scaleY))
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// SetFloat sets a pixel using float logical coordinates.
func (c *Canvas) SetFloat(x, y float64, col Color) {
	px, py := c.toPixel(x, y)
	c.setPixel(px, py, col)
}

// FillRect fills the logical rectangle with top-left (x, y).
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	x0, y0 := c.toPixel(x, y)
	x1, y1 := c.toPixel(x+w, y+h)
	// Keep tiny shapes visible.
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.setPixel(px, py, col)
		}
	}
}

// DrawRect outlines the logical rectangle with top-left (x, y).
func (c *Canvas) DrawRect(x, y, w, h float64, col Color) {
	c.DrawLine(Point{x, y}, Point{x + w, y}, col)
	c.DrawLine(Point{x + w, y}, Point{x + w, y + h}, col)
	c.DrawLine(Point{x + w, y + h}, Point{x, y + h}, col)
	c.DrawLine(Point{x, y + h}, Point{x, y}, col)
}

// FillCircle fills a logical circle. The radius is scaled per axis so circles
// stay round on non-square cells.
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	pcx, pcy := cx*c.scaleX, cy*c.scaleY
	rx, ry := math.Max(r*c.scaleX, 0.5), math.Max(r*c.scaleY, 0.5)
	for py := int(math.Floor(pcy - ry)); py <= int(math.Ceil(pcy+ry)); py++ {
		for px := int(math.Floor(pcx - rx)); px <= int(math.Ceil(pcx+rx)); px++ {
			dx := (float64(px) - pcx) / rx
			dy := (float64(py) - pcy) / ry
			if dx*dx+dy*dy <= 1 {
				c.setPixel(px, py, col)
			}
		}
	}
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, col Color) {
	x1, y1 := c.toPixel(p1.X, p1.Y)
	x2, y2 := c.toPixel(p2.X, p2.Y)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// FillPolygon fills a polygon using the scanline algorithm in pixel space.
func (c *Canvas) FillPolygon(points []Point, col Color) {
	if len(points) < 3 {
		return
	}
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			for x := int(math.Ceil(intersections[i])); x <= int(math.Floor(intersections[i+1])); x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using colored half-block characters.
// Empty cells are skipped, so the caller clears the screen first.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 8)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			if top == None && bottom == None {
				continue
			}

			c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			switch {
			case top == bottom:
				c.fg(top)
				c.renderBuf.WriteRune(BlockFull)
			case bottom == None:
				c.fg(top)
				c.renderBuf.WriteRune(BlockUpperHalf)
			case top == None:
				c.fg(bottom)
				c.renderBuf.WriteRune(BlockLowerHalf)
			default:
				c.fg(top)
				c.bg(bottom)
				c.renderBuf.WriteRune(BlockUpperHalf)
				c.renderBuf.WriteString("\033[49m")
			}
		}
	}
	c.renderBuf.WriteString("\033[0m")

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

func (c *Canvas) fg(col Color) {
	c.renderBuf.WriteString("\033[38;5;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('m')
}

func (c *Canvas) bg(col Color) {
	c.renderBuf.WriteString("\033[48;5;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('m')
}
