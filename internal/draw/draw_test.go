package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasScalesLogicalCoordinates(t *testing.T) {
	c := NewScaledCanvas(80, 20, 800, 400)

	c.SetFloat(400, 200, Red)
	assert.Equal(t, Red, c.At(400, 200))
	assert.Equal(t, None, c.At(0, 0))

	col, row := c.LogicalToTerminal(400, 200)
	assert.Equal(t, 41, col)
	assert.Equal(t, 11, row)
}

func TestFillRectAndCircle(t *testing.T) {
	c := NewScaledCanvas(80, 20, 800, 400)

	c.FillRect(100, 100, 50, 50, Green)
	assert.Equal(t, Green, c.At(120, 120))
	assert.Equal(t, None, c.At(200, 120))

	c.FillCircle(600, 200, 30, Gold)
	assert.Equal(t, Gold, c.At(600, 200))
	assert.Equal(t, None, c.At(700, 200))

	c.Clear()
	assert.Equal(t, None, c.At(120, 120))
}

func TestFillPolygon(t *testing.T) {
	c := NewScaledCanvas(40, 20, 40, 40)
	c.FillPolygon([]Point{{0, 0}, {20, 0}, {0, 20}}, Pink)
	assert.Equal(t, Pink, c.At(3, 3))
	assert.Equal(t, None, c.At(18, 18))
}

func TestRenderEmitsColoredHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetFloat(0, 0, Red)
	c.SetFloat(0, 1, Red)
	c.SetFloat(1, 0, Blue)
	c.SetFloat(2, 1, Gold)
	c.SetFloat(3, 0, Red)
	c.SetFloat(3, 1, Blue)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "\033[1;1H\033[38;5;196m█")
	assert.Contains(t, out, "\033[1;2H\033[38;5;45m▀")
	assert.Contains(t, out, "\033[1;3H\033[38;5;220m▄")
	assert.Contains(t, out, "\033[1;4H\033[38;5;196m\033[48;5;45m▀")
	assert.True(t, strings.HasSuffix(out, "\033[0m"))
}

func TestChunkWriterFlush(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 2, 1)

	cw.WriteAt(1, 1, "hi")
	cw.WriteString(strings.Repeat("x", maxChunkSize*2))
	require.NoError(t, cw.Flush())

	assert.True(t, strings.HasPrefix(buf.String(), "\033[2;3Hhi"))
	assert.Equal(t, len("\033[2;3Hhi")+maxChunkSize*2, buf.Len())
	assert.Zero(t, cw.Len())
}

func TestFitTerm(t *testing.T) {
	w, h, oc, or := FitTerm(200, 60, 160, 45, 2)
	assert.Equal(t, 160, w)
	assert.Equal(t, 45, h)
	assert.Equal(t, 20, oc)
	assert.Equal(t, 2+6, or)

	w, h, oc, or = FitTerm(80, 24, 160, 45, 2)
	assert.Equal(t, 80, w)
	assert.Equal(t, 22, h)
	assert.Zero(t, oc)
	assert.Equal(t, 2, or)
}

func TestBar(t *testing.T) {
	assert.Equal(t, "██░░", Bar(0.5, 4))
	assert.Equal(t, "░░░░", Bar(-1, 4))
	assert.Equal(t, "████", Bar(2, 4))
	assert.Empty(t, Bar(1, 0))
}
