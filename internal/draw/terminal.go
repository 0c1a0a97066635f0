package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ChunkWriter accumulates a frame of terminal output and writes it in chunks
// for smooth network flow (e.g. over SSH). Implements io.Writer for Canvas.Render.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf [20]byte      // Scratch buffer for allocation-free integer formatting
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w. offsetCol and offsetRow
// are added to all MoveCursor coordinates (for canvas centering).
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset (e.g. after terminal resize).
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends an ANSI cursor position sequence. col and row are 1-based
// canvas coordinates; offset is applied automatically.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteAt writes s at a 1-based canvas position.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

// WriteColorAt writes s at a 1-based canvas position in the given color.
func (cw *ChunkWriter) WriteColorAt(col, row int, c Color, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString("\033[38;5;")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(c), 10))
	cw.buf.WriteByte('m')
	cw.buf.WriteString(s)
	cw.buf.WriteString("\033[0m")
}

// WriteCentered writes s horizontally centered within width columns on row.
func (cw *ChunkWriter) WriteCentered(width, row int, c Color, s string) {
	col := (width-len([]rune(s)))/2 + 1
	cw.WriteColorAt(max(col, 1), row, c, s)
}

// Len returns the number of buffered bytes.
func (cw *ChunkWriter) Len() int {
	return cw.buf.Len()
}

// Ensure ChunkWriter satisfies io.Writer.
var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// FitTerm picks a render area of at most maxCols x maxRows inside a terminal of
// termWidth x termHeight, reserving hudRows rows at the top. It returns the
// render size and the 0-based offsets that center it.
func FitTerm(termWidth, termHeight, maxCols, maxRows, hudRows int) (w, h, offCol, offRow int) {
	w = min(max(termWidth, 1), maxCols)
	h = min(max(termHeight-hudRows, 1), maxRows)
	offCol = max((termWidth-w)/2, 0)
	offRow = hudRows + max((termHeight-hudRows-h)/2, 0)
	return w, h, offCol, offRow
}
