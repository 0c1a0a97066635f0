// Package client runs one private game session on a terminal, local or over SSH.
package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/unicorns/internal/draw"
	"github.com/tomz197/unicorns/internal/input"
	"github.com/tomz197/unicorns/internal/loop"
	"github.com/tomz197/unicorns/internal/loop/config"
)

// Terminal render limits and layout.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 45
	hudRows       = 1
)

// ErrIdle is returned when the player stays inactive past the idle timeout.
var ErrIdle = errors.New("idle timeout")

// Client handles rendering and input for a single terminal session.
type Client struct {
	driver       *loop.Driver
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	log          *log.Logger

	lastInput   time.Time
	idleTimeout time.Duration
	layout      [4]int // Last applied render width, height and offsets
	needsClear  bool
}

// Options configures the client.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Sim          loop.Options
	Sinks        []loop.EventSink
	IdleTimeout  time.Duration // 0 disables the idle disconnect
	Logger       *log.Logger
}

// New creates a client with its own simulation reading from r and drawing to w.
func New(r *bufio.Reader, w io.Writer, opts Options) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Sim.Logger == nil {
		opts.Sim.Logger = logger
	}

	c := &Client{
		driver:       loop.NewDriver(loop.New(opts.Sim), opts.Sinks...),
		canvas:       draw.NewScaledCanvas(MaxTermWidth, MaxTermHeight, config.FieldWidth, config.FieldHeight),
		chunkWriter:  draw.NewChunkWriter(w, 0, 0),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		log:          logger.WithPrefix("client"),
		lastInput:    time.Now(),
		idleTimeout:  opts.IdleTimeout,
	}
	c.updateScreen()
	return c
}

// Driver returns the session's frame driver.
func (c *Client) Driver() *loop.Driver {
	return c.driver
}

// Run starts the session. Blocks until the player quits, the input ends,
// the idle timeout fires or ctx is done.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)
	defer draw.ClearScreen(c.writer)
	defer draw.ResetStyle(c.writer)

	err := c.driver.Run(ctx, c, c)
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return nil
	}
	return err
}

// Poll implements loop.IntentSource.
func (c *Client) Poll() (loop.Intent, error) {
	in := input.ReadInput(c.inputStream)

	if in.Quit || c.inputStream.Closed() {
		return loop.Intent{}, loop.ErrQuit
	}
	if in.Pause {
		c.driver.TogglePause()
	}

	now := time.Now()
	if len(in.Pressed) > 0 {
		c.lastInput = now
	} else if c.idleTimeout > 0 && now.Sub(c.lastInput) > c.idleTimeout {
		return loop.Intent{}, fmt.Errorf("%w after %s", ErrIdle, c.idleTimeout)
	}

	dx, dy := in.Direction()
	return loop.Intent{DX: dx, DY: dy, Attack: in.Attack, Sprint: in.Sprint}, nil
}

// Render implements loop.Renderer.
func (c *Client) Render(snap loop.Snapshot) error {
	c.updateScreen()

	if c.needsClear {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.needsClear = false
	}
	c.canvas.Clear()
	drawScene(c.canvas, snap)
	c.canvas.Render(c.chunkWriter)
	c.drawHUD(snap)
	return c.chunkWriter.Flush()
}

// updateScreen handles terminal resize, clamping to the max render resolution.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	w, h, offCol, offRow := draw.FitTerm(termWidth, termHeight, MaxTermWidth, MaxTermHeight, hudRows)
	layout := [4]int{w, h, offCol, offRow}
	if layout == c.layout {
		return
	}
	c.layout = layout
	c.needsClear = true

	c.canvas.Resize(w, h)
	c.canvas.SetOffset(offCol, offRow)
	// HUD text is addressed from the row above the canvas.
	c.chunkWriter.SetOffset(offCol, offRow-hudRows)
	c.log.Debug("resize", "cols", w, "rows", h)
}
