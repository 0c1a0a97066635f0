// Package input turns raw terminal bytes into held-key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report repeats, so this has to bridge the auto-repeat gap.
const keyHoldDuration = 120 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit   bool // Pressed this frame
	Pause  bool // Pressed this frame
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Attack bool
	Sprint bool

	Pressed []byte
}

// Direction returns the movement axes in [-1,1] from the held arrow keys.
func (in Input) Direction() (dx, dy float64) {
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	return dx, dy
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	left   time.Time
	right  time.Time
	up     time.Time
	down   time.Time
	attack time.Time
	sprint time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and uses key state persistence
// to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return s.apply(buf, time.Now())
}

// apply parses buf, updates the key state timestamps and builds the frame input.
func (s *Stream) apply(buf []byte, now time.Time) Input {
	in := Input{Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
			case 'B':
				s.state.down = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			i += 2
			continue
		}

		switch b {
		case 'q', 'Q', '\x03':
			in.Quit = true
		case 'p', 'P':
			in.Pause = true
		default:
			applyByteToState(&s.state, b, now)
		}
	}

	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }
	in.Left = held(s.state.left)
	in.Right = held(s.state.right)
	in.Up = held(s.state.up)
	in.Down = held(s.state.down)
	in.Attack = held(s.state.attack)
	in.Sprint = held(s.state.sprint)
	return in
}

// applyByteToState updates the key state timestamps based on the pressed byte.
// Upper-case movement keys (shift held) also mark sprint.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'a', 'j':
		state.left = now
	case 'd', 'l':
		state.right = now
	case 'w', 'i':
		state.up = now
	case 's', 'k':
		state.down = now
	case 'A', 'J':
		state.left = now
		state.sprint = now
	case 'D', 'L':
		state.right = now
		state.sprint = now
	case 'W', 'I':
		state.up = now
		state.sprint = now
	case 'S', 'K':
		state.down = now
		state.sprint = now
	case 'b', 'B':
		state.sprint = now
	case ' ', '\n', '\r', 'x', 'X':
		state.attack = now
	}
}
