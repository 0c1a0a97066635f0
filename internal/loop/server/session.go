package server

import (
	"encoding/json"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tomz197/unicorns/internal/loop"
)

const (
	writeWait         = 10 * time.Second
	pongWait          = 60 * time.Second
	pingPeriod        = (pongWait * 9) / 10
	maxMessageSize    = 512
	sendBufSize       = 8
	maxMessagesPerSec = 120
	sendEvery         = 2 // Frames are sent on every second tick (30 Hz)
)

// Encoding selects the frame wire format.
type Encoding string

const (
	EncodingMsgpack Encoding = "msgpack"
	EncodingJSON    Encoding = "json"
)

func encodingFromQuery(q url.Values) Encoding {
	if q.Get("enc") == string(EncodingJSON) {
		return EncodingJSON
	}
	return EncodingMsgpack
}

// InputMsg is the browser's held-key state. Pause and Quit are edges.
type InputMsg struct {
	DX     float64 `json:"dx" msgpack:"dx"`
	DY     float64 `json:"dy" msgpack:"dy"`
	Attack bool    `json:"attack" msgpack:"attack"`
	Sprint bool    `json:"sprint" msgpack:"sprint"`
	Pause  bool    `json:"pause,omitempty" msgpack:"pause,omitempty"`
	Quit   bool    `json:"quit,omitempty" msgpack:"quit,omitempty"`
}

// EventMsg is a simulation event as sent to the browser.
type EventMsg struct {
	Kind    string  `json:"kind" msgpack:"kind"`
	X       float64 `json:"x" msgpack:"x"`
	Y       float64 `json:"y" msgpack:"y"`
	Phase   string  `json:"phase,omitempty" msgpack:"phase,omitempty"`
	Special bool    `json:"special,omitempty" msgpack:"special,omitempty"`
}

// Frame is one server to browser message.
type Frame struct {
	State  loop.Snapshot `json:"state" msgpack:"state"`
	Events []EventMsg    `json:"events,omitempty" msgpack:"events,omitempty"`
}

// session bridges one WebSocket connection to a loop.Driver. It is the
// driver's IntentSource, Renderer and EventSink at once.
type session struct {
	conn   *websocket.Conn
	enc    Encoding
	send   chan []byte
	log    *log.Logger
	driver *loop.Driver

	mu     sync.Mutex
	intent loop.Intent
	pause  bool
	quit   bool

	// Touched only from the driver goroutine.
	pending []EventMsg
	frame   int
	dropped int
}

func newSession(conn *websocket.Conn, enc Encoding, logger *log.Logger) *session {
	return &session{
		conn: conn,
		enc:  enc,
		send: make(chan []byte, sendBufSize),
		log:  logger,
	}
}

// readPump decodes input messages until the connection fails, then cancels the session.
func (c *session) readPump(cancel func()) {
	defer func() {
		c.mu.Lock()
		c.quit = true
		c.mu.Unlock()
		cancel()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	var count int
	var resetAt time.Time
	for {
		msgType, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("read failed", "err", err)
			}
			return
		}

		now := time.Now()
		if now.After(resetAt) {
			count = 0
			resetAt = now.Add(time.Second)
		}
		count++
		if count > maxMessagesPerSec {
			c.log.Warn("rate limit exceeded, disconnecting")
			return
		}

		// Any successful read keeps the connection alive.
		c.conn.SetReadDeadline(now.Add(pongWait))

		var msg InputMsg
		if msgType == websocket.BinaryMessage {
			err = msgpack.Unmarshal(raw, &msg)
		} else {
			err = json.Unmarshal(raw, &msg)
		}
		if err != nil {
			c.log.Debug("bad input message", "err", err)
			continue
		}
		c.apply(msg)
	}
}

func (c *session) apply(msg InputMsg) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.intent = loop.Intent{DX: msg.DX, DY: msg.DY, Attack: msg.Attack, Sprint: msg.Sprint}
	c.pause = c.pause || msg.Pause
	c.quit = c.quit || msg.Quit
}

// writePump writes queued frames and keeps the connection alive with pings.
// It closes the connection once send is closed.
func (c *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	msgType := websocket.BinaryMessage
	if c.enc == EncodingJSON {
		msgType = websocket.TextMessage
	}

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(msgType, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Poll implements loop.IntentSource.
func (c *session) Poll() (loop.Intent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.quit {
		return loop.Intent{}, loop.ErrQuit
	}
	if c.pause {
		c.pause = false
		c.driver.TogglePause()
	}
	return c.intent, nil
}

// Emit implements loop.EventSink. Events ride along with the next frame.
func (c *session) Emit(ev loop.Event) {
	c.pending = append(c.pending, EventMsg{
		Kind:    ev.Kind.String(),
		X:       ev.X,
		Y:       ev.Y,
		Phase:   phaseName(ev),
		Special: ev.Special,
	})
}

func phaseName(ev loop.Event) string {
	if ev.Kind != loop.EventPhaseEnter {
		return ""
	}
	return ev.Phase.String()
}

// Render implements loop.Renderer. Frames are dropped when the browser falls behind.
func (c *session) Render(snap loop.Snapshot) error {
	c.frame++
	if (c.frame-1)%sendEvery != 0 {
		return nil
	}

	frame := Frame{State: snap, Events: c.pending}
	data, err := c.encode(frame)
	if err != nil {
		return err
	}

	select {
	case c.send <- data:
		c.pending = c.pending[:0:0]
	default:
		// Events are kept for the next frame that gets through.
		c.dropped++
		if c.dropped%600 == 1 {
			c.log.Debug("client too slow, dropping frames", "dropped", c.dropped)
		}
	}
	return nil
}

func (c *session) encode(f Frame) ([]byte, error) {
	if c.enc == EncodingJSON {
		return json.Marshal(f)
	}
	return msgpack.Marshal(f)
}
