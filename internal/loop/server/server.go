// Package server hosts game sessions for browsers over WebSocket.
// Every connection owns a private simulation driven on its own goroutine.
package server

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/tomz197/unicorns/internal/loop"
)

// DefaultMaxSessions caps concurrent browser sessions.
const DefaultMaxSessions = 64

// Options configures the server.
type Options struct {
	Sim         loop.Options
	Sinks       []loop.EventSink // Shared sinks; must be safe for concurrent use
	MaxSessions int
	Logger      *log.Logger
}

// Server upgrades HTTP requests to game sessions.
type Server struct {
	opts     Options
	log      *log.Logger
	upgrader websocket.Upgrader

	ctx    context.Context
	cancel context.CancelFunc
	active atomic.Int64

	mu     sync.Mutex // Guards closed and wg.Add against Close
	closed bool
	wg     sync.WaitGroup
}

// New creates a server. Call Close to end every running session.
func New(opts Options) *Server {
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		opts: opts,
		log:  opts.Logger.WithPrefix("ws"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16384,
			CheckOrigin:     sameOrigin,
		},
		ctx:    ctx,
		cancel: cancel,
	}
}

// sameOrigin accepts non-browser clients and same-host browser pages.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Active returns the number of running sessions.
func (s *Server) Active() int {
	return int(s.active.Load())
}

// ServeHTTP upgrades the request and runs a session until it ends.
// The query parameter enc=json selects text frames; msgpack is the default.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.track() {
		http.Error(w, "server shutting down", http.StatusServiceUnavailable)
		return
	}
	defer s.wg.Done()

	if n := s.active.Add(1); n > int64(s.opts.MaxSessions) {
		s.active.Add(-1)
		http.Error(w, "too many sessions", http.StatusServiceUnavailable)
		return
	}
	defer s.active.Add(-1)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", "err", err)
		return
	}

	ip := remoteIP(r)
	logger := s.opts.Logger.With("remote", ip)
	sess := newSession(conn, encodingFromQuery(r.URL.Query()), logger.WithPrefix("ws"))

	simOpts := s.opts.Sim
	simOpts.Logger = logger
	sinks := make([]loop.EventSink, 0, len(s.opts.Sinks)+1)
	sinks = append(sinks, s.opts.Sinks...)
	sinks = append(sinks, sess)
	sess.driver = loop.NewDriver(loop.New(simOpts), sinks...)

	logger.Info("session started", "enc", sess.enc, "active", s.Active())
	start := time.Now()

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	go sess.writePump()
	go sess.readPump(cancel)

	err = sess.driver.Run(ctx, sess, sess)
	close(sess.send)

	if err != nil && ctx.Err() == nil {
		logger.Warn("session ended", "err", err, "duration", time.Since(start).Round(time.Second))
		return
	}
	logger.Info("session ended", "duration", time.Since(start).Round(time.Second),
		"score", sess.driver.Sim().Player().Score)
}

// track registers a request with the shutdown wait group. It reports false
// once Close has been called.
func (s *Server) track() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.wg.Add(1)
	return true
}

// Close ends every running session and waits for their drivers to return.
// Requests arriving afterwards are refused.
func (s *Server) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}
