package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/unicorns/internal/config"
	"github.com/tomz197/unicorns/internal/draw"
	"github.com/tomz197/unicorns/internal/loop"
	"github.com/tomz197/unicorns/internal/loop/client"
)

const (
	idleTimeout     = 5 * time.Minute
	shutdownTimeout = 15 * time.Second
)

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := settings.NewLogger(os.Stderr)

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("ssh config", "host", settings.SSHHost, "port", settings.SSHPort,
		"hostKey", settings.SSHHostKey, "workingDir", workingDir)

	// Cancelled on shutdown; every game session derives from it.
	rootCtx, cancelSessions := context.WithCancel(context.Background())
	defer cancelSessions()
	games := &gameHandler{
		ctx:      rootCtx,
		settings: settings,
		log:      logger,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(settings.SSHHost, settings.SSHPort)),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if settings.SSHHostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.SSHHostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", net.JoinHostPort(settings.SSHHost, settings.SSHPort))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	// End running games first so players get a clean terminal back.
	cancelSessions()
	if !games.wait(shutdownTimeout) {
		logger.Warn("sessions still running after timeout", "timeout", shutdownTimeout)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameHandler runs one private game per SSH session.
type gameHandler struct {
	ctx      context.Context
	settings config.Settings
	log      *log.Logger
	wg       sync.WaitGroup
}

func (g *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}
		if g.ctx.Err() != nil {
			fmt.Fprintln(sess, "Server is shutting down, try again later.")
			return
		}

		g.wg.Add(1)
		defer g.wg.Done()

		logger := g.log.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("new game session", "term", pty.Term, "size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(sess.Context())
		defer cancel()
		stop := context.AfterFunc(g.ctx, cancel)
		defer stop()

		c := client.New(bufio.NewReader(sess), sess, client.Options{
			TermSizeFunc: sizeTracker.getSize,
			Sim: loop.Options{
				StageLength: g.settings.StageLength,
				Seed:        g.settings.Seed,
				MaxStep:     g.settings.MaxStep,
			},
			IdleTimeout: idleTimeout,
			Logger:      logger,
		})
		err := c.Run(ctx)
		switch {
		case errors.Is(err, client.ErrIdle):
			fmt.Fprintln(sess, "Disconnected for inactivity.")
		case err != nil:
			logger.Error("game error", "err", err)
		}
		if g.ctx.Err() != nil {
			fmt.Fprintln(sess, "Server is shutting down. Thanks for playing!")
		}

		logger.Info("session ended", "score", c.Driver().Sim().Player().Score,
			"resets", c.Driver().Sim().Sessions(), "faults", c.Driver().Faults())
		next(sess)
	}
}

// wait blocks until every session has ended or the timeout passes.
func (g *gameHandler) wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
