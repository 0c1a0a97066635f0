package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/skip2/go-qrcode"

	"github.com/tomz197/unicorns/internal/config"
	"github.com/tomz197/unicorns/internal/loop"
	"github.com/tomz197/unicorns/internal/loop/server"
)

//go:embed index.html
var htmlPage []byte

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := settings.NewLogger(os.Stderr)

	games := server.New(server.Options{
		Sim: loop.Options{
			StageLength: settings.StageLength,
			Seed:        settings.Seed,
			MaxStep:     settings.MaxStep,
		},
		Logger: logger,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(settings.WebHost, settings.WebPort),
		Handler:           routes(games),
		ReadHeaderTimeout: 5 * time.Second,
	}

	publicURL := settings.WebPublicURL
	if publicURL == "" {
		publicURL = "http://" + srv.Addr
	}
	printQR(logger, publicURL)

	go func() {
		logger.Info("starting web server", "addr", srv.Addr, "url", publicURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
	// Upgraded connections are not tracked by http.Server.
	games.Close()
}

func routes(games *server.Server) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(htmlPage)
	})
	mux.Handle("/ws", games)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "ok %d\n", games.Active())
	})
	return mux
}

// printQR writes a scannable QR code of the public URL to stderr.
func printQR(logger *log.Logger, url string) {
	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		logger.Warn("qr code", "err", err)
		return
	}
	fmt.Fprintln(os.Stderr, qr.ToSmallString(false))
}
