package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/unicorns/internal/audio"
	"github.com/tomz197/unicorns/internal/config"
	"github.com/tomz197/unicorns/internal/loop"
	"github.com/tomz197/unicorns/internal/loop/client"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the game; logs go to LOG_FILE when set.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := settings.NewLogger(logOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sinks []loop.EventSink
	if settings.Audio {
		var out audio.Output = audio.Mute{}
		if spk, err := audio.NewSpeaker(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer spk.Close()
			out = spk
		}
		sink := audio.NewSink(out, logger)
		go sink.Run(ctx)
		sinks = append(sinks, sink)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	c := client.New(bufio.NewReader(os.Stdin), os.Stdout, client.Options{
		Sim: loop.Options{
			StageLength: settings.StageLength,
			Seed:        settings.Seed,
			MaxStep:     settings.MaxStep,
			Logger:      logger,
		},
		Sinks:  sinks,
		Logger: logger,
	})
	if err := c.Run(ctx); err != nil {
		_ = term.Restore(fd, oldState)
		logger.Error("game error", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("bye", "score", c.Driver().Sim().Player().Score)
}
