package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/jtestard/classic-pong/pong"
	"github.com/jtestard/classic-pong/terminal"
	"golang.org/x/term"
)

func main() {
	// The terminal is owned by the game while it runs; log lines are held
	// back and printed once it has been restored.
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{
		ReportTimestamp: true,
		Prefix:          "pongterm",
	})

	err := run(logger)
	if err != nil {
		logger.Error("game error", "err", err)
	}
	_, _ = os.Stderr.Write(logs.Bytes())
	if err != nil {
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := pong.NewGame(pong.WithLogger(logger))
	t, err := terminal.New(os.Stdin, os.Stdout, terminal.FdSize(int(os.Stdout.Fd())), g.Rules().Field)
	if err != nil {
		return err
	}

	t.Start()
	defer t.Stop()

	logger.Info("starting the game...")
	err = pong.Run(ctx, g, t)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	if err == nil {
		logger.Info("game closed", "left", g.Match().LeftScore, "right", g.Match().RightScore)
	}
	return err
}
