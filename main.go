package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/jtestard/classic-pong/display"
	"github.com/jtestard/classic-pong/pong"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
	})

	logger.Info("bootstrapping new game...")
	g := pong.NewGame(pong.WithLogger(logger))

	w, err := display.NewWindow(g, logger)
	if err != nil {
		logger.Fatal("failed to create window", "err", err)
	}

	logger.Info("starting the game...", "keys", "left Q/A, right P/L, Esc quits")
	if err := w.Run(); err != nil {
		logger.Fatal("game error", "err", err)
	}
	logger.Info("window closed", "left", g.Match().LeftScore, "right", g.Match().RightScore)
}
