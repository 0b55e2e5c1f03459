package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/otov4its/pysnake/game"
	"github.com/otov4its/pysnake/screen"
)

const version = "1.0"

func main() {
	configureConsole()
	stats, err := run(game.ConfigPath())
	if err != nil {
		color.Red("snake: %v", err)
		pauseBeforeExit()
		os.Exit(1)
	}
	printSummary(stats)
}

func run(configPath string) (game.Stats, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return game.Stats{}, errors.New("stdin and stdout must be a terminal")
	}

	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		return game.Stats{}, err
	}

	logger, closeLog, err := openLog(cfg.Log.File)
	if err != nil {
		return game.Stats{}, err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setTerminalTitle("Snake")
	scr, err := screen.New()
	if err != nil {
		return game.Stats{}, fmt.Errorf("open terminal: %w", err)
	}

	g, err := game.New(scr, cfg, game.WithLogger(logger))
	if err != nil {
		scr.Close()
		return game.Stats{}, err
	}
	logger.Printf("snake %s started, config %s", version, configPath)

	err = g.Run(ctx)
	scr.Close()
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Printf("stopped: %v", err)
		return g.Stats(), err
	}
	logger.Printf("session over: %+v", g.Stats())
	return g.Stats(), nil
}

// openLog appends to path, or discards everything when path is empty.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "snake ", log.LstdFlags|log.Lmicroseconds), func() { _ = f.Close() }, nil
}
