package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"snake-arcade/audio"
	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/ui"

	"github.com/pkg/errors"
)

const windowTitle = "Snake"

// surface is a game.Surface that owns a window or a terminal
type surface interface {
	game.Surface
	Close()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	var (
		s         surface
		announcer io.Writer
	)
	switch cfg.Backend {
	case config.BackendTerminal:
		term, err := ui.NewTerminal(cfg.Grid())
		if err != nil {
			return err
		}
		// stdout belongs to the screen
		s, announcer = term, log.Writer()
	default:
		s, announcer = ui.NewWindow(cfg.Grid(), cfg.CellSize, windowTitle), os.Stdout
	}
	defer s.Close()

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer sound.Cleanup()

	g, err := game.NewGame(cfg, s, ui.NewClock(),
		game.WithSound(sound),
		game.WithAnnouncer(announcer),
	)
	if err != nil {
		return err
	}

	g.Run()
	return nil
}
