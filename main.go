package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/serpiente/conway/config"
	"github.com/serpiente/conway/gol"
	"github.com/serpiente/conway/gui"
	"github.com/serpiente/conway/sdl"
	"github.com/serpiente/conway/term"
)

var logger = log.New(log.Writer(), "conway: ", log.LstdFlags)

// Windowing hosts must own the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.FromArgs(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	logger.Printf("Threads: %v, Width: %v, Height: %v, Host: %v", cfg.Threads, cfg.Width, cfg.Height, cfg.Host)

	keyPresses := make(chan rune, 10)
	events := make(chan gol.Event, 1000)
	gol.Run(cfg.Params(), events, keyPresses)

	switch cfg.Host {
	case config.HostSDL:
		err = sdl.Run(cfg, events, keyPresses)
	case config.HostEbiten:
		err = gui.Run(cfg, events, keyPresses)
	case config.HostTerm:
		err = term.Run(cfg, events, keyPresses)
	default:
		err = headless(events, keyPresses)
	}
	if err != nil {
		logger.Fatalf("%s host: %v", cfg.Host, err)
	}
}

// headless drains events without drawing, logging progress as it goes.
// An interrupt asks the distributor to quit so the final turn is still
// reported.
func headless(events <-chan gol.Event, keyPresses chan<- rune) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-sigChan:
			select {
			case keyPresses <- 'q':
			case <-done:
			}
		case <-done:
		}
	}()

	for event := range events {
		switch e := event.(type) {
		case gol.ErrorEvent:
			return e.Err
		case gol.AliveCellsCount, gol.StateChange:
			logger.Printf("Completed Turns %-8v%v", event.GetCompletedTurns(), event)
		case gol.FinalTurnComplete:
			logger.Printf("Completed Turns %-8v%v", e.CompletedTurns, e)
		}
	}
	return nil
}
