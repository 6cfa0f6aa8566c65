package main

import (
	"errors"
	"testing"

	"github.com/serpiente/conway/gol"
)

func TestHeadless(t *testing.T) {
	p := gol.Params{
		ImageWidth:       16,
		ImageHeight:      16,
		Turns:            5,
		UpdatesPerSecond: 500,
		FrameRate:        100,
		Seed:             1,
		Density:          0.3,
	}
	events := make(chan gol.Event)
	keyPresses := make(chan rune, 1)
	gol.Run(p, events, keyPresses)

	if err := headless(events, keyPresses); err != nil {
		t.Fatalf("headless: %v", err)
	}
}

func TestHeadlessConstructionError(t *testing.T) {
	events := make(chan gol.Event)
	gol.Run(gol.Params{ImageWidth: -4, ImageHeight: 4}, events, nil)

	if err := headless(events, make(chan rune, 1)); !errors.Is(err, gol.ErrInvalidSize) {
		t.Errorf("headless error = %v, want ErrInvalidSize", err)
	}
}
