package view

import (
	"errors"
	"testing"

	"github.com/serpiente/conway/gol"
	"github.com/serpiente/conway/util"
)

func TestApply(t *testing.T) {
	t.Parallel()
	v := New(4, 4)

	steps := []struct {
		event      gol.Event
		wantRedraw bool
	}{
		{gol.StateChange{CompletedTurns: 0, NewState: gol.Executing}, true},
		{gol.CellsFlipped{CompletedTurns: 0, Cells: []util.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}}, false},
		{gol.TurnComplete{CompletedTurns: 0}, true},
		{gol.CellsFlipped{CompletedTurns: 1, Cells: []util.Point{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 0}, {X: 2, Y: 2}}}, false},
		{gol.TurnComplete{CompletedTurns: 1}, true},
		{gol.AliveCellsCount{CompletedTurns: 1, CellsCount: 3}, false},
	}
	for i, s := range steps {
		redraw, err := v.Apply(s.event)
		if err != nil {
			t.Fatalf("step %d: Apply(%v) error: %v", i, s.event, err)
		}
		if redraw != s.wantRedraw {
			t.Errorf("step %d: Apply(%T) redraw = %v, want %v", i, s.event, redraw, s.wantRedraw)
		}
	}

	for _, p := range []util.Point{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}} {
		if !v.Board.Alive(p) {
			t.Errorf("expected %v alive", p)
		}
	}
	if v.Alive != 3 || v.Turn != 1 {
		t.Errorf("Alive = %d, Turn = %d, want 3 and 1", v.Alive, v.Turn)
	}
	if got, want := v.Status(), "Turn 1  Alive 3  Executing"; got != want {
		t.Errorf("Status() = %q, want %q", got, want)
	}

	if _, err := v.Apply(gol.FinalTurnComplete{CompletedTurns: 5, Alive: make([]util.Point, 2)}); err != nil {
		t.Fatal(err)
	}
	if !v.Done || v.Alive != 2 || v.Turn != 5 {
		t.Errorf("after final: Done = %v, Alive = %d, Turn = %d", v.Done, v.Alive, v.Turn)
	}
}

func TestApplyError(t *testing.T) {
	t.Parallel()
	v := New(2, 2)
	boom := errors.New("boom")
	if _, err := v.Apply(gol.ErrorEvent{Err: boom}); !errors.Is(err, boom) {
		t.Errorf("Apply(ErrorEvent) error = %v, want %v", err, boom)
	}
	if !v.Done {
		t.Error("expected view to be done after an error")
	}
}
