// Package view keeps the host-side picture of a running simulation,
// built purely from the events the distributor sends.
package view

import (
	"fmt"

	"github.com/serpiente/conway/gol"
	"github.com/serpiente/conway/util"
)

type View struct {
	Board *util.Board
	Turn  int
	Alive int
	State gol.State
	Done  bool
}

func New(width, height int) *View {
	return &View{Board: util.NewBoard(width, height), State: gol.Executing}
}

// Apply folds one event into the view and reports whether a frame is
// ready to be drawn.
func (v *View) Apply(event gol.Event) (bool, error) {
	v.Turn = event.GetCompletedTurns()
	switch e := event.(type) {
	case gol.CellsFlipped:
		v.Board.FlipAll(e.Cells)
	case gol.TurnComplete:
		v.Alive = v.Board.Count()
		return true, nil
	case gol.AliveCellsCount:
		v.Alive = e.CellsCount
	case gol.StateChange:
		v.State = e.NewState
		return true, nil
	case gol.FinalTurnComplete:
		v.Alive = len(e.Alive)
		v.Done = true
		return true, nil
	case gol.ErrorEvent:
		v.Done = true
		return false, e.Err
	}
	return false, nil
}

// Status is a one-line summary for a heads-up display.
func (v *View) Status() string {
	return fmt.Sprintf("Turn %d  Alive %d  %v", v.Turn, v.Alive, v.State)
}
