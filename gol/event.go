package gol

import (
	"fmt"

	"github.com/serpiente/conway/util"
)

// Event represents any Game of Life event that needs to be communicated
// to the host.
type Event interface {
	fmt.Stringer

	// GetCompletedTurns returns the number of generations completed when
	// the event was sent.
	GetCompletedTurns() int
}

// State represents a change in the state of execution.
type State int

const (
	Paused State = iota
	Executing
	Quitting
)

func (s State) String() string {
	switch s {
	case Paused:
		return "Paused"
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

// StateChange is sent whenever the simulation pauses, resumes or quits.
type StateChange struct {
	CompletedTurns int
	NewState       State
}

// AliveCellsCount is sent every two seconds while the simulation runs.
type AliveCellsCount struct {
	CompletedTurns int
	CellsCount     int
}

// CellsFlipped lists every cell whose liveness changed since the previous
// frame. The first frame lists every live cell.
type CellsFlipped struct {
	CompletedTurns int
	Cells          []util.Point
}

// TurnComplete marks the end of a frame; hosts redraw on receiving it.
type TurnComplete struct {
	CompletedTurns int
}

// FinalTurnComplete is sent once the run ends, with the live cells of the
// last generation.
type FinalTurnComplete struct {
	CompletedTurns int
	Alive          []util.Point
}

// ErrorEvent reports a world that could not be built.
type ErrorEvent struct {
	Err error
}

func (e StateChange) String() string {
	return fmt.Sprintf("%v", e.NewState)
}

func (e StateChange) GetCompletedTurns() int {
	return e.CompletedTurns
}

func (e AliveCellsCount) String() string {
	return fmt.Sprintf("Alive Cells %v", e.CellsCount)
}

func (e AliveCellsCount) GetCompletedTurns() int {
	return e.CompletedTurns
}

func (e CellsFlipped) String() string {
	return fmt.Sprintf("%d cells flipped", len(e.Cells))
}

func (e CellsFlipped) GetCompletedTurns() int {
	return e.CompletedTurns
}

func (e TurnComplete) String() string {
	return ""
}

func (e TurnComplete) GetCompletedTurns() int {
	return e.CompletedTurns
}

func (e FinalTurnComplete) String() string {
	return fmt.Sprintf("Final turn %d, %d alive", e.CompletedTurns, len(e.Alive))
}

func (e FinalTurnComplete) GetCompletedTurns() int {
	return e.CompletedTurns
}

func (e ErrorEvent) String() string {
	return e.Err.Error()
}

func (e ErrorEvent) GetCompletedTurns() int {
	return 0
}
