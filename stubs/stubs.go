package stubs

import "github.com/serpiente/conway/util"

var Evolve = "Engine.Evolve"
var AliveCells = "Engine.AliveCells"

// Request asks the server to advance a world. Cells holds the liveness of
// every cell in row-major order.
type Request struct {
	Width   int
	Height  int
	Cells   []bool
	Turns   int
	Threads int
}

type Response struct {
	Cells          []bool
	Alive          []util.Point
	CompletedTurns int
}

type AliveResponse struct {
	CellsCount     int
	CompletedTurns int
}
