package gol

import "github.com/serpiente/conway/util"

// Cell is a single automaton cell. It keeps its home coordinates for its
// whole life; only the liveness changes between generations.
type Cell struct {
	X     int
	Y     int
	alive bool
}

func NewCell(alive bool, x, y int) Cell {
	return Cell{X: x, Y: y, alive: alive}
}

func (c Cell) IsAlive() bool {
	return c.alive
}

func (c *Cell) SetAlive(alive bool) {
	c.alive = alive
}

func (c Cell) Point() util.Point {
	return util.Point{X: c.X, Y: c.Y}
}

// NextState applies B3/S23: a live cell survives with 2 or 3 live
// neighbours, a dead cell is born with exactly 3.
func (c Cell) NextState(neighbours int) bool {
	if c.alive {
		return neighbours == 2 || neighbours == 3
	}
	return neighbours == 3
}
