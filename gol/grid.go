package gol

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/serpiente/conway/util"
)

// ErrInvalidSize is returned when a grid is asked for negative dimensions
// or for more cells than an int can index.
var ErrInvalidSize = errors.New("invalid grid size")

var offsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is a bounded Game of Life board. Cells are stored row-major: the
// cell at (x, y) lives at index y*width + x. Cells beyond the edges are
// permanently dead; nothing wraps.
type Grid struct {
	width   int
	height  int
	threads int
	cells   []Cell
	next    []bool // phase A scratch, only touched inside Update
}

// Option configures a Grid at construction.
type Option func(*Grid)

// WithThreads sets how many workers share phase A of Update. Values below
// one fall back to GOMAXPROCS.
func WithThreads(n int) Option {
	return func(g *Grid) {
		g.threads = n
	}
}

// NewGrid builds a width x height grid, drawing each cell's initial
// liveness from seed in index order.
func NewGrid(width, height int, seed Seed, opts ...Option) (*Grid, error) {
	if width < 0 || height < 0 || (height != 0 && width > math.MaxInt/height) {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, 0, width*height),
		next:   make([]bool, width*height),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.threads < 1 {
		g.threads = runtime.GOMAXPROCS(0)
	}
	if len(g.next) == 0 {
		return g, nil
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alive, err := seed.Next()
			if err != nil {
				return nil, fmt.Errorf("seeding cell (%d, %d): %w", x, y, err)
			}
			g.cells = append(g.cells, NewCell(alive, x, y))
		}
	}
	return g, nil
}

func (g *Grid) Width() int   { return g.width }
func (g *Grid) Height() int  { return g.height }
func (g *Grid) Len() int     { return len(g.cells) }
func (g *Grid) Threads() int { return g.threads }

// PointFromIndex maps a cell index to its coordinates.
func (g *Grid) PointFromIndex(i int) (util.Point, bool) {
	if i < 0 || i >= len(g.cells) {
		return util.Point{}, false
	}
	return util.Point{X: i % g.width, Y: i / g.width}, true
}

// IndexFromPoint maps coordinates to a cell index.
func (g *Grid) IndexFromPoint(p util.Point) (int, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= g.width || p.Y >= g.height {
		return 0, false
	}
	return p.Y*g.width + p.X, true
}

// Get returns a copy of the cell at p.
func (g *Grid) Get(p util.Point) (Cell, bool) {
	i, ok := g.IndexFromPoint(p)
	if !ok {
		return Cell{}, false
	}
	return g.cells[i], true
}

// neighbourIndex resolves the index of the cell offset by (dx, dy) from c.
func (g *Grid) neighbourIndex(c Cell, dx, dy int) (int, bool) {
	p, err := util.PointFromSigned(c.X+dx, c.Y+dy)
	if err != nil {
		return 0, false
	}
	return g.IndexFromPoint(p)
}

// Neighbours returns the in-range Moore neighbourhood of c.
func (g *Grid) Neighbours(c Cell) []Cell {
	neighbours := make([]Cell, 0, len(offsets))
	for _, o := range offsets {
		if i, ok := g.neighbourIndex(c, o[0], o[1]); ok {
			neighbours = append(neighbours, g.cells[i])
		}
	}
	return neighbours
}

// AliveNeighbours counts the live cells in the neighbourhood of c.
func (g *Grid) AliveNeighbours(c Cell) int {
	n := 0
	for _, o := range offsets {
		if i, ok := g.neighbourIndex(c, o[0], o[1]); ok && g.cells[i].alive {
			n++
		}
	}
	return n
}

// Update advances the grid one generation. Every next state is computed
// from the current generation before any cell is written.
func (g *Grid) Update() {
	if len(g.cells) == 0 {
		return
	}
	g.computeNext()
	for i := range g.cells {
		g.cells[i].alive = g.next[i]
	}
}

// Cells returns a copy of every cell in index order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return cells
}

// Each calls fn for every cell in index order.
func (g *Grid) Each(fn func(i int, c Cell)) {
	for i, c := range g.cells {
		fn(i, c)
	}
}

func (g *Grid) AliveCount() int {
	n := 0
	for _, c := range g.cells {
		if c.alive {
			n++
		}
	}
	return n
}

// AlivePoints lists the coordinates of live cells in index order.
func (g *Grid) AlivePoints() []util.Point {
	points := make([]util.Point, 0)
	for _, c := range g.cells {
		if c.alive {
			points = append(points, c.Point())
		}
	}
	return points
}
