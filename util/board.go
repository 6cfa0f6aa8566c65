package util

// Board mirrors the liveness of a grid on the host side. Hosts keep one
// and apply the flipped points they receive before drawing a frame.
type Board struct {
	Width  int
	Height int
	alive  []bool
}

func NewBoard(width, height int) *Board {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Board{Width: width, Height: height, alive: make([]bool, width*height)}
}

func (b *Board) index(p Point) (int, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= b.Width || p.Y >= b.Height {
		return 0, false
	}
	return p.Y*b.Width + p.X, true
}

// Flip inverts the liveness of p. Points outside the board are ignored.
func (b *Board) Flip(p Point) {
	if i, ok := b.index(p); ok {
		b.alive[i] = !b.alive[i]
	}
}

// FlipAll flips every point in ps.
func (b *Board) FlipAll(ps []Point) {
	for _, p := range ps {
		b.Flip(p)
	}
}

func (b *Board) Alive(p Point) bool {
	i, ok := b.index(p)
	return ok && b.alive[i]
}

// Count returns the number of live points on the board.
func (b *Board) Count() int {
	n := 0
	for _, a := range b.alive {
		if a {
			n++
		}
	}
	return n
}

// Each calls fn for every live point in row-major order.
func (b *Board) Each(fn func(p Point)) {
	for i, a := range b.alive {
		if a {
			fn(Point{X: i % b.Width, Y: i / b.Width})
		}
	}
}
