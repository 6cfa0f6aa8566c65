package util

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a coordinate falls outside the grid.
var ErrOutOfRange = errors.New("coordinate out of range")

// Point is a cell coordinate. X grows to the right and Y grows downwards.
type Point struct {
	X int
	Y int
}

// NewPoint builds a Point from a non-negative pair.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// PointFromSigned builds a Point from a signed pair, failing with
// ErrOutOfRange when either component is negative.
func PointFromSigned(sx, sy int) (Point, error) {
	if sx < 0 || sy < 0 {
		return Point{}, fmt.Errorf("point (%d, %d): %w", sx, sy, ErrOutOfRange)
	}
	return Point{X: sx, Y: sy}, nil
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
