// Package lattice models cells on the unbounded integer plane.
package lattice

import (
	"fmt"
	"math"
)

// Cell identifies a unit square on the lattice by its (x, y) coordinate.
// Cells are comparable values and can be used directly as map keys.
type Cell struct {
	X int
	Y int
}

// C is shorthand for Cell{X: x, Y: y}.
func C(x, y int) Cell { return Cell{X: x, Y: y} }

// mooreOffsets lists the king-move shifts in the order N, S, E, W, NE, SE, NW, SW.
var mooreOffsets = [8][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Neighbors returns the Moore neighborhood in the order N, S, E, W, NE, SE,
// NW, SW. Shifts past math.MaxInt or math.MinInt do not wrap; they are
// left out, so cells on the edge of the int range have fewer than 8.
func (c Cell) Neighbors() []Cell {
	out := make([]Cell, 0, len(mooreOffsets))
	for _, d := range mooreOffsets {
		x, okX := shift(c.X, d[0])
		y, okY := shift(c.Y, d[1])
		if okX && okY {
			out = append(out, Cell{X: x, Y: y})
		}
	}
	return out
}

func shift(v, d int) (int, bool) {
	switch {
	case d > 0 && v == math.MaxInt:
		return 0, false
	case d < 0 && v == math.MinInt:
		return 0, false
	}
	return v + d, true
}

// Less orders cells by row, then column.
func (c Cell) Less(o Cell) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
