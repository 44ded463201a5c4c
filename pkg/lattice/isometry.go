package lattice

// Isometry maps the lattice onto itself, preserving adjacency.
type Isometry func(Cell) Cell

// Rotate90 turns a cell a quarter turn counter-clockwise about the origin.
func Rotate90(c Cell) Cell { return Cell{X: -c.Y, Y: c.X} }

// ReflectX mirrors across the x axis.
func ReflectX(c Cell) Cell { return Cell{X: c.X, Y: -c.Y} }

// ReflectY mirrors across the y axis.
func ReflectY(c Cell) Cell { return Cell{X: -c.X, Y: c.Y} }

// Transpose mirrors across the diagonal y = x.
func Transpose(c Cell) Cell { return Cell{X: c.Y, Y: c.X} }

// Invariant reports whether s maps onto itself under f.
func (s Set) Invariant(f Isometry) bool {
	return s.Equal(s.Map(f))
}
