package lattice

import "slices"

// Set is a hashed collection of cells.
type Set map[Cell]struct{}

// NewSet returns a set holding the given cells. Duplicates collapse.
func NewSet(cells ...Cell) Set {
	s := make(Set, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts c.
func (s Set) Add(c Cell) { s[c] = struct{}{} }

// Remove deletes c if present.
func (s Set) Remove(c Cell) { delete(s, c) }

// Has reports membership.
func (s Set) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of cells in the set.
func (s Set) Len() int { return len(s) }

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Union adds every cell of o into s.
func (s Set) Union(o Set) {
	for c := range o {
		s[c] = struct{}{}
	}
}

// Equal reports whether both sets hold exactly the same cells.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for c := range s {
		if _, ok := o[c]; !ok {
			return false
		}
	}
	return true
}

// Intersects reports whether any cell is in both sets.
func (s Set) Intersects(o Set) bool {
	small, big := s, o
	if len(big) < len(small) {
		small, big = big, small
	}
	for c := range small {
		if _, ok := big[c]; ok {
			return true
		}
	}
	return false
}

// Sorted returns the cells ordered by Cell.Less.
func (s Set) Sorted() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Cell) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}

// Map returns a new set with f applied to every cell.
func (s Set) Map(f func(Cell) Cell) Set {
	out := make(Set, len(s))
	for c := range s {
		out[f(c)] = struct{}{}
	}
	return out
}
