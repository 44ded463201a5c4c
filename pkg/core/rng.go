package core

import (
	"math/rand/v2"

	"squares/pkg/lattice"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Between returns a random int in [lo, hi].
func (r *RNG) Between(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.IntN(hi-lo+1)
}

// ScatterCells draws n distinct cells with |x| <= radius and |y| <= radius.
// The result is capped at the number of cells the square can hold and is in
// draw order, so the same seed always yields the same slice.
func ScatterCells(r *RNG, n, radius int) []lattice.Cell {
	if n <= 0 || radius < 0 {
		return nil
	}
	side := 2*radius + 1
	if capacity := side * side; n > capacity {
		n = capacity
	}
	seen := make(lattice.Set, n)
	out := make([]lattice.Cell, 0, n)
	for len(out) < n {
		c := lattice.C(r.Between(-radius, radius), r.Between(-radius, radius))
		if seen.Has(c) {
			continue
		}
		seen.Add(c)
		out = append(out, c)
	}
	return out
}
