package squares

import (
	"strconv"

	"squares/pkg/lattice"
)

// Threshold is the number of shaded Moore neighbors that promotes a cell.
const Threshold = 3

// Rule decides whether an unshaded cell becomes shaded given the current
// shaded set. Rules must only read shaded.
type Rule func(c lattice.Cell, shaded lattice.Set) bool

// DefaultRule shades a cell once Threshold of its neighbors are shaded.
var DefaultRule = AtLeast(Threshold)

// AtLeast returns a rule that promotes cells with k or more shaded neighbors.
func AtLeast(k int) Rule {
	return func(c lattice.Cell, shaded lattice.Set) bool {
		return ShadedNeighbors(c, shaded) >= k
	}
}

// IsPromotable applies DefaultRule.
func IsPromotable(c lattice.Cell, shaded lattice.Set) bool {
	return DefaultRule(c, shaded)
}

// ShadedNeighbors counts the members of shaded around c.
func ShadedNeighbors(c lattice.Cell, shaded lattice.Set) int {
	n := 0
	for _, nb := range c.Neighbors() {
		if shaded.Has(nb) {
			n++
		}
	}
	return n
}

func thresholdName(k int) string { return "at-least-" + strconv.Itoa(k) }
