package squares

import (
	"errors"
	"fmt"
)

// ErrInvariant reports a grid whose frontier disagrees with a full recomputation.
var ErrInvariant = errors.New("grid invariant violated")

// CheckInvariants verifies that the frontier holds no shaded cell and equals
// the frontier recomputed from scratch. Cells named in the error are the
// smallest offenders so failures are reproducible.
func (g *Grid) CheckInvariants() error {
	if g.frontier.Intersects(g.shaded) {
		for _, c := range g.frontier.Sorted() {
			if g.shaded.Has(c) {
				return fmt.Errorf("%w: frontier cell %v is shaded (generation %d)", ErrInvariant, c, g.gen)
			}
		}
	}

	want := NaiveFrontier(g.shaded)
	for _, c := range want.Sorted() {
		if !g.frontier.Has(c) {
			return fmt.Errorf("%w: frontier is missing %v (generation %d)", ErrInvariant, c, g.gen)
		}
	}
	for _, c := range g.frontier.Sorted() {
		if !want.Has(c) {
			return fmt.Errorf("%w: frontier holds stale cell %v (generation %d)", ErrInvariant, c, g.gen)
		}
	}
	return nil
}
