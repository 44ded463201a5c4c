package squares

import (
	"squares/internal/core"
	"squares/pkg/lattice"
)

// NaiveFrontier recomputes the unshaded cells adjacent to shaded by scanning
// every shaded cell.
func NaiveFrontier(shaded lattice.Set) lattice.Set {
	out := make(lattice.Set, len(shaded)*2)
	for c := range shaded {
		for _, n := range c.Neighbors() {
			if !shaded.Has(n) {
				out.Add(n)
			}
		}
	}
	return out
}

// NaivePromotions returns the cells the rule would shade next, found by a
// full rescan of shaded.
func NaivePromotions(shaded lattice.Set, rule Rule) lattice.Set {
	if rule == nil {
		rule = DefaultRule
	}
	out := make(lattice.Set)
	for c := range NaiveFrontier(shaded) {
		if rule(c, shaded) {
			out.Add(c)
		}
	}
	return out
}

// Naive is the full-rescan baseline. Each step rebuilds the frontier from the
// whole shaded set, so its cost grows with the region rather than its edge.
type Naive struct {
	settings

	shaded lattice.Set
	gen    int
}

// NewNaive builds the baseline simulation. WithWorkers has no effect.
func NewNaive(seed []lattice.Cell, opts ...Option) *Naive {
	n := &Naive{settings: applyOptions(opts)}
	n.Reset(seed)
	return n
}

// Name returns the simulation identifier.
func (n *Naive) Name() string { return "squares-naive" }

// Reset restarts from seed.
func (n *Naive) Reset(seed []lattice.Cell) {
	n.shaded = lattice.NewSet(seed...)
	n.gen = 0
}

// Step advances one generation and returns the number of newly shaded cells.
func (n *Naive) Step() int {
	promoted := NaivePromotions(n.shaded, n.rule)
	n.shaded.Union(promoted)
	n.gen++
	return promoted.Len()
}

// Generation returns the number of completed steps.
func (n *Naive) Generation() int { return n.gen }

// Population returns the number of shaded cells.
func (n *Naive) Population() int { return n.shaded.Len() }

// Shaded exposes the shaded set. Callers must not modify it.
func (n *Naive) Shaded() lattice.Set { return n.shaded }

func init() {
	core.Register("squares-naive", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		if len(c.Seed) == 0 {
			return nil, ErrEmptySeed
		}
		return NewNaive(c.Seed), nil
	})
}
