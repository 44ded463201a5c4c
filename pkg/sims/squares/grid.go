// Package squares grows a shaded region on the unbounded lattice: an
// unshaded cell is shaded in the next generation once enough of its eight
// neighbors are shaded.
package squares

import (
	"errors"
	"fmt"
	"sync"

	"squares/internal/core"
	"squares/pkg/lattice"
)

// ErrInvalidIterations is returned for negative step counts.
var ErrInvalidIterations = errors.New("iteration count must be >= 0")

// parallelCutoff is the smallest frontier that is split across workers.
var parallelCutoff = 4096

// Grid tracks the shaded cells and the frontier around them, updating both
// incrementally so a step only touches the frontier and the cells promoted
// in that step.
//
// A Grid is owned by a single goroutine; it is not safe for concurrent use.
type Grid struct {
	settings

	shaded   lattice.Set
	frontier lattice.Set
	gen      int
	seedSize int
}

// New builds a grid from seed. Duplicate seed cells collapse; an empty seed
// gives a grid that never changes.
func New(seed []lattice.Cell, opts ...Option) *Grid {
	g := &Grid{settings: applyOptions(opts)}
	g.Reset(seed)
	return g
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "squares" }

// Reset discards all state and rebuilds the shaded set and frontier from seed.
func (g *Grid) Reset(seed []lattice.Cell) {
	g.shaded = lattice.NewSet(seed...)
	g.frontier = NaiveFrontier(g.shaded)
	g.gen = 0
	g.seedSize = g.shaded.Len()
}

// Generation returns the number of completed Advance calls.
func (g *Grid) Generation() int { return g.gen }

// Population returns the number of shaded cells.
func (g *Grid) Population() int { return g.shaded.Len() }

// Shaded exposes the shaded set. Callers must not modify it.
func (g *Grid) Shaded() lattice.Set { return g.shaded }

// Frontier exposes the unshaded cells adjacent to the shaded region.
// Callers must not modify it.
func (g *Grid) Frontier() lattice.Set { return g.frontier }

// Step advances one generation. It satisfies core.Sim.
func (g *Grid) Step() int { return g.Advance() }

// Advance moves the grid to its next generation and returns how many cells
// were shaded. Only frontier cells are tested against the rule.
func (g *Grid) Advance() int {
	promoted := g.promotions()
	g.gen++
	if len(promoted) == 0 {
		return 0
	}

	// Every promotion is decided against the old shaded set, so the sets
	// are only touched once the whole frontier has been scanned.
	for _, c := range promoted {
		g.shaded.Add(c)
		g.frontier.Remove(c)
	}
	for _, c := range promoted {
		for _, n := range c.Neighbors() {
			if !g.shaded.Has(n) {
				g.frontier.Add(n)
			}
		}
	}
	return len(promoted)
}

// AdvanceN runs n generations and returns the population after each one.
func (g *Grid) AdvanceN(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIterations, n)
	}
	counts := make([]int, 0, n)
	for i := 0; i < n; i++ {
		g.Advance()
		counts = append(counts, g.Population())
	}
	return counts, nil
}

func (g *Grid) promotions() []lattice.Cell {
	if g.workers <= 1 || len(g.frontier) < parallelCutoff {
		var out []lattice.Cell
		for c := range g.frontier {
			if g.rule(c, g.shaded) {
				out = append(out, c)
			}
		}
		return out
	}

	cells := make([]lattice.Cell, 0, len(g.frontier))
	for c := range g.frontier {
		cells = append(cells, c)
	}
	chunk := (len(cells) + g.workers - 1) / g.workers
	parts := make([][]lattice.Cell, g.workers)

	var wg sync.WaitGroup
	for w := 0; w < g.workers; w++ {
		lo := w * chunk
		if lo >= len(cells) {
			break
		}
		hi := min(lo+chunk, len(cells))
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, c := range cells[lo:hi] {
				if g.rule(c, g.shaded) {
					parts[w] = append(parts[w], c)
				}
			}
		}()
	}
	wg.Wait()

	var out []lattice.Cell
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func init() {
	core.Register("squares", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		if len(c.Seed) == 0 {
			return nil, ErrEmptySeed
		}
		return New(c.Seed, WithWorkers(c.Workers)), nil
	})
}
