package squares

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	pcore "squares/pkg/core"
	"squares/pkg/lattice"
)

// plusCounts are the populations after steps 1..12 from DefaultSeed.
var plusCounts = []int{9, 13, 21, 29, 37, 49, 61, 73, 89, 105, 121, 141}

func TestPlusSeedGolden(t *testing.T) {
	g := New(DefaultSeed())
	if g.Population() != 5 || g.Frontier().Len() != 16 {
		t.Fatalf("initial shaded=%d frontier=%d, want 5 and 16", g.Population(), g.Frontier().Len())
	}

	got, err := g.AdvanceN(len(plusCounts))
	if err != nil {
		t.Fatalf("AdvanceN: %v", err)
	}
	if diff := cmp.Diff(plusCounts, got); diff != "" {
		t.Fatalf("incremental counts mismatch (-want +got):\n%s", diff)
	}

	n := NewNaive(DefaultSeed())
	var naive []int
	for range plusCounts {
		n.Step()
		naive = append(naive, n.Population())
	}
	if diff := cmp.Diff(plusCounts, naive); diff != "" {
		t.Fatalf("naive counts mismatch (-want +got):\n%s", diff)
	}
}

func TestFirstStepPromotesDiagonals(t *testing.T) {
	g := New(DefaultSeed())
	if got := g.Advance(); got != 4 {
		t.Fatalf("first advance shaded %d cells, want 4", got)
	}
	for _, c := range []lattice.Cell{lattice.C(1, 1), lattice.C(1, -1), lattice.C(-1, 1), lattice.C(-1, -1)} {
		if !g.Shaded().Has(c) {
			t.Fatalf("expected %v to be shaded after one step", c)
		}
		if g.Frontier().Has(c) {
			t.Fatalf("promoted cell %v lingered in the frontier", c)
		}
	}
	if g.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", g.Generation())
	}
}

func TestIncrementalMatchesNaiveOnRandomSeeds(t *testing.T) {
	const steps = 25
	for seed := int64(1); seed <= 30; seed++ {
		rng := pcore.NewRNG(seed)
		cells := pcore.ScatterCells(rng, rng.Between(3, 14), 4)

		g := New(cells)
		n := NewNaive(cells)
		if err := g.CheckInvariants(); err != nil {
			t.Fatalf("seed %d: after construction: %v", seed, err)
		}
		for step := 1; step <= steps; step++ {
			before := g.Shaded().Clone()

			added := g.Advance()
			naiveAdded := n.Step()
			if added != naiveAdded {
				t.Fatalf("seed %d step %d: incremental shaded %d, naive %d", seed, step, added, naiveAdded)
			}
			if err := g.CheckInvariants(); err != nil {
				t.Fatalf("seed %d step %d: %v", seed, step, err)
			}
			if !g.Shaded().Equal(n.Shaded()) {
				t.Fatalf("seed %d step %d: shaded sets diverged", seed, step)
			}
			for c := range before {
				if !g.Shaded().Has(c) {
					t.Fatalf("seed %d step %d: %v was unshaded", seed, step, c)
				}
			}
			if g.Population() != before.Len()+added {
				t.Fatalf("seed %d step %d: population %d, want %d", seed, step, g.Population(), before.Len()+added)
			}
		}
	}
}

func TestDeterministicRuns(t *testing.T) {
	cells := pcore.ScatterCells(pcore.NewRNG(42), 10, 3)

	a := New(cells)
	b := New(cells)
	countsA, _ := a.AdvanceN(20)
	countsB, _ := b.AdvanceN(20)
	if diff := cmp.Diff(countsA, countsB); diff != "" {
		t.Fatalf("per-step counts differ between runs (-a +b):\n%s", diff)
	}
	if !a.Shaded().Equal(b.Shaded()) {
		t.Fatal("shaded sets differ between identical runs")
	}
}

func TestNoOpAdvanceLeavesStateUnchanged(t *testing.T) {
	for name, seed := range map[string][]lattice.Cell{
		"single":   {lattice.C(0, 0)},
		"pair":     {lattice.C(0, 0), lattice.C(1, 0)},
		"square":   {lattice.C(0, 0), lattice.C(1, 0), lattice.C(0, 1), lattice.C(1, 1)},
		"isolated": {lattice.C(0, 0), lattice.C(2, 0), lattice.C(4, 0)},
	} {
		g := New(seed)
		shaded := g.Shaded().Clone()
		frontier := g.Frontier().Clone()

		if got := g.Advance(); got != 0 {
			t.Fatalf("%s: advance shaded %d cells, want 0", name, got)
		}
		if !g.Shaded().Equal(shaded) || !g.Frontier().Equal(frontier) {
			t.Fatalf("%s: no-op advance changed the grid", name)
		}
		if g.Generation() != 1 {
			t.Fatalf("%s: generation = %d, want 1", name, g.Generation())
		}
	}
}

func TestSaturatesAfterCompletingSquare(t *testing.T) {
	g := New([]lattice.Cell{lattice.C(0, 0), lattice.C(1, 0), lattice.C(0, 1)})
	counts, err := g.AdvanceN(5)
	if err != nil {
		t.Fatalf("AdvanceN: %v", err)
	}
	if diff := cmp.Diff([]int{4, 4, 4, 4, 4}, counts); diff != "" {
		t.Fatalf("counts mismatch (-want +got):\n%s", diff)
	}
}

func TestSymmetryIsPreserved(t *testing.T) {
	isometries := map[string]lattice.Isometry{
		"rotate90":  lattice.Rotate90,
		"reflectX":  lattice.ReflectX,
		"reflectY":  lattice.ReflectY,
		"transpose": lattice.Transpose,
	}

	g := New(DefaultSeed())
	for step := 1; step <= 15; step++ {
		g.Advance()
		for name, f := range isometries {
			if !g.Shaded().Invariant(f) {
				t.Fatalf("step %d: shaded set lost %s symmetry", step, name)
			}
		}
	}

	// Rotating the seed rotates every later generation.
	seed := []lattice.Cell{lattice.C(0, 0), lattice.C(1, 0), lattice.C(2, 0), lattice.C(1, 1), lattice.C(3, 2), lattice.C(2, 2)}
	a := New(seed)
	b := New(lattice.NewSet(seed...).Map(lattice.Rotate90).Sorted())
	for step := 1; step <= 10; step++ {
		a.Advance()
		b.Advance()
		if !a.Shaded().Map(lattice.Rotate90).Equal(b.Shaded()) {
			t.Fatalf("step %d: rotated seed did not produce the rotated region", step)
		}
	}
}

func TestZeroIterationsKeepsSeed(t *testing.T) {
	seed := append(DefaultSeed(), lattice.C(0, 0), lattice.C(1, 0))
	g := New(seed)

	counts, err := g.AdvanceN(0)
	if err != nil {
		t.Fatalf("AdvanceN(0): %v", err)
	}
	if len(counts) != 0 {
		t.Fatalf("expected no per-step counts, got %v", counts)
	}
	if !g.Shaded().Equal(lattice.NewSet(DefaultSeed()...)) {
		t.Fatalf("shaded = %v, want deduplicated seed", g.Shaded().Sorted())
	}
	if g.Generation() != 0 {
		t.Fatalf("generation = %d, want 0", g.Generation())
	}
}

func TestNegativeIterationsRejected(t *testing.T) {
	g := New(DefaultSeed())
	if _, err := g.AdvanceN(-1); !errors.Is(err, ErrInvalidIterations) {
		t.Fatalf("expected ErrInvalidIterations, got %v", err)
	}
	if g.Generation() != 0 || g.Population() != 5 {
		t.Fatal("rejected AdvanceN must not touch the grid")
	}
}

func TestEmptySeedIsInert(t *testing.T) {
	g := New(nil)
	if g.Advance() != 0 || g.Population() != 0 || g.Frontier().Len() != 0 {
		t.Fatal("empty grid should stay empty")
	}
	if err := g.CheckInvariants(); err != nil {
		t.Fatalf("empty grid invariants: %v", err)
	}
}

func TestResetRestartsFromSeed(t *testing.T) {
	g := New(DefaultSeed())
	g.AdvanceN(6)
	g.Reset([]lattice.Cell{lattice.C(5, 5)})
	if g.Population() != 1 || g.Generation() != 0 || g.Frontier().Len() != 8 {
		t.Fatalf("after reset shaded=%d gen=%d frontier=%d", g.Population(), g.Generation(), g.Frontier().Len())
	}
}

func TestParallelScanMatchesSequential(t *testing.T) {
	saved := parallelCutoff
	parallelCutoff = 1
	defer func() { parallelCutoff = saved }()

	cells := pcore.ScatterCells(pcore.NewRNG(5), 12, 4)
	seq := New(cells)
	par := New(cells, WithWorkers(4))
	for step := 1; step <= 20; step++ {
		if a, b := seq.Advance(), par.Advance(); a != b {
			t.Fatalf("step %d: sequential shaded %d, parallel %d", step, a, b)
		}
		if !seq.Shaded().Equal(par.Shaded()) || !seq.Frontier().Equal(par.Frontier()) {
			t.Fatalf("step %d: parallel scan diverged", step)
		}
	}
}

func TestCheckInvariantsDetectsCorruption(t *testing.T) {
	g := New(DefaultSeed())
	g.Advance()

	stale := New(DefaultSeed())
	stale.Advance()
	stale.frontier.Add(lattice.C(40, 40))
	if err := stale.CheckInvariants(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected stale cell to be reported, got %v", err)
	}

	missing := New(DefaultSeed())
	missing.Advance()
	missing.frontier.Remove(lattice.C(0, 2))
	if err := missing.CheckInvariants(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected missing cell to be reported, got %v", err)
	}

	overlap := New(DefaultSeed())
	overlap.frontier.Add(lattice.C(0, 0))
	if err := overlap.CheckInvariants(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected shaded frontier cell to be reported, got %v", err)
	}

	if err := g.CheckInvariants(); err != nil {
		t.Fatalf("healthy grid reported %v", err)
	}
}

func TestCellsAtIntRangeDoNotWrap(t *testing.T) {
	seed := []lattice.Cell{
		lattice.C(math.MaxInt, 0),
		lattice.C(math.MaxInt, 1),
		lattice.C(math.MinInt, 0),
	}
	g := New(seed)
	n := NewNaive(seed)

	if got := g.Advance(); got != 0 {
		t.Fatalf("advance shaded %d cells across the int range, want 0: %v", got, g.Shaded().Sorted())
	}
	if got := n.Step(); got != 0 {
		t.Fatalf("naive step shaded %d cells across the int range, want 0", got)
	}
	if g.Frontier().Has(lattice.C(math.MinInt, 1)) {
		t.Fatal("frontier reached around from math.MaxInt to math.MinInt")
	}
	if err := g.CheckInvariants(); err != nil {
		t.Fatalf("edge grid invariants: %v", err)
	}

	// Growth still works right up against the edge.
	corner := []lattice.Cell{
		lattice.C(math.MaxInt, math.MaxInt),
		lattice.C(math.MaxInt-1, math.MaxInt),
		lattice.C(math.MaxInt, math.MaxInt-1),
	}
	g = New(corner)
	if got := g.Advance(); got != 1 || !g.Shaded().Has(lattice.C(math.MaxInt-1, math.MaxInt-1)) {
		t.Fatalf("corner advance shaded %d cells: %v", got, g.Shaded().Sorted())
	}
	if err := g.CheckInvariants(); err != nil {
		t.Fatalf("corner grid invariants: %v", err)
	}
}
