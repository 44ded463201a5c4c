// Package sweep runs many random seeds through both the incremental grid and
// the full-rescan baseline and reports where they disagree.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	pcore "squares/pkg/core"
	"squares/pkg/lattice"
	"squares/pkg/sims/squares"
)

// Options controls a sweep.
type Options struct {
	Scenarios int
	Steps     int
	Cells     int
	Radius    int
	BaseSeed  int64
	Workers   int
}

// DefaultOptions returns a sweep small enough to run in a few seconds.
func DefaultOptions() Options {
	return Options{
		Scenarios: 64,
		Steps:     40,
		Cells:     10,
		Radius:    4,
		BaseSeed:  1337,
		Workers:   runtime.NumCPU(),
	}
}

// Scenario is one random seed.
type Scenario struct {
	Index int
	Seed  int64
	Cells []lattice.Cell
}

// Result holds the outcome of one scenario.
type Result struct {
	Scenario Scenario

	Counts     []int
	Final      int
	GrowthRate float64

	Agree    bool
	Mismatch string

	Incremental time.Duration
	Naive       time.Duration
}

// Scenarios derives the seeds for opts. Scenario i uses RNG seed BaseSeed+i.
func Scenarios(opts Options) []Scenario {
	out := make([]Scenario, 0, max(opts.Scenarios, 0))
	for i := 0; i < opts.Scenarios; i++ {
		seed := opts.BaseSeed + int64(i)
		out = append(out, Scenario{
			Index: i,
			Seed:  seed,
			Cells: pcore.ScatterCells(pcore.NewRNG(seed), opts.Cells, opts.Radius),
		})
	}
	return out
}

// Evaluate steps both simulations side by side and stops at the first
// disagreement.
func Evaluate(sc Scenario, steps int) Result {
	res := Result{Scenario: sc, Agree: true, Counts: make([]int, 0, steps)}
	grid := squares.New(sc.Cells)
	naive := squares.NewNaive(sc.Cells)
	initial := grid.Population()

	for step := 1; step <= steps; step++ {
		t0 := time.Now()
		grid.Advance()
		t1 := time.Now()
		naive.Step()
		res.Incremental += t1.Sub(t0)
		res.Naive += time.Since(t1)

		res.Counts = append(res.Counts, grid.Population())
		if err := grid.CheckInvariants(); err != nil {
			res.Agree = false
			res.Mismatch = fmt.Sprintf("step %d: %v", step, err)
			break
		}
		if grid.Population() != naive.Population() || !grid.Shaded().Equal(naive.Shaded()) {
			res.Agree = false
			res.Mismatch = fmt.Sprintf("step %d: incremental %d shaded, naive %d", step, grid.Population(), naive.Population())
			break
		}
	}

	res.Final = grid.Population()
	if n := len(res.Counts); n > 0 {
		res.GrowthRate = float64(res.Final-initial) / float64(n)
	}
	return res
}

// Run evaluates every scenario on a bounded pool of goroutines. Results are
// returned in scenario order.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Steps < 0 {
		return nil, fmt.Errorf("%w: got %d", squares.ErrInvalidIterations, opts.Steps)
	}
	scenarios := Scenarios(opts)
	results := make([]Result, len(scenarios))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(opts.Workers, 1))
	for i, sc := range scenarios {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Evaluate(sc, opts.Steps)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summary aggregates final populations and growth rates across a sweep.
type Summary struct {
	Scenarios     int
	Disagreements int

	MeanFinal   float64
	StdFinal    float64
	MedianFinal float64
	MinFinal    float64
	MaxFinal    float64
	MeanGrowth  float64

	Speedup float64
}

// Summarize computes sweep statistics. Speedup is total naive time over
// total incremental time, or 0 when nothing was timed.
func Summarize(results []Result) Summary {
	s := Summary{Scenarios: len(results)}
	if len(results) == 0 {
		return s
	}

	finals := make([]float64, len(results))
	growth := make([]float64, len(results))
	var inc, naive time.Duration
	for i, r := range results {
		finals[i] = float64(r.Final)
		growth[i] = r.GrowthRate
		if !r.Agree {
			s.Disagreements++
		}
		inc += r.Incremental
		naive += r.Naive
	}

	s.MeanFinal = stat.Mean(finals, nil)
	if len(finals) > 1 {
		s.StdFinal = stat.StdDev(finals, nil)
	}
	s.MinFinal = floats.Min(finals)
	s.MaxFinal = floats.Max(finals)
	sorted := append([]float64(nil), finals...)
	sort.Float64s(sorted)
	s.MedianFinal = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.MeanGrowth = stat.Mean(growth, nil)
	if inc > 0 {
		s.Speedup = float64(naive) / float64(inc)
	}
	return s
}
