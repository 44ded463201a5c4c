package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"squares/internal/sweep"
	"squares/pkg/lattice"
)

func main() {
	def := sweep.DefaultOptions()
	scenarios := flag.Int("scenarios", def.Scenarios, "number of random seeds to evaluate")
	steps := flag.Int("steps", def.Steps, "iterations per seed")
	cells := flag.Int("cells", def.Cells, "cells scattered per seed")
	radius := flag.Int("radius", def.Radius, "half-width of the scatter square")
	seed := flag.Int64("seed", def.BaseSeed, "RNG seed of the first scenario")
	workers := flag.Int("workers", def.Workers, "parallel scenario evaluations")
	top := flag.Int("top", 5, "largest final regions to list")
	flag.Parse()

	opts := sweep.Options{
		Scenarios: *scenarios,
		Steps:     *steps,
		Cells:     *cells,
		Radius:    *radius,
		BaseSeed:  *seed,
		Workers:   *workers,
	}

	fmt.Printf("Sweeping %d seeds (%d workers, %d steps, %d cells within radius %d)\n",
		opts.Scenarios, opts.Workers, opts.Steps, opts.Cells, opts.Radius)

	start := time.Now()
	results, err := sweep.Run(context.Background(), opts)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	for _, r := range results {
		if !r.Agree {
			fmt.Printf("MISMATCH seed %d [%s]: %s\n", r.Scenario.Seed, lattice.FormatCells(r.Scenario.Cells), r.Mismatch)
		}
	}

	ranked := append([]sweep.Result(nil), results...)
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Final > ranked[j].Final })
	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(ranked)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(ranked) && i < *top; i++ {
		r := ranked[i]
		fmt.Printf("%2d) seed=%d final=%d growth=%.2f/step cells=%s\n",
			i+1, r.Scenario.Seed, r.Final, r.GrowthRate, lattice.FormatCells(r.Scenario.Cells))
	}

	s := sweep.Summarize(results)
	fmt.Printf("\nFinal shaded: mean %.1f sd %.1f median %.0f range [%.0f, %.0f]\n",
		s.MeanFinal, s.StdFinal, s.MedianFinal, s.MinFinal, s.MaxFinal)
	fmt.Printf("Mean growth %.2f cells/step, incremental speedup over rescan %.1fx\n", s.MeanGrowth, s.Speedup)
	fmt.Printf("Disagreements: %d/%d\n", s.Disagreements, s.Scenarios)

	if s.Disagreements > 0 {
		os.Exit(1)
	}
}
