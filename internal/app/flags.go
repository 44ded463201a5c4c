package app

import (
	"flag"
	"strconv"

	pcore "squares/pkg/core"
	"squares/pkg/lattice"
	"squares/pkg/sims/squares"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Iterations int
	Cells      string
	Random     int
	Radius     int
	Seed       int64
	Workers    int
	TPS        int
	Verify     bool
	Version    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:        "squares",
		Iterations: squares.DefaultIterations,
		Cells:      lattice.FormatCells(squares.DefaultSeed()),
		Radius:     4,
		Seed:       42,
		Workers:    1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (squares or squares-naive)")
	fs.IntVar(&c.Iterations, "n", c.Iterations, "number of iterations")
	fs.StringVar(&c.Cells, "cells", c.Cells, "seed cells as x,y;x,y;...")
	fs.IntVar(&c.Random, "random", c.Random, "scatter this many random seed cells instead of -cells")
	fs.IntVar(&c.Radius, "radius", c.Radius, "half-width of the square random cells are drawn from")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for -random")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines scanning large frontiers")
	fs.IntVar(&c.TPS, "tps", c.TPS, "iterations per second (0 runs unpaced)")
	fs.BoolVar(&c.Verify, "verify", c.Verify, "check frontier invariants after every iteration")
	fs.BoolVar(&c.Version, "version", c.Version, "print version and exit")
}

// SeedCells resolves the seed, either scattered by the RNG or parsed from Cells.
func (c *Config) SeedCells() ([]lattice.Cell, error) {
	var cells []lattice.Cell
	if c.Random > 0 {
		cells = pcore.ScatterCells(pcore.NewRNG(c.Seed), c.Random, c.Radius)
	} else {
		parsed, err := lattice.ParseCells(c.Cells)
		if err != nil {
			return nil, err
		}
		cells = parsed
	}
	if len(cells) == 0 {
		return nil, squares.ErrEmptySeed
	}
	return cells, nil
}

// SimConfig renders the settings a registered factory understands.
func (c *Config) SimConfig(cells []lattice.Cell) map[string]string {
	return map[string]string{
		"cells":   lattice.FormatCells(cells),
		"workers": strconv.Itoa(c.Workers),
	}
}
