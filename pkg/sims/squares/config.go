package squares

import (
	"errors"
	"fmt"
	"strconv"

	"squares/pkg/lattice"
)

// DefaultIterations is the number of steps run when none is given.
const DefaultIterations = 100

// ErrEmptySeed is returned when a simulation is requested without seed cells.
var ErrEmptySeed = errors.New("seed must contain at least one cell")

// Config holds construction parameters for the growth simulations.
type Config struct {
	Seed    []lattice.Cell
	Workers int
}

// DefaultSeed returns the five-cell plus shape centred on the origin.
func DefaultSeed() []lattice.Cell {
	return []lattice.Cell{
		lattice.C(0, 0),
		lattice.C(0, 1),
		lattice.C(0, -1),
		lattice.C(-1, 0),
		lattice.C(1, 0),
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Seed: DefaultSeed(), Workers: 1}
}

// FromMap populates a Config from a string map. Unknown keys and unusable
// worker counts are ignored; a malformed cell list is an error.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["cells"]; ok {
		cells, err := lattice.ParseCells(v)
		if err != nil {
			return c, fmt.Errorf("cells: %w", err)
		}
		c.Seed = cells
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	return c, nil
}
