package core

import (
	"errors"
	"fmt"
	"sort"

	"squares/pkg/lattice"
)

// ErrUnknownSim is returned by Lookup for names nobody registered.
var ErrUnknownSim = errors.New("unknown sim")

// Sim defines the minimal contract a growth simulation must implement.
type Sim interface {
	Name() string
	// Reset discards all state and starts again from seed.
	Reset(seed []lattice.Cell)
	// Step advances one generation and returns the number of newly shaded cells.
	Step() int
	Generation() int
	Population() int
	Shaded() lattice.Set
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownSim, name, Names())
	}
	return f, nil
}

// Names lists registered simulations in lexical order.
func Names() []string {
	out := make([]string, 0, len(sims))
	for name := range sims {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
