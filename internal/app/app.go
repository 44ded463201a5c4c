package app

import (
	"fmt"
	"io"
	"time"

	"squares/internal/core"
	"squares/internal/monitoring"
	"squares/pkg/sims/squares"
)

type invariantChecker interface {
	CheckInvariants() error
}

// Runner drives a simulation for a fixed number of iterations and reports
// the shaded count after each one.
type Runner struct {
	out    io.Writer
	pacer  *core.FixedStep
	verify bool
}

// New constructs a Runner writing result lines to out. A nil pacer runs
// unpaced.
func New(out io.Writer, pacer *core.FixedStep, verify bool) *Runner {
	return &Runner{out: out, pacer: pacer, verify: verify}
}

// Run advances sim exactly iterations times. Zero iterations write nothing.
func (r *Runner) Run(sim core.Sim, iterations int) error {
	if iterations < 0 {
		return fmt.Errorf("%w: got %d", squares.ErrInvalidIterations, iterations)
	}

	if p, ok := sim.(core.ParameterProvider); ok {
		for _, line := range p.Parameters().Lines() {
			monitoring.Logf("%s %s", sim.Name(), line)
		}
	}
	checker, canCheck := sim.(invariantChecker)
	if r.verify && !canCheck {
		monitoring.Logf("%s has no invariant check; -verify ignored", sim.Name())
	}

	start := time.Now()
	for i := 1; i <= iterations; i++ {
		r.pacer.Wait()
		sim.Step()
		if _, err := fmt.Fprintf(r.out, "Iteration %d total shaded squares are: %d\n", i, sim.Population()); err != nil {
			return err
		}
		if r.verify && canCheck {
			if err := checker.CheckInvariants(); err != nil {
				return fmt.Errorf("iteration %d: %w", i, err)
			}
		}
	}
	monitoring.Logf("%s: %d iterations, %d shaded, elapsed %s",
		sim.Name(), iterations, sim.Population(), time.Since(start).Round(time.Millisecond))
	return nil
}
