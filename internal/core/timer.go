package core

import "time"

// FixedStep paces a loop to a steady number of iterations per second.
// A nil *FixedStep never waits.
type FixedStep struct {
	step time.Duration
	next time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFixedStep constructs a FixedStep targeting the given TPS. Non-positive
// rates disable pacing and return nil.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		return nil
	}
	fs := &FixedStep{now: time.Now, sleep: time.Sleep}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the configured tick interval.
func (f *FixedStep) Step() time.Duration {
	if f == nil {
		return 0
	}
	return f.step
}

// Wait blocks until the next tick is due. The first call returns immediately.
// When the caller falls behind, the schedule restarts from now instead of
// bursting to catch up.
func (f *FixedStep) Wait() {
	if f == nil {
		return
	}
	now := f.now()
	if f.next.IsZero() || !now.Before(f.next) {
		f.next = now.Add(f.step)
		return
	}
	f.sleep(f.next.Sub(now))
	f.next = f.next.Add(f.step)
}
