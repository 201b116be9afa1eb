package countdown

import "context"

// Runner drives a Timer on the wall clock from a single goroutine.
type Runner struct {
	timer *Timer
	clock *ClockScheduler
}

// NewRunner builds a Runner whose timer ticks on a ClockScheduler. A
// WithScheduler option is overridden.
func NewRunner(opts ...Option) *Runner {
	clock := NewClockScheduler()
	opts = append(opts, WithScheduler(clock))
	return &Runner{timer: New(opts...), clock: clock}
}

func (r *Runner) Timer() *Timer { return r.timer }

// Run delivers ticks to the timer until it stops running or ctx is done. The
// timer is closed on return either way.
func (r *Runner) Run(ctx context.Context) error {
	defer r.Close()
	for r.timer.Snapshot().Running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case id := <-r.clock.C():
			r.timer.Tick(id)
		}
	}
	return nil
}

func (r *Runner) Close() {
	r.timer.Close()
	r.clock.Stop()
}
