// Package countdown implements the countdown engine: the duration, remaining
// time and run flag of one timer, and the scheduling of its one-second tick.
package countdown

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
)

// State is the observable state of a Timer. The zero value is a freshly
// mounted timer.
type State struct {
	Configured int
	Remaining  int
	Running    bool
}

// Label renders the remaining time the way the display shows it.
func (s State) Label() string {
	return fmt.Sprintf("%d seconds remaining", s.Remaining)
}

// Progress reports the fraction of the configured duration still remaining.
func (s State) Progress() float64 {
	if s.Configured <= 0 || s.Remaining <= 0 {
		return 0
	}
	if s.Remaining >= s.Configured {
		return 1
	}
	return float64(s.Remaining) / float64(s.Configured)
}

// Option configures a Timer built by New.
type Option func(*Timer)

// WithScheduler sets the scheduler that arms ticks. Without one, ticks are
// never armed and the timer only moves when Tick is called directly.
func WithScheduler(s Scheduler) Option {
	return func(t *Timer) {
		if s != nil {
			t.scheduler = s
		}
	}
}

// WithObserver registers fn to be called after every state change.
func WithObserver(fn func(State)) Option {
	return func(t *Timer) { t.observer = fn }
}

// WithInterval overrides the tick interval; non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.interval = d
		}
	}
}

// Timer is the state container for one countdown. It is not safe for
// concurrent use; all calls must come from the goroutine that owns it.
type Timer struct {
	state     State
	gen       uint64
	closed    bool
	interval  time.Duration
	scheduler Scheduler
	observer  func(State)
}

// New returns an idle Timer ticking every config.TickInterval unless overridden.
func New(opts ...Option) *Timer {
	t := &Timer{
		interval:  config.TickInterval,
		scheduler: nopScheduler{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Timer) Snapshot() State { return t.state }

func (t *Timer) Label() string { return t.state.Label() }

// Generation identifies the most recently armed tick. Ticks carrying any other
// id are stale.
func (t *Timer) Generation() uint64 { return t.gen }

func (t *Timer) Interval() time.Duration { return t.interval }

func (t *Timer) Closed() bool { return t.closed }

func (t *Timer) CanStart() bool {
	return !t.closed && !t.state.Running && t.state.Configured > 0
}

func (t *Timer) CanPause() bool {
	return !t.closed && t.state.Running
}

func (t *Timer) CanReset() bool {
	return !t.closed
}

// SetDuration parses input field text into the configured duration.
func (t *Timer) SetDuration(text string) {
	t.SetConfigured(ParseSeconds(text))
}

func (t *Timer) SetConfigured(seconds int) {
	if t.closed || t.state.Configured == seconds {
		return
	}
	t.state.Configured = seconds
	t.notify()
}

// Start begins counting down from the configured duration. It always restarts
// from the configured duration, including after Pause.
func (t *Timer) Start() bool {
	if !t.CanStart() {
		return false
	}
	t.state.Remaining = t.state.Configured
	t.state.Running = true
	t.reconcile()
	return true
}

// Pause stops the countdown and keeps the remaining time on display.
func (t *Timer) Pause() bool {
	if !t.CanPause() {
		return false
	}
	t.state.Running = false
	t.reconcile()
	return true
}

// Reset clears the duration, the remaining time and the run flag.
func (t *Timer) Reset() {
	if t.closed {
		return
	}
	t.state = State{}
	t.reconcile()
}

// Tick applies one firing of the tick armed under id. Stale ids and firings
// that arrive while paused are ignored.
func (t *Timer) Tick(id uint64) bool {
	if t.closed || id != t.gen || !t.state.Running {
		return false
	}
	t.state.Remaining--
	if t.state.Remaining < 0 {
		t.state.Remaining = 0
	}
	t.reconcile()
	return true
}

// Close cancels the pending tick and freezes the timer. Later calls to any
// mutating method are no-ops.
func (t *Timer) Close() {
	if t.closed {
		return
	}
	t.scheduler.Cancel()
	t.gen++
	t.closed = true
}

// reconcile re-derives the tick schedule from the run flag and remaining time.
// The previous tick is always cancelled before a new one is armed.
func (t *Timer) reconcile() {
	t.scheduler.Cancel()
	t.gen++
	if t.state.Running && t.state.Remaining <= 0 {
		t.state.Remaining = 0
		t.state.Running = false
	}
	if t.state.Running {
		t.scheduler.Schedule(t.interval, t.gen)
	}
	t.notify()
}

func (t *Timer) notify() {
	if t.observer != nil {
		t.observer(t.state)
	}
}
