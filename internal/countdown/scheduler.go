package countdown

import (
	"sync"
	"time"
)

// Scheduler arms and disarms the single recurring tick of a Timer. Schedule
// replaces any outstanding tick; the fired tick must be delivered back to
// Timer.Tick with the same id.
//
//go:generate mockgen -source=scheduler.go -destination=mock_scheduler_test.go -package=countdown
type Scheduler interface {
	Schedule(interval time.Duration, id uint64)
	Cancel()
}

type nopScheduler struct{}

func (nopScheduler) Schedule(time.Duration, uint64) {}
func (nopScheduler) Cancel()                        {}

// ClockScheduler schedules ticks on the wall clock. Fired ids are delivered on
// C so a single goroutine can own the Timer.
type ClockScheduler struct {
	mu     sync.Mutex
	timer  *time.Timer
	fired  chan uint64
	done   chan struct{}
	closed bool
}

// NewClockScheduler returns a scheduler with nothing armed. Call Stop when done.
func NewClockScheduler() *ClockScheduler {
	return &ClockScheduler{
		fired: make(chan uint64),
		done:  make(chan struct{}),
	}
}

// C returns the channel fired tick ids arrive on.
func (s *ClockScheduler) C() <-chan uint64 {
	return s.fired
}

func (s *ClockScheduler) Schedule(interval time.Duration, id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(interval, func() {
		select {
		case s.fired <- id:
		case <-s.done:
		}
	})
}

func (s *ClockScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Stop cancels any pending tick and releases callbacks blocked on delivery.
// Schedule is a no-op afterwards.
func (s *ClockScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	close(s.done)
}
