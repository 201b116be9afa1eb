package tui

import (
	"time"

	"github.com/akyairhashvil/countdown/internal/countdown"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// TickMsg is one firing of the countdown tick armed under ID.
type TickMsg struct {
	ID   uint64
	Time time.Time
}

// teaScheduler arms countdown ticks as Bubble Tea commands. tea.Tick cannot be
// withdrawn once handed to the runtime, so a cancelled tick may still arrive;
// the timer drops it by its stale ID.
type teaScheduler struct {
	pending tea.Cmd
	id      uint64
	armed   bool
}

var _ countdown.Scheduler = (*teaScheduler)(nil)

func (s *teaScheduler) Schedule(interval time.Duration, id uint64) {
	s.id, s.armed = id, true
	s.pending = tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

func (s *teaScheduler) Cancel() {
	s.pending, s.armed = nil, false
}

// take hands the pending tick command to the caller, at most once.
func (s *teaScheduler) take() tea.Cmd {
	cmd := s.pending
	s.pending = nil
	return cmd
}
