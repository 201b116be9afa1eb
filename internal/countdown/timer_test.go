package countdown

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingScheduler struct {
	armed     bool
	id        uint64
	interval  time.Duration
	schedules int
	cancels   int
}

func (s *recordingScheduler) Schedule(interval time.Duration, id uint64) {
	s.armed, s.id, s.interval = true, id, interval
	s.schedules++
}

func (s *recordingScheduler) Cancel() {
	s.armed = false
	s.cancels++
}

func newTestTimer(seconds int) (*Timer, *recordingScheduler) {
	sched := &recordingScheduler{}
	tm := New(WithScheduler(sched))
	tm.SetConfigured(seconds)
	return tm, sched
}

// fire delivers n ticks, each under the currently armed id.
func fire(tm *Timer, sched *recordingScheduler, n int) {
	for i := 0; i < n; i++ {
		tm.Tick(sched.id)
	}
}

func TestNewTimerZeroState(t *testing.T) {
	tm := New()
	assert.Equal(t, State{}, tm.Snapshot())
	assert.Equal(t, time.Second, tm.Interval())
	assert.False(t, tm.CanStart())
	assert.False(t, tm.CanPause())
	assert.True(t, tm.CanReset())
}

func TestWithIntervalIgnoresNonPositive(t *testing.T) {
	assert.Equal(t, time.Second, New(WithInterval(0)).Interval())
	assert.Equal(t, time.Second, New(WithInterval(-time.Second)).Interval())
	assert.Equal(t, 250*time.Millisecond, New(WithInterval(250*time.Millisecond)).Interval())
}

func TestStartFromConfiguredDuration(t *testing.T) {
	for _, d := range []int{1, 5, 60, 3600} {
		tm, sched := newTestTimer(d)
		require.True(t, tm.Start(), "start with %d", d)
		assert.Equal(t, State{Configured: d, Remaining: d, Running: true}, tm.Snapshot())
		assert.True(t, sched.armed)
		assert.Equal(t, tm.Generation(), sched.id)
		assert.Equal(t, time.Second, sched.interval)
	}
}

func TestStartWithoutPositiveDurationIsNoop(t *testing.T) {
	for _, d := range []int{0, -1, -30} {
		tm, sched := newTestTimer(d)
		before := tm.Snapshot()
		assert.False(t, tm.CanStart())
		assert.False(t, tm.Start())
		assert.Equal(t, before, tm.Snapshot())
		assert.Zero(t, sched.schedules)
	}
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	tm, sched := newTestTimer(5)
	require.True(t, tm.Start())
	fire(tm, sched, 2)
	assert.False(t, tm.Start())
	assert.Equal(t, 3, tm.Snapshot().Remaining)
}

func TestTicksCountDownFloorAtZero(t *testing.T) {
	const r0 = 5
	for n := 0; n <= r0+3; n++ {
		tm, sched := newTestTimer(r0)
		require.True(t, tm.Start())
		fire(tm, sched, n)
		want := r0 - n
		if want < 0 {
			want = 0
		}
		assert.Equal(t, want, tm.Snapshot().Remaining, "after %d ticks", n)
		assert.Equal(t, want > 0, tm.Snapshot().Running, "after %d ticks", n)
	}
}

func TestReachingZeroStopsTicking(t *testing.T) {
	tm, sched := newTestTimer(3)
	require.True(t, tm.Start())
	fire(tm, sched, 3)

	assert.Equal(t, "0 seconds remaining", tm.Label())
	assert.False(t, tm.Snapshot().Running)
	assert.False(t, sched.armed)
	assert.False(t, tm.Tick(tm.Generation()))
	assert.Equal(t, 0, tm.Snapshot().Remaining)

	// The duration is still configured, so Start is available and restarts.
	assert.True(t, tm.CanStart())
	require.True(t, tm.Start())
	assert.Equal(t, 3, tm.Snapshot().Remaining)
}

func TestPauseKeepsRemaining(t *testing.T) {
	tm, sched := newTestTimer(10)
	require.True(t, tm.Start())
	fire(tm, sched, 4)

	require.True(t, tm.Pause())
	assert.Equal(t, State{Configured: 10, Remaining: 6}, tm.Snapshot())
	assert.False(t, sched.armed)
	assert.False(t, tm.CanPause())
	assert.False(t, tm.Pause())
}

func TestStartAfterPauseRestartsFromConfigured(t *testing.T) {
	tm, sched := newTestTimer(10)
	require.True(t, tm.Start())
	fire(tm, sched, 4)
	require.True(t, tm.Pause())

	require.True(t, tm.Start())
	assert.Equal(t, 10, tm.Snapshot().Remaining)
}

func TestResetAlwaysClears(t *testing.T) {
	setups := map[string]func(*Timer, *recordingScheduler){
		"fresh":   func(*Timer, *recordingScheduler) {},
		"running": func(tm *Timer, s *recordingScheduler) { tm.Start(); fire(tm, s, 2) },
		"paused":  func(tm *Timer, s *recordingScheduler) { tm.Start(); fire(tm, s, 1); tm.Pause() },
		"expired": func(tm *Timer, s *recordingScheduler) { tm.Start(); fire(tm, s, 10) },
	}
	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			tm, sched := newTestTimer(4)
			setup(tm, sched)
			tm.Reset()
			assert.Equal(t, State{}, tm.Snapshot())
			assert.False(t, sched.armed)
		})
	}
}

func TestStaleTickIgnored(t *testing.T) {
	tm, sched := newTestTimer(5)
	require.True(t, tm.Start())
	stale := sched.id
	require.True(t, tm.Pause())
	require.True(t, tm.Start())

	assert.False(t, tm.Tick(stale))
	assert.Equal(t, 5, tm.Snapshot().Remaining)
	assert.True(t, tm.Tick(sched.id))
	assert.Equal(t, 4, tm.Snapshot().Remaining)
}

func TestTickWhilePausedIgnored(t *testing.T) {
	tm, _ := newTestTimer(5)
	assert.False(t, tm.Tick(tm.Generation()))
	assert.Equal(t, State{Configured: 5}, tm.Snapshot())
}

func TestCloseFreezesTimer(t *testing.T) {
	tm, sched := newTestTimer(5)
	require.True(t, tm.Start())
	id := sched.id

	tm.Close()
	assert.True(t, tm.Closed())
	assert.False(t, sched.armed)
	assert.False(t, tm.Tick(id))
	assert.False(t, tm.Start())
	tm.Reset()
	tm.SetConfigured(9)
	assert.Equal(t, State{Configured: 5, Remaining: 5, Running: true}, tm.Snapshot())

	cancels := sched.cancels
	tm.Close()
	assert.Equal(t, cancels, sched.cancels)
}

func TestReconcileCancelsBeforeScheduling(t *testing.T) {
	ctrl := gomock.NewController(t)
	sched := NewMockScheduler(ctrl)
	gomock.InOrder(
		sched.EXPECT().Cancel(),
		sched.EXPECT().Schedule(time.Second, uint64(1)),
		sched.EXPECT().Cancel(),
		sched.EXPECT().Schedule(time.Second, uint64(2)),
		sched.EXPECT().Cancel(),
	)

	tm := New(WithScheduler(sched))
	tm.SetConfigured(2)
	require.True(t, tm.Start())
	require.True(t, tm.Tick(1))
	require.True(t, tm.Tick(2))
	assert.Equal(t, State{Configured: 2}, tm.Snapshot())
}

func TestPauseAndResetOnlyCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	sched := NewMockScheduler(ctrl)
	gomock.InOrder(
		sched.EXPECT().Cancel(),
		sched.EXPECT().Schedule(500*time.Millisecond, uint64(1)),
		sched.EXPECT().Cancel(),
		sched.EXPECT().Cancel(),
		sched.EXPECT().Cancel(),
	)

	tm := New(WithScheduler(sched), WithInterval(500*time.Millisecond))
	tm.SetConfigured(3)
	require.True(t, tm.Start())
	require.True(t, tm.Pause())
	tm.Reset()
	tm.Close()
}

func TestObserverSeesEveryChange(t *testing.T) {
	var seen []State
	tm := New(WithObserver(func(s State) { seen = append(seen, s) }))
	tm.SetDuration("2")
	tm.SetDuration("2")
	tm.Start()
	tm.Tick(tm.Generation())
	tm.Pause()
	tm.Reset()

	want := []State{
		{Configured: 2},
		{Configured: 2, Remaining: 2, Running: true},
		{Configured: 2, Remaining: 1, Running: true},
		{Configured: 2, Remaining: 1},
		{},
	}
	assert.Equal(t, want, seen)
}

func TestScenarioFiveSecondsThreeTicks(t *testing.T) {
	tm, sched := newTestTimer(5)
	require.True(t, tm.Start())
	fire(tm, sched, 3)
	assert.Equal(t, "2 seconds remaining", tm.Label())
	assert.True(t, tm.CanPause())
	assert.False(t, tm.CanStart())
}

func TestStateProgress(t *testing.T) {
	cases := []struct {
		state State
		want  float64
	}{
		{State{}, 0},
		{State{Configured: 4, Remaining: 4}, 1},
		{State{Configured: 4, Remaining: 1}, 0.25},
		{State{Configured: 0, Remaining: 3}, 0},
		{State{Configured: 2, Remaining: 5}, 1},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, tc.state.Progress(), 1e-9, "%+v", tc.state)
	}
}
