package carousel

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAutoPlayAdvancesEveryInterval(t *testing.T) {
	c, sched := newTestController(t, 3, Options{})

	sched.Advance(4999 * time.Millisecond)
	require.Equal(t, 0, c.Current())

	sched.Advance(time.Millisecond)
	require.Equal(t, 1, c.Current())

	sched.Advance(10 * time.Second)
	require.Equal(t, 0, c.Current())
}

func TestAutoPlayCustomInterval(t *testing.T) {
	c, sched := newTestController(t, 3, Options{Interval: time.Second})
	sched.Advance(2 * time.Second)
	require.Equal(t, 2, c.Current())
}

func TestPauseThenAdvanceProducesNoChange(t *testing.T) {
	c, sched := newTestController(t, 3, Options{})
	c.PauseAutoPlay()

	sched.Advance(5 * time.Second)
	require.Equal(t, 0, c.Current())
	require.False(t, c.AutoPlaying())

	// Still safe when already paused.
	c.PauseAutoPlay()
	require.Equal(t, 0, sched.Active())
}

func TestResumeThenAdvanceProducesExactlyOneNext(t *testing.T) {
	c, sched := newTestController(t, 3, Options{})
	c.PauseAutoPlay()

	nexts := 0
	c.Subscribe(func(ch Change) {
		if ch.Direction == DirectionNext {
			nexts++
		}
	})

	c.ResumeAutoPlay()
	sched.Advance(5 * time.Second)
	require.Equal(t, 1, nexts)
	require.Equal(t, 1, c.Current())
}

func TestStartAutoPlayIsIdempotent(t *testing.T) {
	c, sched := newTestController(t, 3, Options{})
	c.StartAutoPlay()
	c.StartAutoPlay()
	c.ResumeAutoPlay()
	require.Equal(t, 1, sched.Active())

	sched.Advance(5 * time.Second)
	require.Equal(t, 1, c.Current())
}

func TestRepeatedHoverDoesNotStackTimers(t *testing.T) {
	c, sched := newTestController(t, 5, Options{})

	for i := 0; i < 10; i++ {
		_, _ = c.Dispatch(PointerEnter())
		_, _ = c.Dispatch(PointerLeave())
	}
	require.Equal(t, 1, sched.Active())

	sched.Advance(5 * time.Second)
	require.Equal(t, 1, c.Current())
}

func TestToggleAutoPlay(t *testing.T) {
	c, sched := newTestController(t, 3, Options{})

	c.ToggleAutoPlay()
	require.False(t, c.AutoPlayEnabled())
	require.False(t, c.AutoPlaying())

	// Resume must respect the disabled flag.
	c.ResumeAutoPlay()
	sched.Advance(5 * time.Second)
	require.Equal(t, 0, c.Current())

	c.ToggleAutoPlay()
	require.True(t, c.AutoPlayEnabled())
	sched.Advance(5 * time.Second)
	require.Equal(t, 1, c.Current())
}

func TestDisableAutoPlayOption(t *testing.T) {
	c, sched := newTestController(t, 3, Options{DisableAutoPlay: true})
	require.Equal(t, 0, sched.Active())
	c.ResumeAutoPlay()
	require.Equal(t, 0, sched.Active())
	require.False(t, c.Snapshot().AutoPlayEnabled)
}

func TestStaleTickIsDropped(t *testing.T) {
	c, _ := newTestController(t, 3, Options{DisableAutoPlay: true})

	stale := &autoPlayHandle{timer: cancelTimer(func() {})}
	c.tick(stale)
	require.Equal(t, 0, c.Current())
}

func TestTickerSchedulerFiresAndStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var hits atomic.Int32
	s := NewTickerScheduler(ctx)
	timer := s.Every(5*time.Millisecond, func() { hits.Add(1) })

	require.Eventually(t, func() bool { return hits.Load() >= 2 }, time.Second, time.Millisecond)

	timer.Stop()
	time.Sleep(20 * time.Millisecond)
	after := hits.Load()
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, after, hits.Load())
}

func TestManualSchedulerOrdersCallbacks(t *testing.T) {
	s := NewManualScheduler()
	var order []string
	s.Every(3*time.Second, func() { order = append(order, "slow") })
	s.Every(2*time.Second, func() { order = append(order, "fast") })

	s.Advance(6 * time.Second)
	require.Equal(t, []string{"fast", "slow", "fast", "slow", "fast"}, order)
	require.Equal(t, 6*time.Second, s.Now())
}
