package carousel

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Timer is a cancellable unit of repeating work.
type Timer interface {
	Stop()
}

// Scheduler runs fn every d until the returned Timer is stopped.
type Scheduler interface {
	Every(d time.Duration, fn func()) Timer
}

// TickerScheduler runs each timer on its own goroutine driven by a
// time.Ticker. All timers stop when the parent context is cancelled.
type TickerScheduler struct {
	ctx context.Context
}

// NewTickerScheduler returns a scheduler bound to ctx.
func NewTickerScheduler(ctx context.Context) *TickerScheduler {
	if ctx == nil {
		ctx = context.Background()
	}
	return &TickerScheduler{ctx: ctx}
}

// Every implements Scheduler.
func (s *TickerScheduler) Every(d time.Duration, fn func()) Timer {
	ctx, cancel := context.WithCancel(s.ctx)
	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
	return cancelTimer(cancel)
}

type cancelTimer context.CancelFunc

func (t cancelTimer) Stop() { t() }

// ManualScheduler is a Scheduler whose clock only moves when Advance is
// called. Callbacks run synchronously on the caller's goroutine.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	s       *ManualScheduler
	seq     int
	every   time.Duration
	due     time.Duration
	fn      func()
	stopped bool
}

// NewManualScheduler returns a scheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Every implements Scheduler.
func (s *ManualScheduler) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &manualTimer{s: s, seq: s.seq, every: d, due: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by d, firing due callbacks in time order.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		next := s.nextDueLocked(target)
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.now = next.due
		next.due += next.every
		fn := next.fn
		s.mu.Unlock()

		fn()
	}
}

// Active returns the number of timers that have not been stopped.
func (s *ManualScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Now returns the elapsed simulated time.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *ManualScheduler) nextDueLocked(target time.Duration) *manualTimer {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.timers = live

	var due []*manualTimer
	for _, t := range s.timers {
		if t.due <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	return due[0]
}

func (t *manualTimer) Stop() {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.stopped = true
}
