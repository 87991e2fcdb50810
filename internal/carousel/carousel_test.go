package carousel

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T, slides int, opts Options) (*Controller, *ManualScheduler) {
	t.Helper()
	sched := NewManualScheduler()
	opts.Scheduler = sched
	c, err := New(Structure{
		Slides:     slides,
		Indicators: slides,
		Thumbnails: slides,
		HasTrack:   true,
		HasButtons: true,
	}, opts)
	require.NoError(t, err)
	return c, sched
}

func requireExclusiveActive(t *testing.T, f Frame, want int) {
	t.Helper()
	for name, flags := range map[string][]bool{
		"slides":     f.Slides,
		"indicators": f.Indicators,
		"thumbnails": f.Thumbnails,
	} {
		count := 0
		for i, active := range flags {
			if active {
				count++
				require.Equalf(t, want, i, "%s active index", name)
			}
		}
		require.Equalf(t, 1, count, "%s active count", name)
	}
	require.Equal(t, want, f.Current)
	require.Equal(t, -want*100, f.TrackOffset)
}

func TestNew_DeclinesIncompleteStructure(t *testing.T) {
	_, err := New(Structure{Slides: 0, HasTrack: true, HasButtons: true}, Options{Scheduler: NewManualScheduler()})
	require.ErrorIs(t, err, ErrNoSlides)

	_, err = New(Structure{Slides: 3, HasTrack: false, HasButtons: true}, Options{Scheduler: NewManualScheduler()})
	require.ErrorIs(t, err, ErrMissingStructure)

	_, err = New(Structure{Slides: 3, HasTrack: true, HasButtons: false}, Options{Scheduler: NewManualScheduler()})
	require.ErrorIs(t, err, ErrMissingStructure)
}

func TestNew_InitialFrame(t *testing.T) {
	c, sched := newTestController(t, 3, Options{})

	requireExclusiveActive(t, c.Snapshot(), 0)
	require.True(t, c.AutoPlaying())
	require.Equal(t, 1, sched.Active())
}

func TestNextWrapsModuloTotal(t *testing.T) {
	for start := 0; start < 4; start++ {
		for n := 0; n <= 9; n++ {
			c, _ := newTestController(t, 4, Options{DisableAutoPlay: true})
			require.NoError(t, c.GoTo(start))
			for i := 0; i < n; i++ {
				c.Next()
			}
			require.Equal(t, (start+n)%4, c.Current(), "start=%d n=%d", start, n)
		}
	}
}

func TestPrevThenNextRestores(t *testing.T) {
	c, _ := newTestController(t, 5, Options{DisableAutoPlay: true})
	for i := 0; i < 5; i++ {
		require.NoError(t, c.GoTo(i))
		c.Prev()
		c.Next()
		require.Equal(t, i, c.Current())
		c.Next()
		c.Prev()
		require.Equal(t, i, c.Current())
	}
}

func TestPrevWrapsToLast(t *testing.T) {
	c, _ := newTestController(t, 3, Options{DisableAutoPlay: true})
	c.Prev()
	require.Equal(t, 2, c.Current())
	requireExclusiveActive(t, c.Snapshot(), 2)
}

func TestGoTo_ActivatesExclusively(t *testing.T) {
	c, _ := newTestController(t, 3, Options{DisableAutoPlay: true})
	require.NoError(t, c.GoTo(2))
	requireExclusiveActive(t, c.Snapshot(), 2)
}

func TestGoTo_RejectsOutOfRange(t *testing.T) {
	c, _ := newTestController(t, 3, Options{DisableAutoPlay: true})
	require.NoError(t, c.GoTo(1))

	for _, idx := range []int{-1, 3, 100} {
		err := c.GoTo(idx)
		require.True(t, errors.Is(err, ErrIndexOutOfRange), "index %d", idx)
		requireExclusiveActive(t, c.Snapshot(), 1)
	}
}

func TestGoTo_SelfTransitionStillRenders(t *testing.T) {
	c, _ := newTestController(t, 3, Options{DisableAutoPlay: true})
	var changes []Change
	c.Subscribe(func(ch Change) { changes = append(changes, ch) })

	require.NoError(t, c.GoTo(0))
	require.Len(t, changes, 1)
	require.Equal(t, DirectionNone, changes[0].Direction)
	requireExclusiveActive(t, c.Snapshot(), 0)
}

func TestChangeNotificationCarriesDirection(t *testing.T) {
	c, _ := newTestController(t, 4, Options{DisableAutoPlay: true})
	var changes []Change
	unsubscribe := c.Subscribe(func(ch Change) { changes = append(changes, ch) })

	c.Next()
	c.Prev()
	require.NoError(t, c.GoTo(3))
	require.NoError(t, c.GoTo(1))

	require.Equal(t, []Direction{DirectionNext, DirectionPrev, DirectionNext, DirectionPrev},
		[]Direction{changes[0].Direction, changes[1].Direction, changes[2].Direction, changes[3].Direction})
	require.InDelta(t, 0.5, changes[3].Progress(), 1e-9)

	unsubscribe()
	c.Next()
	require.Len(t, changes, 4)
}

func TestListenerMayReenterController(t *testing.T) {
	c, _ := newTestController(t, 3, Options{DisableAutoPlay: true})
	var seen []int
	c.Subscribe(func(ch Change) { seen = append(seen, c.Current()) })

	c.Next()
	require.Equal(t, []int{1}, seen)
}

func TestMismatchedProjectionLengths(t *testing.T) {
	c, err := New(Structure{Slides: 4, Indicators: 2, Thumbnails: 0, HasTrack: true, HasButtons: true},
		Options{Scheduler: NewManualScheduler(), DisableAutoPlay: true})
	require.NoError(t, err)

	require.NoError(t, c.GoTo(3))
	f := c.Snapshot()
	require.Equal(t, []bool{false, false, false, true}, f.Slides)
	require.Equal(t, []bool{false, false}, f.Indicators)
	require.Empty(t, f.Thumbnails)
}

func TestSnapshotIsIndependent(t *testing.T) {
	c, _ := newTestController(t, 3, Options{DisableAutoPlay: true})
	f := c.Snapshot()
	f.Slides[2] = true

	require.False(t, c.Snapshot().Slides[2])
}

func TestDestroyStopsEverything(t *testing.T) {
	c, sched := newTestController(t, 3, Options{})
	calls := 0
	c.Subscribe(func(Change) { calls++ })

	c.Destroy()
	require.Equal(t, 0, sched.Active())

	sched.Advance(20 * time.Second)
	c.Next()
	c.StartAutoPlay()
	require.Equal(t, 0, calls)
	require.Equal(t, 0, c.Current())
	require.Equal(t, 0, sched.Active())
}

func TestScenarioRightArrowWraps(t *testing.T) {
	c, _ := newTestController(t, 3, Options{DisableAutoPlay: true})

	require.True(t, c.HandleKeyDown(KeyRight))
	require.True(t, c.HandleKeyDown(KeyRight))
	require.Equal(t, 2, c.Current())

	require.True(t, c.HandleKeyDown(KeyRight))
	require.Equal(t, 0, c.Current())
}
