package carousel

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultInterval is the autoplay period.
	DefaultInterval = 5 * time.Second

	// DefaultSwipeThreshold is the minimum horizontal travel, in pixels,
	// that counts as a swipe rather than a tap.
	DefaultSwipeThreshold = 50.0
)

// Direction describes how the current slide moved during a render.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionNext
	DirectionPrev
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case DirectionNext:
		return "next"
	case DirectionPrev:
		return "prev"
	default:
		return "none"
	}
}

// Structure describes the elements discovered for a carousel. The three
// collections are correlated by ordinal position; their lengths are not
// required to match.
type Structure struct {
	Slides     int
	Indicators int
	Thumbnails int
	HasTrack   bool
	HasButtons bool
}

// Options tune controller behaviour. The zero value is usable.
type Options struct {
	Interval        time.Duration // zero uses DefaultInterval
	SwipeThreshold  float64       // zero uses DefaultSwipeThreshold
	DisableAutoPlay bool
	Scheduler       Scheduler // nil uses a TickerScheduler on context.Background
}

// Change is the notification delivered to listeners after every render.
type Change struct {
	Current     int
	Total       int
	Direction   Direction
	AutoPlaying bool
}

// Progress returns the fraction of the carousel traversed, (current+1)/total.
func (c Change) Progress() float64 {
	if c.Total <= 0 {
		return 0
	}
	return float64(c.Current+1) / float64(c.Total)
}

// Listener receives change notifications. Listeners run outside the
// controller lock and may call back into the controller.
type Listener func(Change)

// Frame is the derived visual state produced by the last render.
type Frame struct {
	Current         int
	Total           int
	TrackOffset     int // percent, always -Current*100
	Direction       Direction
	Slides          []bool
	Indicators      []bool
	Thumbnails      []bool
	AutoPlaying     bool // a timer is running
	AutoPlayEnabled bool // the user-facing flag
	Dragging        bool
}

type subscription struct {
	id int
	fn Listener
}

type autoPlayHandle struct {
	timer Timer
}

// Controller owns the slide index, the autoplay timer and the three visual
// projections derived from the index. It is safe for concurrent use.
type Controller struct {
	mu sync.Mutex

	total     int
	current   int
	interval  time.Duration
	threshold float64
	scheduler Scheduler

	autoPlayEnabled bool
	handle          *autoPlayHandle

	pointerStart float64
	dragging     bool

	frame     Frame
	listeners []subscription
	nextSubID int
	destroyed bool
}

// New builds a controller for the given structure and starts autoplay when
// enabled. It declines with ErrNoSlides or ErrMissingStructure instead of
// producing a half-initialised carousel.
func New(s Structure, opts Options) (*Controller, error) {
	if s.Slides <= 0 {
		return nil, ErrNoSlides
	}
	if !s.HasTrack || !s.HasButtons {
		return nil, fmt.Errorf("%w: track=%t buttons=%t", ErrMissingStructure, s.HasTrack, s.HasButtons)
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	threshold := opts.SwipeThreshold
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = NewTickerScheduler(context.Background())
	}

	c := &Controller{
		total:           s.Slides,
		interval:        interval,
		threshold:       threshold,
		scheduler:       scheduler,
		autoPlayEnabled: !opts.DisableAutoPlay,
		frame: Frame{
			Slides:     make([]bool, s.Slides),
			Indicators: make([]bool, max(s.Indicators, 0)),
			Thumbnails: make([]bool, max(s.Thumbnails, 0)),
		},
	}

	c.mu.Lock()
	c.startAutoPlayLocked()
	c.renderLocked(DirectionNone)
	c.mu.Unlock()
	return c, nil
}

// Total returns the number of slides.
func (c *Controller) Total() int {
	return c.total
}

// Current returns the index of the active slide.
func (c *Controller) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Next advances to (current+1) mod total.
func (c *Controller) Next() {
	c.move(func() { c.current = (c.current + 1) % c.total }, DirectionNext)
}

// Prev moves to (current-1+total) mod total.
func (c *Controller) Prev() {
	c.move(func() { c.current = (c.current - 1 + c.total) % c.total }, DirectionPrev)
}

// GoTo activates the slide at index. Selecting the current slide still
// re-renders. Indices outside [0, total) are rejected and leave the state
// untouched.
func (c *Controller) GoTo(index int) error {
	if index < 0 || index >= c.total {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, c.total)
	}
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return nil
	}
	dir := DirectionNone
	switch {
	case index > c.current:
		dir = DirectionNext
	case index < c.current:
		dir = DirectionPrev
	}
	c.current = index
	change, listeners := c.renderLocked(dir)
	c.mu.Unlock()

	notify(listeners, change)
	return nil
}

// Render recomputes the derived visual state from the current index and
// notifies listeners.
func (c *Controller) Render() {
	c.move(func() {}, DirectionNone)
}

// Snapshot returns a copy of the last rendered frame.
func (c *Controller) Snapshot() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	f := c.frame
	f.Slides = append([]bool(nil), c.frame.Slides...)
	f.Indicators = append([]bool(nil), c.frame.Indicators...)
	f.Thumbnails = append([]bool(nil), c.frame.Thumbnails...)
	return f
}

// Subscribe registers a listener and returns a function that removes it.
func (c *Controller) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	c.nextSubID++
	id := c.nextSubID
	c.listeners = append(c.listeners, subscription{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, sub := range c.listeners {
			if sub.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// Destroy stops autoplay and detaches every listener. Later calls on the
// controller are no-ops.
func (c *Controller) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pauseAutoPlayLocked()
	c.listeners = nil
	c.destroyed = true
}

func (c *Controller) move(step func(), dir Direction) {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	step()
	change, listeners := c.renderLocked(dir)
	c.mu.Unlock()

	notify(listeners, change)
}

// renderLocked must be called with c.mu held. It returns the change and a
// copy of the listeners so the caller can notify after unlocking.
func (c *Controller) renderLocked(dir Direction) (Change, []Listener) {
	c.frame.Current = c.current
	c.frame.Total = c.total
	c.frame.TrackOffset = -c.current * 100
	c.frame.Direction = dir
	markActive(c.frame.Slides, c.current)
	markActive(c.frame.Indicators, c.current)
	markActive(c.frame.Thumbnails, c.current)
	c.syncAutoPlayFrameLocked()

	change := Change{
		Current:     c.current,
		Total:       c.total,
		Direction:   dir,
		AutoPlaying: c.handle != nil,
	}

	if len(c.listeners) == 0 {
		return change, nil
	}
	listeners := make([]Listener, len(c.listeners))
	for i, sub := range c.listeners {
		listeners[i] = sub.fn
	}
	return change, listeners
}

func (c *Controller) syncAutoPlayFrameLocked() {
	c.frame.AutoPlaying = c.handle != nil
	c.frame.AutoPlayEnabled = c.autoPlayEnabled
	c.frame.Dragging = c.dragging
}

func markActive(flags []bool, index int) {
	for i := range flags {
		flags[i] = i == index
	}
}

func notify(listeners []Listener, change Change) {
	for _, fn := range listeners {
		fn(change)
	}
}
