package carousel

import "math"

// Key is a carousel-relevant key press.
type Key int

const (
	KeyOther Key = iota
	KeyLeft
	KeyRight
	KeySpace
	KeyHome
	KeyEnd
)

// Kind enumerates the input sources the controller understands.
type Kind int

const (
	KindClick Kind = iota
	KindSwipe
	KindKey
	KindVisibility
	KindPointer
	KindResize
)

// Target identifies what a click landed on.
type Target int

const (
	TargetPrev Target = iota
	TargetNext
	TargetIndicator
	TargetThumbnail
)

// SwipePhase is the stage of a drag gesture.
type SwipePhase int

const (
	SwipeStart SwipePhase = iota
	SwipeEnd
	SwipeCancel
)

// Event is a single input delivered to Dispatch. Build one with the
// constructor matching its Kind.
type Event struct {
	Kind   Kind
	Target Target
	Index  int
	Phase  SwipePhase
	X      float64
	Key    Key
	Hidden bool
	Inside bool
}

// Click returns a click on a button, indicator or thumbnail.
func Click(target Target, index int) Event {
	return Event{Kind: KindClick, Target: target, Index: index}
}

// DragStart returns the beginning of a touch or mouse drag at x.
func DragStart(x float64) Event {
	return Event{Kind: KindSwipe, Phase: SwipeStart, X: x}
}

// DragEnd returns the end of a drag at x.
func DragEnd(x float64) Event {
	return Event{Kind: KindSwipe, Phase: SwipeEnd, X: x}
}

// DragCancel returns a drag abandoned by leaving the track.
func DragCancel() Event {
	return Event{Kind: KindSwipe, Phase: SwipeCancel}
}

// KeyDown returns a key press.
func KeyDown(k Key) Event {
	return Event{Kind: KindKey, Key: k}
}

// VisibilityChange returns a page visibility transition.
func VisibilityChange(hidden bool) Event {
	return Event{Kind: KindVisibility, Hidden: hidden}
}

// PointerEnter returns the pointer entering the container.
func PointerEnter() Event {
	return Event{Kind: KindPointer, Inside: true}
}

// PointerLeave returns the pointer leaving the container.
func PointerLeave() Event {
	return Event{Kind: KindPointer, Inside: false}
}

// Resize returns a viewport resize.
func Resize() Event {
	return Event{Kind: KindResize}
}

// Dispatch routes an event to the matching controller method. It reports
// whether the event was consumed; recognised keys are consumed so hosts can
// suppress their default action. The only error is an out-of-range
// indicator or thumbnail click.
func (c *Controller) Dispatch(ev Event) (bool, error) {
	switch ev.Kind {
	case KindClick:
		switch ev.Target {
		case TargetPrev:
			c.Prev()
		case TargetNext:
			c.Next()
		case TargetIndicator, TargetThumbnail:
			if err := c.GoTo(ev.Index); err != nil {
				return false, err
			}
		default:
			return false, nil
		}
		return true, nil
	case KindSwipe:
		switch ev.Phase {
		case SwipeStart:
			c.beginDrag(ev.X)
		case SwipeEnd:
			c.endDrag(ev.X)
		case SwipeCancel:
			c.cancelDrag()
		}
		return true, nil
	case KindKey:
		return c.HandleKeyDown(ev.Key), nil
	case KindVisibility:
		if ev.Hidden {
			c.PauseAutoPlay()
		} else {
			c.ResumeAutoPlay()
		}
		return true, nil
	case KindPointer:
		if ev.Inside {
			c.PauseAutoPlay()
		} else {
			c.ResumeAutoPlay()
		}
		return true, nil
	case KindResize:
		return false, nil
	}
	return false, nil
}

// HandleSwipe turns a gesture from startX to endX into a slide change.
// Travel beyond the threshold to the left advances, to the right goes
// back; anything shorter is a tap.
func (c *Controller) HandleSwipe(startX, endX float64) {
	distance := startX - endX
	if math.Abs(distance) <= c.threshold {
		return
	}
	if distance > 0 {
		c.Next()
	} else {
		c.Prev()
	}
}

// HandleKeyDown applies the carousel key map and reports whether the key
// was recognised.
func (c *Controller) HandleKeyDown(k Key) bool {
	switch k {
	case KeyLeft:
		c.Prev()
	case KeyRight:
		c.Next()
	case KeySpace:
		c.ToggleAutoPlay()
	case KeyHome:
		_ = c.GoTo(0)
	case KeyEnd:
		_ = c.GoTo(c.total - 1)
	default:
		return false
	}
	return true
}

// Dragging reports whether a drag gesture is in progress.
func (c *Controller) Dragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dragging
}

func (c *Controller) beginDrag(x float64) {
	c.mu.Lock()
	c.pointerStart = x
	c.dragging = true
	c.pauseAutoPlayLocked()
	c.mu.Unlock()
}

func (c *Controller) endDrag(x float64) {
	c.mu.Lock()
	if !c.dragging {
		c.mu.Unlock()
		return
	}
	start := c.pointerStart
	c.dragging = false
	c.pointerStart = 0
	c.syncAutoPlayFrameLocked()
	c.mu.Unlock()

	c.HandleSwipe(start, x)
	c.ResumeAutoPlay()
}

func (c *Controller) cancelDrag() {
	c.mu.Lock()
	c.dragging = false
	c.pointerStart = 0
	c.syncAutoPlayFrameLocked()
	c.mu.Unlock()

	c.ResumeAutoPlay()
}
