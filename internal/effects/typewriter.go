// Package effects holds the page's time-driven text effects: the hero
// typewriter, scroll reveal and stat counters. Each effect is a plain state
// machine advanced by the caller; none of them owns a timer.
package effects

import "time"

// Typewriter timing defaults.
const (
	DefaultTypeDelay   = 100 * time.Millisecond
	DefaultDeleteDelay = 50 * time.Millisecond
	DefaultHold        = 2 * time.Second
	DefaultPause       = 500 * time.Millisecond
	DefaultStartDelay  = time.Second
)

// TypewriterOptions tune the typewriter. Zero fields use the defaults.
type TypewriterOptions struct {
	TypeDelay   time.Duration
	DeleteDelay time.Duration
	Hold        time.Duration
	Pause       time.Duration
	StartDelay  time.Duration
}

// Typewriter types texts one rune at a time. With several texts it deletes
// each one after a hold and moves on, wrapping forever. A single text is
// typed once and then left in place.
type Typewriter struct {
	texts    [][]rune
	opts     TypewriterOptions
	textIdx  int
	charIdx  int
	deleting bool
	done     bool
}

// NewTypewriter builds a typewriter over texts. Empty texts are skipped.
func NewTypewriter(texts []string, opts TypewriterOptions) Typewriter {
	if opts.TypeDelay <= 0 {
		opts.TypeDelay = DefaultTypeDelay
	}
	if opts.DeleteDelay <= 0 {
		opts.DeleteDelay = DefaultDeleteDelay
	}
	if opts.Hold <= 0 {
		opts.Hold = DefaultHold
	}
	if opts.Pause <= 0 {
		opts.Pause = DefaultPause
	}
	if opts.StartDelay < 0 {
		opts.StartDelay = 0
	} else if opts.StartDelay == 0 {
		opts.StartDelay = DefaultStartDelay
	}

	tw := Typewriter{opts: opts}
	for _, text := range texts {
		if r := []rune(text); len(r) > 0 {
			tw.texts = append(tw.texts, r)
		}
	}
	tw.done = len(tw.texts) == 0
	return tw
}

// StartDelay is the wait before the first Step.
func (t *Typewriter) StartDelay() time.Duration {
	return t.opts.StartDelay
}

// Step advances by one rune and returns the delay until the next step.
// ok is false once the typewriter has nothing more to do.
func (t *Typewriter) Step() (next time.Duration, ok bool) {
	if t.done {
		return 0, false
	}
	current := t.texts[t.textIdx]

	if t.deleting {
		t.charIdx--
	} else {
		t.charIdx++
	}

	next = t.opts.TypeDelay
	if t.deleting {
		next = t.opts.DeleteDelay
	}

	switch {
	case !t.deleting && t.charIdx >= len(current):
		t.charIdx = len(current)
		if len(t.texts) == 1 {
			t.done = true
			return 0, false
		}
		t.deleting = true
		next = t.opts.Hold
	case t.deleting && t.charIdx <= 0:
		t.charIdx = 0
		t.deleting = false
		t.textIdx = (t.textIdx + 1) % len(t.texts)
		next = t.opts.Pause
	}
	return next, true
}

// Text returns what is currently typed.
func (t Typewriter) Text() string {
	if len(t.texts) == 0 {
		return ""
	}
	return string(t.texts[t.textIdx][:t.charIdx])
}

// Deleting reports whether the typewriter is erasing.
func (t Typewriter) Deleting() bool {
	return t.deleting
}

// Done reports whether the typewriter has stopped for good.
func (t Typewriter) Done() bool {
	return t.done
}
