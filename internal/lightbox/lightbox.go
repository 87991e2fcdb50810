// Package lightbox implements the full-screen single image viewer that
// opens when a carousel slide is activated.
package lightbox

import "sync"

// Image is what the lightbox displays.
type Image struct {
	Source  string
	Alt     string
	Caption string
}

// ScrollLocker suspends and restores page scrolling while the viewer is up.
type ScrollLocker interface {
	LockScroll()
	UnlockScroll()
}

// Target identifies where a click inside the lightbox landed.
type Target int

const (
	TargetOverlay Target = iota
	TargetCloseButton
	TargetContent
)

// Controller tracks whether the viewer is open and what it shows.
type Controller struct {
	mu     sync.Mutex
	open   bool
	image  Image
	locker ScrollLocker
}

// New returns a closed lightbox. locker may be nil.
func New(locker ScrollLocker) *Controller {
	return &Controller{locker: locker}
}

// Open shows the image, replacing whatever was displayed. Page scroll is
// locked once, on the closed-to-open transition.
func (c *Controller) Open(source, alt, caption string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.image = Image{Source: source, Alt: alt, Caption: caption}
	if c.open {
		return
	}
	c.open = true
	if c.locker != nil {
		c.locker.LockScroll()
	}
}

// Close hides the viewer and restores page scroll. Closing a closed
// lightbox does nothing.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return
	}
	c.open = false
	if c.locker != nil {
		c.locker.UnlockScroll()
	}
}

// IsOpen reports whether the viewer is visible.
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Image returns the displayed image. It keeps the last image after Close.
func (c *Controller) Image() Image {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.image
}

// HandleEscape closes an open viewer and reports whether it did.
func (c *Controller) HandleEscape() bool {
	if !c.IsOpen() {
		return false
	}
	c.Close()
	return true
}

// Click closes the viewer for overlay and close-button clicks. Clicks on
// the image itself are ignored.
func (c *Controller) Click(target Target) bool {
	switch target {
	case TargetOverlay, TargetCloseButton:
		if !c.IsOpen() {
			return false
		}
		c.Close()
		return true
	}
	return false
}

// PageScroll is a ScrollLocker that records the lock for a host to consult
// before scrolling.
type PageScroll struct {
	mu     sync.Mutex
	locked bool
}

// LockScroll implements ScrollLocker.
func (p *PageScroll) LockScroll() {
	p.mu.Lock()
	p.locked = true
	p.mu.Unlock()
}

// UnlockScroll implements ScrollLocker.
func (p *PageScroll) UnlockScroll() {
	p.mu.Lock()
	p.locked = false
	p.mu.Unlock()
}

// Locked reports whether scrolling is currently suspended.
func (p *PageScroll) Locked() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.locked
}
