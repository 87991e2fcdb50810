package ui

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/vitrine/internal/carousel"
)

// wheelLines is how far one wheel notch scrolls the page.
const wheelLines = 3

type hitKind int

const (
	hitNone hitKind = iota
	hitThemeBadge
	hitMenuToggle
	hitNavLink
	hitMenuItem
	hitPage
	hitPrev
	hitNext
	hitSlide
	hitIndicator
	hitThumbnail
	hitCarousel // carousel rows outside any control
)

// hitTarget is what lies under a screen cell.
type hitTarget struct {
	kind  hitKind
	index int
}

// inCarousel reports whether the target is part of the carousel block.
func (h hitTarget) inCarousel() bool {
	switch h.kind {
	case hitPrev, hitNext, hitSlide, hitIndicator, hitThumbnail, hitCarousel:
		return true
	}
	return false
}

// hitTest maps a cell on the main screen to its target.
func (m Model) hitTest(x, y int) hitTarget {
	if y == 0 {
		for _, s := range m.headerSegments() {
			if s.target.kind != hitNone && x >= s.x && x < s.x+s.width {
				return s.target
			}
		}
		return hitTarget{}
	}

	l := m.layout()
	if y >= l.pageTop && y < l.pageTop+l.pageHeight {
		if row := y - l.pageTop; m.menuVisible() && row < len(m.navLinks()) && x < m.menuWidth() {
			return hitTarget{kind: hitMenuItem, index: row}
		}
		return hitTarget{kind: hitPage}
	}

	if l.carouselTop < 0 || y < l.carouselTop || y > l.progressRow {
		return hitTarget{}
	}

	switch {
	case y < l.slideTop+l.slideHeight:
		switch {
		case x < carouselButtonWidth:
			return hitTarget{kind: hitPrev}
		case x >= m.width-carouselButtonWidth:
			return hitTarget{kind: hitNext}
		}
		return hitTarget{kind: hitSlide}
	case y == l.indicatorRow:
		for i, span := range m.indicatorSpans() {
			if span.contains(x) {
				return hitTarget{kind: hitIndicator, index: i}
			}
		}
	case y == l.thumbnailRow:
		for i, span := range m.thumbnailSpans() {
			if span.contains(x) {
				return hitTarget{kind: hitThumbnail, index: i}
			}
		}
	}
	return hitTarget{kind: hitCarousel}
}

// handleMouse processes mouse input.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if m.showHelp {
		if press {
			m.showHelp = false
		}
		return m, nil
	}

	if m.lightbox.IsOpen() {
		if press {
			m.lightbox.Click(m.lightboxTarget(msg.X, msg.Y))
		}
		return m, nil
	}

	target := m.hitTest(msg.X, msg.Y)
	m.trackHover(target)

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		return m, m.scrollBy(-wheelLines)

	case msg.Button == tea.MouseButtonWheelDown:
		return m, m.scrollBy(wheelLines)

	case press:
		return m, m.handlePress(target, msg.X)

	case msg.Action == tea.MouseActionRelease:
		m.handleRelease(target, msg.X)
	}
	return m, nil
}

func (m *Model) handlePress(target hitTarget, x int) tea.Cmd {
	// Clicks outside the open menu close it
	if m.menu.open && target.kind != hitMenuItem && target.kind != hitMenuToggle {
		m.closeMenu()
	}

	ctl := m.slides.ctl
	switch target.kind {
	case hitThemeBadge:
		m.toggleTheme()
	case hitMenuToggle:
		m.toggleMenu()
	case hitNavLink, hitMenuItem:
		return m.selectSection(target.index)
	case hitPrev:
		_, _ = ctl.Dispatch(carousel.Click(carousel.TargetPrev, 0))
	case hitNext:
		_, _ = ctl.Dispatch(carousel.Click(carousel.TargetNext, 0))
	case hitIndicator:
		_, _ = ctl.Dispatch(carousel.Click(carousel.TargetIndicator, target.index))
	case hitThumbnail:
		_, _ = ctl.Dispatch(carousel.Click(carousel.TargetThumbnail, target.index))
	case hitSlide:
		m.slides.pressed = true
		m.slides.pressX = x
		_, _ = ctl.Dispatch(carousel.DragStart(m.pixels(x)))
	}
	return nil
}

// handleRelease ends a drag. A release that barely moved on the slide is a
// tap and opens the lightbox.
func (m *Model) handleRelease(target hitTarget, x int) {
	if !m.slides.pressed {
		return
	}
	m.slides.pressed = false
	_, _ = m.slides.ctl.Dispatch(carousel.DragEnd(m.pixels(x)))

	moved := math.Abs(m.pixels(x) - m.pixels(m.slides.pressX))
	if target.kind == hitSlide && moved <= m.slides.threshold {
		m.openLightbox()
	}
}

// trackHover turns pointer motion into carousel enter and leave events.
// Leaving mid-drag cancels the drag.
func (m *Model) trackHover(target hitTarget) {
	if m.slides.ctl == nil {
		return
	}
	inside := target.inCarousel()
	if inside == m.slides.hovering {
		return
	}
	m.slides.hovering = inside
	if inside {
		_, _ = m.slides.ctl.Dispatch(carousel.PointerEnter())
		return
	}
	if m.slides.pressed {
		m.slides.pressed = false
		_, _ = m.slides.ctl.Dispatch(carousel.DragCancel())
	}
	_, _ = m.slides.ctl.Dispatch(carousel.PointerLeave())
}

// pixels converts a column to the nominal horizontal pixel position.
func (m Model) pixels(x int) float64 {
	return float64(x) * m.slides.cellWidth
}
