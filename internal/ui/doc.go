// Package ui renders a showcase page in the terminal with Bubble Tea.
//
// # Layout
//
// The screen is split top to bottom:
//
//   - Header: title, nav links (or a menu toggle below LayoutCompactWidth),
//     help hint and the theme badge
//   - Page: a scrollable viewport with the hero line and the sections
//   - Carousel: slide image between prev/next buttons, caption, indicator
//     dots, thumbnail strip, progress bar and autoplay marker
//
// Geometry lives in one place (layout and headerSegments) and both
// rendering and mouse hit testing read it, so a click always lands on what
// was drawn there.
//
// # Features
//
// New runs an ordered list of initializers (theme, menu, banner,
// typewriter, reveal, counters, carousel, lightbox). Each one sets up its
// slice of the model and may return a startup command.
//
//   - Typewriter: the hero line types through the configured texts
//   - Reveal: sections render faint until a tenth of them has been on
//     screen; revealing a section starts its stat counters
//   - Smooth scroll: nav links scroll the page so the section is at the top
//   - Theme: T or a click on the badge flips Light/Dark and saves prefs
//   - Lightbox: enter, or a tap on the slide, opens the current image full
//     screen; escape, the close button or a click outside closes it
//
// # Carousel events
//
// Terminal input is mapped onto the carousel's event kinds:
//
//   - Keys: left/right, home/end, space toggles autoplay
//   - Clicks on buttons, dots and thumbnails
//   - Drag on the slide is a swipe; columns are converted to nominal pixels
//     with the configured cell width before the threshold applies
//   - Mouse motion in and out of the carousel pauses and resumes autoplay
//   - Terminal focus loss and gain stand in for page visibility
//
// Change notifications can fire on the autoplay goroutine. They are pushed
// into a buffered channel that a command drains, so the controller never
// blocks on the program.
package ui
